package repository

import (
	"context"

	"workoutapi/internal/model"
)

// AthleteRepository defines data access for athletes using SQL queries only.
// No business logic here — strictly persistence operations. Reads resolve the
// category and training center names via joins; Create receives the resolved
// foreign keys from the caller.
type AthleteRepository interface {
	// Create inserts a new athlete row referencing an existing category and
	// training center. Returns ErrDuplicateKey when the CPF is already taken.
	Create(ctx context.Context, a *model.Athlete, categoryID, trainingCenterID string) (*model.Athlete, error)

	// FindByID returns an athlete by its ID.
	FindByID(ctx context.Context, id string) (*model.Athlete, error)

	// FindByCPF returns an athlete by its CPF.
	FindByCPF(ctx context.Context, cpf string) (*model.Athlete, error)

	// FindByName returns an athlete by its exact name.
	FindByName(ctx context.Context, name string) (*model.Athlete, error)

	// List returns a paginated list of athlete summaries and the total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.AthleteSummary], error)

	// Update applies a partial update; nil fields are left unchanged.
	// Returns sql.ErrNoRows when no athlete matches the ID.
	Update(ctx context.Context, id string, name *string, age *int) error

	// SetPhotoKey records the object storage key of the athlete's photo.
	// Returns sql.ErrNoRows when no athlete matches the ID.
	SetPhotoKey(ctx context.Context, id, key string) error

	// Delete removes an athlete by ID. It returns nil if the row was deleted
	// or did not exist.
	Delete(ctx context.Context, id string) error
}
