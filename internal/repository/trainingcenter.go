package repository

import (
	"context"

	"workoutapi/internal/model"
)

// TrainingCenterRepository defines data access for training centers.
type TrainingCenterRepository interface {
	// Create inserts a new training center. Returns ErrDuplicateKey when the name is taken.
	Create(ctx context.Context, tc *model.TrainingCenter) (*model.TrainingCenter, error)

	// FindByID returns a training center by its ID.
	FindByID(ctx context.Context, id string) (*model.TrainingCenter, error)

	// FindByName returns a training center by its unique name.
	FindByName(ctx context.Context, name string) (*model.TrainingCenter, error)

	// List returns a paginated list of training centers and the total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.TrainingCenter], error)
}
