package repository

import (
	"context"

	"workoutapi/internal/model"
)

// CategoryRepository defines data access for competition categories.
type CategoryRepository interface {
	// Create inserts a new category. Returns ErrDuplicateKey when the name is taken.
	Create(ctx context.Context, c *model.Category) (*model.Category, error)

	// FindByID returns a category by its ID.
	FindByID(ctx context.Context, id string) (*model.Category, error)

	// FindByName returns a category by its unique name.
	FindByName(ctx context.Context, name string) (*model.Category, error)

	// List returns a paginated list of categories and the total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Category], error)
}
