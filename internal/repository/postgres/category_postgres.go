package postgres

import (
	"context"
	"database/sql"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
)

// CategoryPostgres is a PostgreSQL implementation of repository.CategoryRepository.
type CategoryPostgres struct {
	db *sql.DB
}

// NewCategoryPostgres creates a new CategoryPostgres repository.
func NewCategoryPostgres(db *sql.DB) *CategoryPostgres {
	return &CategoryPostgres{db: db}
}

var _ repository.CategoryRepository = (*CategoryPostgres)(nil)

// Create inserts a new category row and returns the stored record.
func (r *CategoryPostgres) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	const q = `
		INSERT INTO categories (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, name, created_at
	`
	row := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.CreatedAt)
	var out model.Category
	if err := row.Scan(&out.ID, &out.Name, &out.CreatedAt); err != nil {
		return nil, mapUniqueViolation(err)
	}
	return &out, nil
}

// FindByID fetches a single category by its ID.
func (r *CategoryPostgres) FindByID(ctx context.Context, id string) (*model.Category, error) {
	const q = `SELECT id, name, created_at FROM categories WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// FindByName fetches a single category by its unique name.
func (r *CategoryPostgres) FindByName(ctx context.Context, name string) (*model.Category, error) {
	const q = `SELECT id, name, created_at FROM categories WHERE name = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name))
}

func (r *CategoryPostgres) scanOne(row *sql.Row) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns categories using LIMIT/OFFSET pagination and a total count.
func (r *CategoryPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Category], error) {
	const qCount = `SELECT COUNT(*) FROM categories`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Category]{
		Items: items,
		Total: total,
	}, nil
}
