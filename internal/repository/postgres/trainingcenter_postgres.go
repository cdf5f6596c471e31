package postgres

import (
	"context"
	"database/sql"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
)

// TrainingCenterPostgres is a PostgreSQL implementation of repository.TrainingCenterRepository.
type TrainingCenterPostgres struct {
	db *sql.DB
}

// NewTrainingCenterPostgres creates a new TrainingCenterPostgres repository.
func NewTrainingCenterPostgres(db *sql.DB) *TrainingCenterPostgres {
	return &TrainingCenterPostgres{db: db}
}

var _ repository.TrainingCenterRepository = (*TrainingCenterPostgres)(nil)

// Create inserts a new training center row and returns the stored record.
func (r *TrainingCenterPostgres) Create(ctx context.Context, tc *model.TrainingCenter) (*model.TrainingCenter, error) {
	const q = `
		INSERT INTO training_centers (id, name, address, owner, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, address, owner, created_at
	`
	row := r.db.QueryRowContext(ctx, q, tc.ID, tc.Name, tc.Address, tc.Owner, tc.CreatedAt)
	var out model.TrainingCenter
	if err := row.Scan(&out.ID, &out.Name, &out.Address, &out.Owner, &out.CreatedAt); err != nil {
		return nil, mapUniqueViolation(err)
	}
	return &out, nil
}

// FindByID fetches a single training center by its ID.
func (r *TrainingCenterPostgres) FindByID(ctx context.Context, id string) (*model.TrainingCenter, error) {
	const q = `SELECT id, name, address, owner, created_at FROM training_centers WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// FindByName fetches a single training center by its unique name.
func (r *TrainingCenterPostgres) FindByName(ctx context.Context, name string) (*model.TrainingCenter, error) {
	const q = `SELECT id, name, address, owner, created_at FROM training_centers WHERE name = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name))
}

func (r *TrainingCenterPostgres) scanOne(row *sql.Row) (*model.TrainingCenter, error) {
	var tc model.TrainingCenter
	if err := row.Scan(&tc.ID, &tc.Name, &tc.Address, &tc.Owner, &tc.CreatedAt); err != nil {
		return nil, err
	}
	return &tc, nil
}

// List returns training centers using LIMIT/OFFSET pagination and a total count.
func (r *TrainingCenterPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.TrainingCenter], error) {
	const qCount = `SELECT COUNT(*) FROM training_centers`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, address, owner, created_at
		FROM training_centers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TrainingCenter, 0)
	for rows.Next() {
		var tc model.TrainingCenter
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.Address, &tc.Owner, &tc.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.TrainingCenter]{
		Items: items,
		Total: total,
	}, nil
}
