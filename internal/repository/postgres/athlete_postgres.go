package postgres

import (
	"context"
	"database/sql"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
)

// AthletePostgres is a PostgreSQL implementation of repository.AthleteRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type AthletePostgres struct {
	db *sql.DB
}

// NewAthletePostgres creates a new AthletePostgres repository.
func NewAthletePostgres(db *sql.DB) *AthletePostgres {
	return &AthletePostgres{db: db}
}

var _ repository.AthleteRepository = (*AthletePostgres)(nil)

const athleteSelectColumns = `
	a.id, a.name, a.cpf, a.age, a.weight, a.height, a.sex,
	c.name, t.name, COALESCE(a.photo_key, ''), a.created_at
`

// Create inserts a new athlete row and returns the stored record. The
// category and training center names on the returned athlete are taken from
// the input since the insert cannot join.
func (r *AthletePostgres) Create(ctx context.Context, a *model.Athlete, categoryID, trainingCenterID string) (*model.Athlete, error) {
	const q = `
		INSERT INTO athletes (id, name, cpf, age, weight, height, sex, category_id, training_center_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, name, cpf, age, weight, height, sex, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Name,
		a.CPF,
		a.Age,
		a.Weight,
		a.Height,
		a.Sex,
		categoryID,
		trainingCenterID,
		a.CreatedAt,
	)
	var out model.Athlete
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.CPF,
		&out.Age,
		&out.Weight,
		&out.Height,
		&out.Sex,
		&out.CreatedAt,
	); err != nil {
		return nil, mapUniqueViolation(err)
	}
	out.Category = a.Category
	out.TrainingCenter = a.TrainingCenter
	return &out, nil
}

func (r *AthletePostgres) findOne(ctx context.Context, where string, arg any) (*model.Athlete, error) {
	q := `
		SELECT ` + athleteSelectColumns + `
		FROM athletes a
		JOIN categories c ON c.id = a.category_id
		JOIN training_centers t ON t.id = a.training_center_id
		WHERE ` + where
	row := r.db.QueryRowContext(ctx, q, arg)
	var a model.Athlete
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.CPF,
		&a.Age,
		&a.Weight,
		&a.Height,
		&a.Sex,
		&a.Category,
		&a.TrainingCenter,
		&a.PhotoKey,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID fetches a single athlete by its ID.
func (r *AthletePostgres) FindByID(ctx context.Context, id string) (*model.Athlete, error) {
	return r.findOne(ctx, "a.id = $1", id)
}

// FindByCPF fetches a single athlete by its CPF.
func (r *AthletePostgres) FindByCPF(ctx context.Context, cpf string) (*model.Athlete, error) {
	return r.findOne(ctx, "a.cpf = $1", cpf)
}

// FindByName fetches a single athlete by its exact name.
func (r *AthletePostgres) FindByName(ctx context.Context, name string) (*model.Athlete, error) {
	return r.findOne(ctx, "a.name = $1", name)
}

// List returns athlete summaries using LIMIT/OFFSET pagination and a total count.
func (r *AthletePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.AthleteSummary], error) {
	const qCount = `SELECT COUNT(*) FROM athletes`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT a.name, c.name, t.name
		FROM athletes a
		JOIN categories c ON c.id = a.category_id
		JOIN training_centers t ON t.id = a.training_center_id
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AthleteSummary, 0)
	for rows.Next() {
		var s model.AthleteSummary
		if err := rows.Scan(&s.Name, &s.Category, &s.TrainingCenter); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.AthleteSummary]{
		Items: items,
		Total: total,
	}, nil
}

// Update applies a partial update; nil fields keep their current value.
func (r *AthletePostgres) Update(ctx context.Context, id string, name *string, age *int) error {
	const q = `
		UPDATE athletes
		SET name = COALESCE($2, name), age = COALESCE($3, age)
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q, id, name, age)
	if err != nil {
		return mapUniqueViolation(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetPhotoKey records the storage key of the athlete's photo.
func (r *AthletePostgres) SetPhotoKey(ctx context.Context, id, key string) error {
	const q = `UPDATE athletes SET photo_key = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an athlete by ID. It does not return an error if the row
// does not exist; existence checks belong to the service layer.
func (r *AthletePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM athletes WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
