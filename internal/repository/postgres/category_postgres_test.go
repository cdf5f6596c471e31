package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
)

func TestCategoryPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCategoryPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	cat := &model.Category{ID: "cat-id", Name: "Scale", CreatedAt: now}

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(cat.ID, cat.Name, cat.CreatedAt)

		mock.ExpectQuery("INSERT INTO categories").
			WithArgs(cat.ID, cat.Name, cat.CreatedAt).
			WillReturnRows(rows)

		result, err := repo.Create(ctx, cat)

		assert.NoError(t, err)
		assert.Equal(t, "Scale", result.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"})

		result, err := repo.Create(ctx, cat)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})
}

func TestCategoryPostgres_FindByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCategoryPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("cat-id", "Scale", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM categories WHERE name = ?").
			WithArgs("Scale").
			WillReturnRows(rows)

		cat, err := repo.FindByName(ctx, "Scale")

		assert.NoError(t, err)
		assert.Equal(t, "cat-id", cat.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM categories WHERE name = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		cat, err := repo.FindByName(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, cat)
	})
}

func TestCategoryPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCategoryPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow("cat-id", "Scale", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM categories ORDER BY").
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
}
