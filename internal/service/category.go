package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
)

var ErrCategoryExists = errors.New("a category with this name already exists")

// CategoryListResult is the service-level DTO for paginated categories.
type CategoryListResult struct {
	Items []model.Category `json:"data"`
	Total int              `json:"total"`
}

// CategoryService defines the use cases for managing competition categories.
type CategoryService interface {
	// Create registers a new category with a unique name.
	Create(ctx context.Context, name string) (*model.Category, error)

	// Get returns a single category by its ID.
	Get(ctx context.Context, id string) (*model.Category, error)

	// List returns categories using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*CategoryListResult, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService constructs a new CategoryService.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	if name == "" || len(name) > 10 {
		return nil, fmt.Errorf("%w: name is required and must be at most 10 characters", ErrValidation)
	}
	cat := &model.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, cat)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return stored, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (s *categoryService) List(ctx context.Context, limit, offset int) (*CategoryListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &CategoryListResult{Items: res.Items, Total: res.Total}, nil
}
