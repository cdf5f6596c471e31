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

var ErrTrainingCenterExists = errors.New("a training center with this name already exists")

// TrainingCenterInput is the payload for registering a new training center.
type TrainingCenterInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Owner   string `json:"owner"`
}

func (in TrainingCenterInput) validate() error {
	switch {
	case in.Name == "" || len(in.Name) > 20:
		return fmt.Errorf("%w: name is required and must be at most 20 characters", ErrValidation)
	case in.Address == "" || len(in.Address) > 60:
		return fmt.Errorf("%w: address is required and must be at most 60 characters", ErrValidation)
	case in.Owner == "" || len(in.Owner) > 30:
		return fmt.Errorf("%w: owner is required and must be at most 30 characters", ErrValidation)
	}
	return nil
}

// TrainingCenterListResult is the service-level DTO for paginated training centers.
type TrainingCenterListResult struct {
	Items []model.TrainingCenter `json:"data"`
	Total int                    `json:"total"`
}

// TrainingCenterService defines the use cases for managing training centers.
type TrainingCenterService interface {
	// Create registers a new training center with a unique name.
	Create(ctx context.Context, in TrainingCenterInput) (*model.TrainingCenter, error)

	// Get returns a single training center by its ID.
	Get(ctx context.Context, id string) (*model.TrainingCenter, error)

	// List returns training centers using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*TrainingCenterListResult, error)
}

type trainingCenterService struct {
	repo repository.TrainingCenterRepository
}

// NewTrainingCenterService constructs a new TrainingCenterService.
func NewTrainingCenterService(repo repository.TrainingCenterRepository) TrainingCenterService {
	return &trainingCenterService{repo: repo}
}

func (s *trainingCenterService) Create(ctx context.Context, in TrainingCenterInput) (*model.TrainingCenter, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tc := &model.TrainingCenter{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Owner:     in.Owner,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, tc)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrTrainingCenterExists
		}
		return nil, err
	}
	return stored, nil
}

func (s *trainingCenterService) Get(ctx context.Context, id string) (*model.TrainingCenter, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	tc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainingCenterNotFound
		}
		return nil, err
	}
	return tc, nil
}

func (s *trainingCenterService) List(ctx context.Context, limit, offset int) (*TrainingCenterListResult, error) {
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
	return &TrainingCenterListResult{Items: res.Items, Total: res.Total}, nil
}
