package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
)

type MockTrainingCenterRepository struct {
	mock.Mock
}

func (m *MockTrainingCenterRepository) Create(ctx context.Context, tc *model.TrainingCenter) (*model.TrainingCenter, error) {
	args := m.Called(ctx, tc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) FindByID(ctx context.Context, id string) (*model.TrainingCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) FindByName(ctx context.Context, name string) (*model.TrainingCenter, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.TrainingCenter], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.TrainingCenter]), args.Error(1)
}
