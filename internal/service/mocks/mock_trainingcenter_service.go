package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"workoutapi/internal/model"
	"workoutapi/internal/service"
)

type MockTrainingCenterService struct {
	mock.Mock
}

func (m *MockTrainingCenterService) Create(ctx context.Context, in service.TrainingCenterInput) (*model.TrainingCenter, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterService) Get(ctx context.Context, id string) (*model.TrainingCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingCenter), args.Error(1)
}

func (m *MockTrainingCenterService) List(ctx context.Context, limit, offset int) (*service.TrainingCenterListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TrainingCenterListResult), args.Error(1)
}
