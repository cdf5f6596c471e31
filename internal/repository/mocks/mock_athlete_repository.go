package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
)

type MockAthleteRepository struct {
	mock.Mock
}

func (m *MockAthleteRepository) Create(ctx context.Context, a *model.Athlete, categoryID, trainingCenterID string) (*model.Athlete, error) {
	args := m.Called(ctx, a, categoryID, trainingCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByID(ctx context.Context, id string) (*model.Athlete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByCPF(ctx context.Context, cpf string) (*model.Athlete, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) FindByName(ctx context.Context, name string) (*model.Athlete, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.AthleteSummary], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.AthleteSummary]), args.Error(1)
}

func (m *MockAthleteRepository) Update(ctx context.Context, id string, name *string, age *int) error {
	args := m.Called(ctx, id, name, age)
	return args.Error(0)
}

func (m *MockAthleteRepository) SetPhotoKey(ctx context.Context, id, key string) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

func (m *MockAthleteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
