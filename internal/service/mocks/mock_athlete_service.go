package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"workoutapi/internal/model"
	"workoutapi/internal/service"
)

type MockAthleteService struct {
	mock.Mock
}

func (m *MockAthleteService) Create(ctx context.Context, in service.AthleteInput) (*model.Athlete, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteService) List(ctx context.Context, limit, offset int) (*service.AthleteListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AthleteListResult), args.Error(1)
}

func (m *MockAthleteService) Get(ctx context.Context, id string) (*model.Athlete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteService) GetByCPF(ctx context.Context, cpf string) (*model.Athlete, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteService) GetByName(ctx context.Context, name string) (*model.Athlete, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteService) Update(ctx context.Context, id string, upd service.AthleteUpdate) (*model.Athlete, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAthleteService) AttachPhoto(ctx context.Context, id string, r io.Reader, originalFilename string, contentType string, size int64) (*model.Athlete, error) {
	args := m.Called(ctx, id, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteService) PhotoURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
