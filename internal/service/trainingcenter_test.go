package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"workoutapi/internal/model"
	"workoutapi/internal/repository"
	repoMocks "workoutapi/internal/repository/mocks"
)

func validTrainingCenterInput() TrainingCenterInput {
	return TrainingCenterInput{Name: "CT King", Address: "Av. Central 100", Owner: "Marcos"}
}

func TestTrainingCenterService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockTrainingCenterRepository)
		svc := NewTrainingCenterService(mRepo)
		mRepo.On("Create", ctx, mock.MatchedBy(func(tc *model.TrainingCenter) bool {
			return tc.ID != "" && tc.Name == "CT King" && tc.Owner == "Marcos" && !tc.CreatedAt.IsZero()
		})).Return(&model.TrainingCenter{ID: "gen-id", Name: "CT King"}, nil)

		tc, err := svc.Create(ctx, validTrainingCenterInput())

		assert.NoError(t, err)
		assert.Equal(t, "CT King", tc.Name)
		mRepo.AssertExpectations(t)
	})

	t.Run("validation error - missing address", func(t *testing.T) {
		mRepo := new(repoMocks.MockTrainingCenterRepository)
		svc := NewTrainingCenterService(mRepo)
		in := validTrainingCenterInput()
		in.Address = ""

		_, err := svc.Create(ctx, in)

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mRepo := new(repoMocks.MockTrainingCenterRepository)
		svc := NewTrainingCenterService(mRepo)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicateKey)

		_, err := svc.Create(ctx, validTrainingCenterInput())

		assert.ErrorIs(t, err, ErrTrainingCenterExists)
	})
}

func TestTrainingCenterService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mRepo := new(repoMocks.MockTrainingCenterRepository)
		svc := NewTrainingCenterService(mRepo)
		mRepo.On("FindByID", ctx, "tc-id").Return(&model.TrainingCenter{ID: "tc-id", Name: "CT King"}, nil)

		tc, err := svc.Get(ctx, "tc-id")

		assert.NoError(t, err)
		assert.Equal(t, "CT King", tc.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockTrainingCenterRepository)
		svc := NewTrainingCenterService(mRepo)
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, "missing")

		assert.ErrorIs(t, err, ErrTrainingCenterNotFound)
	})
}

func TestTrainingCenterService_List(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockTrainingCenterRepository)
	svc := NewTrainingCenterService(mRepo)
	mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.TrainingCenter]{
			Items: []model.TrainingCenter{{ID: "tc-id", Name: "CT King"}},
			Total: 1,
		}, nil)

	res, err := svc.List(ctx, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
}
