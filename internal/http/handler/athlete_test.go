package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"workoutapi/internal/model"
	"workoutapi/internal/service"
	serviceMocks "workoutapi/internal/service/mocks"
)

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateAthlete(t *testing.T) {
	mockSvc := new(serviceMocks.MockAthleteService)
	app := fiber.New()
	app.Post("/athletes", CreateAthlete(mockSvc))

	input := service.AthleteInput{
		Name:           "Joao",
		CPF:            "12345678901",
		Age:            25,
		Weight:         75.5,
		Height:         1.78,
		Sex:            "M",
		Category:       service.NameRef{Name: "Scale"},
		TrainingCenter: service.NameRef{Name: "CT King"},
	}

	t.Run("success", func(t *testing.T) {
		expected := &model.Athlete{ID: uuid.New().String(), Name: "Joao", CPF: "12345678901"}
		mockSvc.On("Create", mock.Anything, input).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/athletes", input))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Athlete
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("category not found", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, input).Return(nil, service.ErrCategoryNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/athletes", input))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "CATEGORY_NOT_FOUND", body.Error.Code)
		assert.Contains(t, body.Error.Message, "Scale")
		mockSvc.AssertExpectations(t)
	})

	t.Run("training center not found", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, input).Return(nil, service.ErrTrainingCenterNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/athletes", input))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "TRAINING_CENTER_NOT_FOUND", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("cpf already exists", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, input).Return(nil, service.ErrCPFTaken).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/athletes", input))

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "CPF_ALREADY_EXISTS", body.Error.Code)
		assert.Contains(t, body.Error.Message, "12345678901")
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrValidation).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/athletes", service.AthleteInput{}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/athletes", strings.NewReader("{not-json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})
}

func TestListAthletes(t *testing.T) {
	mockSvc := new(serviceMocks.MockAthleteService)
	app := fiber.New()
	app.Get("/athletes", ListAthletes(mockSvc))

	t.Run("success with defaults", func(t *testing.T) {
		expected := &service.AthleteListResult{
			Items: []model.AthleteSummary{{Name: "Joao", Category: "Scale", TrainingCenter: "CT King"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 3, 0).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/athletes", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.AthleteListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/athletes?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_LIMIT", body.Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 3, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/athletes", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetAthlete(t *testing.T) {
	mockSvc := new(serviceMocks.MockAthleteService)
	app := fiber.New()
	app.Get("/athletes/:id", GetAthlete(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Athlete{ID: id, Name: "Joao"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/athletes/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Athlete
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrAthleteNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/athletes/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/athletes/invalid-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestGetAthleteByCPF(t *testing.T) {
	mockSvc := new(serviceMocks.MockAthleteService)
	app := fiber.New()
	app.Get("/athletes/cpf/:cpf", GetAthleteByCPF(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("GetByCPF", mock.Anything, "12345678901").
			Return(&model.Athlete{ID: uuid.New().String(), CPF: "12345678901"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/athletes/cpf/12345678901", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("GetByCPF", mock.Anything, "00000000000").Return(nil, service.ErrAthleteNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/athletes/cpf/00000000000", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Contains(t, body.Error.Message, "00000000000")
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateAthlete(t *testing.T) {
	mockSvc := new(serviceMocks.MockAthleteService)
	app := fiber.New()
	app.Patch("/athletes/:id", UpdateAthlete(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		name := "Joao Pedro"
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(upd service.AthleteUpdate) bool {
			return upd.Name != nil && *upd.Name == name && upd.Age == nil
		})).Return(&model.Athlete{ID: id, Name: name}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/athletes/"+id, map[string]any{"name": name}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Athlete
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, name, result.Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(nil, service.ErrAthleteNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/athletes/"+id, map[string]any{"age": 30}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteAthlete(t *testing.T) {
	mockSvc := new(serviceMocks.MockAthleteService)
	app := fiber.New()
	app.Delete("/athletes/:id", DeleteAthlete(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/athletes/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrAthleteNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/athletes/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUploadAthletePhoto(t *testing.T) {
	mockSvc := new(serviceMocks.MockAthleteService)
	app := fiber.New()
	app.Post("/athletes/:id/photo", UploadAthletePhoto(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "face.jpg")
		part.Write([]byte("image-bytes"))
		writer.Close()

		expected := &model.Athlete{ID: id, PhotoKey: "athletes/uuid.jpg"}
		mockSvc.On("AttachPhoto", mock.Anything, id, mock.Anything, "face.jpg", mock.Anything, mock.Anything).
			Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/athletes/"+id+"/photo", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Athlete
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "athletes/uuid.jpg", result.PhotoKey)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodPost, "/athletes/"+id+"/photo", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "FILE_REQUIRED", body.Error.Code)
	})
}

func TestGetAthletePhoto(t *testing.T) {
	mockSvc := new(serviceMocks.MockAthleteService)
	app := fiber.New()
	app.Get("/athletes/:id/photo", GetAthletePhoto(mockSvc))

	t.Run("redirects to presigned url", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("PhotoURL", mock.Anything, id).
			Return("https://storage.example/athletes/p.jpg?sig=abc", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/athletes/"+id+"/photo", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://storage.example/athletes/p.jpg?sig=abc", resp.Header.Get("Location"))
		mockSvc.AssertExpectations(t)
	})

	t.Run("no photo", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("PhotoURL", mock.Anything, id).Return("", service.ErrPhotoNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/athletes/"+id+"/photo", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "PHOTO_NOT_FOUND", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}
