package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"workoutapi/internal/service"
)

// CreateAthlete registers a new athlete. The referenced category and training
// center must already exist; a taken CPF answers 303, matching the public
// API contract.
func CreateAthlete(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.AthleteInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		athlete, err := svc.Create(c.UserContext(), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrCategoryNotFound):
				return writeError(c, fiber.StatusBadRequest, "CATEGORY_NOT_FOUND",
					fmt.Sprintf("category %s was not found", in.Category.Name))
			case errors.Is(err, service.ErrTrainingCenterNotFound):
				return writeError(c, fiber.StatusBadRequest, "TRAINING_CENTER_NOT_FOUND",
					fmt.Sprintf("training center %s was not found", in.TrainingCenter.Name))
			case errors.Is(err, service.ErrCPFTaken):
				return writeError(c, fiber.StatusSeeOther, "CPF_ALREADY_EXISTS",
					fmt.Sprintf("an athlete is already registered with cpf: %s", in.CPF))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(athlete)
	}
}

// ListAthletes returns paginated athlete summaries.
func ListAthletes(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "3")
		offsetStr := c.Query("offset", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetAthlete returns a single athlete by ID.
func GetAthlete(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		athlete, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrAthleteNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND",
					fmt.Sprintf("athlete not found with id: %s", id))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(athlete)
	}
}

// GetAthleteByCPF returns a single athlete by CPF.
func GetAthleteByCPF(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cpf := c.Params("cpf")
		athlete, err := svc.GetByCPF(c.UserContext(), cpf)
		if err != nil {
			if errors.Is(err, service.ErrAthleteNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND",
					fmt.Sprintf("athlete not found with cpf: %s", cpf))
			}
			if errors.Is(err, service.ErrValidation) {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(athlete)
	}
}

// GetAthleteByName returns a single athlete by exact name.
func GetAthleteByName(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		athlete, err := svc.GetByName(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, service.ErrAthleteNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND",
					fmt.Sprintf("athlete not found with name: %s", name))
			}
			if errors.Is(err, service.ErrValidation) {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(athlete)
	}
}

// UpdateAthlete applies a partial update (name and/or age).
func UpdateAthlete(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var upd service.AthleteUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		athlete, err := svc.Update(c.UserContext(), id, upd)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrAthleteNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND",
					fmt.Sprintf("athlete not found with id: %s", id))
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(athlete)
	}
}

// DeleteAthlete removes an athlete by ID.
func DeleteAthlete(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrAthleteNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND",
					fmt.Sprintf("athlete not found with id: %s", id))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadAthletePhoto stores the athlete's photo (multipart/form-data, field
// name: file) and records its object key.
func UploadAthletePhoto(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		athlete, err := svc.AttachPhoto(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			if errors.Is(err, service.ErrAthleteNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND",
					fmt.Sprintf("athlete not found with id: %s", id))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(athlete)
	}
}

// GetAthletePhoto redirects to a presigned download URL for the photo.
func GetAthletePhoto(svc service.AthleteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.PhotoURL(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrAthleteNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND",
					fmt.Sprintf("athlete not found with id: %s", id))
			case errors.Is(err, service.ErrPhotoNotFound):
				return writeError(c, fiber.StatusNotFound, "PHOTO_NOT_FOUND", "athlete has no photo")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}
