package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"workoutapi/internal/service"
)

// CreateTrainingCenter registers a new training center.
func CreateTrainingCenter(svc service.TrainingCenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.TrainingCenterInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		tc, err := svc.Create(c.UserContext(), in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrTrainingCenterExists):
				return writeError(c, fiber.StatusConflict, "NAME_ALREADY_EXISTS",
					fmt.Sprintf("a training center named %s already exists", in.Name))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(tc)
	}
}

// ListTrainingCenters returns paginated training centers.
func ListTrainingCenters(svc service.TrainingCenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
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

// GetTrainingCenter returns a single training center by ID.
func GetTrainingCenter(svc service.TrainingCenterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		tc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrTrainingCenterNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND",
					fmt.Sprintf("training center not found with id: %s", id))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(tc)
	}
}
