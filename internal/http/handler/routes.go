package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"workoutapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; they parse, delegate, and translate
// service errors into the standardized payload.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	athletes service.AthleteService,
	categories service.CategoryService,
	centers service.TrainingCenterService,
) {
	// Readiness (DB ping) and liveness probes
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Athletes. Lookup routes by cpf/name are registered before the :id
	// route so the static segments win the match.
	app.Post("/athletes", CreateAthlete(athletes))
	app.Get("/athletes", ListAthletes(athletes))
	app.Get("/athletes/cpf/:cpf", GetAthleteByCPF(athletes))
	app.Get("/athletes/name/:name", GetAthleteByName(athletes))
	app.Get("/athletes/:id", GetAthlete(athletes))
	app.Patch("/athletes/:id", UpdateAthlete(athletes))
	app.Delete("/athletes/:id", DeleteAthlete(athletes))
	app.Post("/athletes/:id/photo", UploadAthletePhoto(athletes))
	app.Get("/athletes/:id/photo", GetAthletePhoto(athletes))

	// Categories
	app.Post("/categories", CreateCategory(categories))
	app.Get("/categories", ListCategories(categories))
	app.Get("/categories/:id", GetCategory(categories))

	// Training centers
	app.Post("/training-centers", CreateTrainingCenter(centers))
	app.Get("/training-centers", ListTrainingCenters(centers))
	app.Get("/training-centers/:id", GetTrainingCenter(centers))
}
