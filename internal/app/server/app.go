package server

import (
	"context"
	"net/http"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/app/contracts"
	"pod-tracker-service/internal/app/delivery/http/controllers"
	"pod-tracker-service/internal/app/delivery/http/middlewares"
	"pod-tracker-service/internal/app/delivery/http/routers"
	"pod-tracker-service/internal/app/services/core/patients"
	"time"

	"go.uber.org/zap"
)

type App struct {
	Handler           http.Handler
	PatientRepository contracts.PatientRepository
}

// BuildApp wires repositories, usecases and controllers onto the bootstrap
// router. It does no I/O.
func BuildApp(bootstrap config.Bootstrap) *App {
	location, err := bootstrap.InternalConfig.App.Location()
	if err != nil {
		bootstrap.Logger.Warn("Unknown APP_TIMEZONE, falling back to UTC",
			zap.String("timezone", bootstrap.InternalConfig.App.Timezone),
			zap.Error(err),
		)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Health
	healthController := controllers.NewHealthController(bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger, location)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, healthController, patientController)

	return &App{
		Handler:           bootstrap.Router,
		PatientRepository: patientMongoRepository,
	}
}

// EnsureIndexes creates the collection indexes within a bounded time. A
// failure is logged and otherwise ignored, the API works without them.
func EnsureIndexes(ctx context.Context, app *App, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := app.PatientRepository.EnsureIndexes(ctx)
	if err != nil {
		log.Warn("Failed to ensure patient indexes", zap.Error(err))
	}
}
