package routers

import (
	"pod-tracker-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Post("/patients", patientController.CreatePatient)
	router.Get("/patients", patientController.FindAll)
	router.Get("/patients/{id}", patientController.FindByID)
	router.Put("/patients/{id}", patientController.UpdateByID)
	router.Delete("/patients/{id}", patientController.DeleteByID)
}
