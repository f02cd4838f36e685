package contracts

import (
	"context"
	"pod-tracker-service/internal/app/models"
	"pod-tracker-service/internal/pkg/dto/requests"
	"pod-tracker-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	FindAll(ctx context.Context) ([]responses.Patient, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	UpdateByID(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeleteByID(ctx context.Context, patientID string) error
}

// PatientRepository reports a missing patient as a nil result, never as an
// error. Malformed identifiers count as missing.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdateByID(ctx context.Context, patientID string, fields bson.M) (*models.Patient, error)
	DeleteByID(ctx context.Context, patientID string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
