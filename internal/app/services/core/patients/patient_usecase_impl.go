package patients

import (
	"context"
	"pod-tracker-service/internal/app/contracts"
	"pod-tracker-service/internal/app/models"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/dto/requests"
	"pod-tracker-service/internal/pkg/dto/responses"
	"pod-tracker-service/internal/pkg/exceptions"
	"pod-tracker-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
	Location          *time.Location
	Now               func() time.Time
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
	location *time.Location,
) contracts.PatientUsecase {
	if location == nil {
		location = time.UTC
	}
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
		Location:          location,
		Now:               time.Now,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreatePatientRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Warn("patientUsecase.CreatePatient validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		switch {
		case exceptions.HasFailedTag(err, "required"):
			return nil, exceptions.ErrMissingRequiredField(err)
		case exceptions.HasFailedTag(err, "calendar_date"):
			return nil, exceptions.ErrCannotParseDate(err)
		default:
			return nil, exceptions.ErrInputValidation(err)
		}
	}

	otDate, err := utils.ParseCalendarDate(request.OTDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	patient, err := uc.PatientRepository.CreatePatient(ctx, &models.Patient{
		Name:        request.Name,
		MRN:         request.MRN,
		SurgeryType: request.SurgeryType,
		OTDate:      &otDate,
		Surgeon:     request.Surgeon,
		Unit:        request.Unit,
	})
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := patient.ConvertIntoResponse(uc.Now(), uc.Location)
	utils.LogBusinessEvent(uc.Log, "patient_created", requestID,
		zap.String(constvars.LoggingPatientIDKey, response.ID),
		zap.String(constvars.LoggingPatientMRNKey, response.MRN),
	)
	return &response, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error fetching patients from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.Now()
	response := make([]responses.Patient, len(patients))
	for i, eachPatient := range patients {
		response[i] = eachPatient.ConvertIntoResponse(now, uc.Location)
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error fetching patient from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}

	response := patient.ConvertIntoResponse(uc.Now(), uc.Location)
	return &response, nil
}

func (uc *patientUsecase) UpdateByID(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdateByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	fields, err := buildPatientUpdate(request)
	if err != nil {
		uc.Log.Warn("patientUsecase.UpdateByID validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patient, err := uc.PatientRepository.UpdateByID(ctx, patientID, fields)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdateByID error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}

	updatedFields := make([]string, 0, len(fields))
	for key := range fields {
		updatedFields = append(updatedFields, key)
	}
	response := patient.ConvertIntoResponse(uc.Now(), uc.Location)
	utils.LogBusinessEvent(uc.Log, "patient_updated", requestID,
		zap.String(constvars.LoggingPatientIDKey, response.ID),
		zap.Strings(constvars.LoggingUpdatedFieldsKey, updatedFields),
	)
	return &response, nil
}

func (uc *patientUsecase) DeleteByID(ctx context.Context, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	deleted, err := uc.PatientRepository.DeleteByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeleteByID error deleting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrPatientNotFound(nil, patientID)
	}

	utils.LogBusinessEvent(uc.Log, "patient_deleted", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

// buildPatientUpdate turns the present fields of request into a $set
// document. Required fields may be omitted but not blanked.
func buildPatientUpdate(request *requests.UpdatePatient) (bson.M, error) {
	fields := bson.M{}
	if request == nil {
		return fields, nil
	}
	utils.SanitizeUpdatePatientRequest(request)

	required := []struct {
		key   string
		value *string
	}{
		{"name", request.Name},
		{"mrn", request.MRN},
	}
	for _, field := range required {
		if field.value == nil {
			continue
		}
		if *field.value == "" {
			return nil, exceptions.ErrBlankRequiredField(field.key)
		}
		fields[field.key] = *field.value
	}

	if request.OTDate != nil {
		if *request.OTDate == "" {
			return nil, exceptions.ErrBlankRequiredField("otDate")
		}
		otDate, err := utils.ParseCalendarDate(*request.OTDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		fields["otDate"] = otDate
	}

	optional := []struct {
		key   string
		value *string
	}{
		{"surgeryType", request.SurgeryType},
		{"surgeon", request.Surgeon},
		{"unit", request.Unit},
	}
	for _, field := range optional {
		if field.value != nil {
			fields[field.key] = *field.value
		}
	}

	return fields, nil
}
