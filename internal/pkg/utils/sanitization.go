package utils

import (
	"pod-tracker-service/internal/pkg/dto/requests"
	"strings"
)

func trimOptional(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.MRN = strings.TrimSpace(input.MRN)
	input.SurgeryType = strings.TrimSpace(input.SurgeryType)
	input.OTDate = strings.TrimSpace(input.OTDate)
	input.Surgeon = strings.TrimSpace(input.Surgeon)
	input.Unit = strings.TrimSpace(input.Unit)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimOptional(input.Name)
	trimOptional(input.MRN)
	trimOptional(input.SurgeryType)
	trimOptional(input.OTDate)
	trimOptional(input.Surgeon)
	trimOptional(input.Unit)
}
