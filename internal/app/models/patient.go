package models

import (
	"pod-tracker-service/internal/pkg/dto/responses"
	"pod-tracker-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	MRN         string             `bson:"mrn"`
	SurgeryType string             `bson:"surgeryType"`
	OTDate      *time.Time         `bson:"otDate"`
	Surgeon     string             `bson:"surgeon"`
	Unit        string             `bson:"unit"`
	TimeModel   `bson:",inline"`
}

// ConvertIntoResponse attaches the post-operative day as of now, with
// "today" read in loc.
func (p Patient) ConvertIntoResponse(now time.Time, loc *time.Location) responses.Patient {
	return responses.Patient{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		MRN:         p.MRN,
		SurgeryType: p.SurgeryType,
		OTDate:      utils.FormatCalendarDate(p.OTDate),
		Surgeon:     p.Surgeon,
		Unit:        p.Unit,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		POD:         utils.CalculatePOD(p.OTDate, now, loc),
	}
}
