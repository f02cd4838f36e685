package responses

import "time"

type Patient struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MRN         string    `json:"mrn"`
	SurgeryType string    `json:"surgeryType"`
	OTDate      string    `json:"otDate"`
	Surgeon     string    `json:"surgeon"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	POD         int       `json:"pod"`
}
