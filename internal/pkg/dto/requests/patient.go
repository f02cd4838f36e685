package requests

type CreatePatient struct {
	Name        string `json:"name" validate:"required"`
	MRN         string `json:"mrn" validate:"required"`
	SurgeryType string `json:"surgeryType"`
	OTDate      string `json:"otDate" validate:"required,calendar_date"`
	Surgeon     string `json:"surgeon"`
	Unit        string `json:"unit"`
}

// UpdatePatient carries a partial update. A nil field is left untouched.
type UpdatePatient struct {
	Name        *string `json:"name"`
	MRN         *string `json:"mrn"`
	SurgeryType *string `json:"surgeryType"`
	OTDate      *string `json:"otDate"`
	Surgeon     *string `json:"surgeon"`
	Unit        *string `json:"unit"`
}

func (r *UpdatePatient) IsEmpty() bool {
	return r.Name == nil &&
		r.MRN == nil &&
		r.SurgeryType == nil &&
		r.OTDate == nil &&
		r.Surgeon == nil &&
		r.Unit == nil
}
