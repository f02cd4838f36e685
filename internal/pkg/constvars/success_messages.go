package constvars

const (
	HealthCheckSuccessMessage = "service is healthy"

	CreatePatientSuccessMessage = "patient created"
	GetPatientsSuccessMessage   = "patients fetched"
	GetPatientSuccessMessage    = "patient fetched"
	UpdatePatientSuccessMessage = "patient updated"
	DeletePatientSuccessMessage = "patient deleted"
)
