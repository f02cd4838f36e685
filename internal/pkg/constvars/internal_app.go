package constvars

type ContextKey string

const (
	AppServiceName = "POD Tracker API"

	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	MongoCollectionPatients = "patients"
)

const (
	URLParamPatientID = "id"
)

const (
	// CalendarDateLayout is the wire format of otDate.
	CalendarDateLayout = "2006-01-02"
	// CardDateLayout is how otDate is shown on patient cards.
	CardDateLayout = "Jan 2, 2006"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "POD_SVC_"
)
