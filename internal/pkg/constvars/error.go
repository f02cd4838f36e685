package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"calendar_date": "must be a date formatted as YYYY-MM-DD",
	"max":           "maximum at %s characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientRequestBodyTooLarge           = "request body too large"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientSomethingWrongWithApplication = "an error occurred processing your request"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientMissingRequiredFields         = "name, mrn, and otDate are required"
	ErrClientBlankRequiredField            = "%s cannot be empty"
	ErrClientInvalidOTDate                 = "otDate must be a valid date"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientRouteNotFound                 = "Route %s %s not found"
	ErrClientFailedToCreatePatient         = "Failed to create patient"
	ErrClientFailedToFetchPatients         = "Failed to fetch patients"
	ErrClientFailedToFetchPatient          = "Failed to fetch patient"
	ErrClientFailedToUpdatePatient         = "Failed to update patient"
	ErrClientFailedToDeletePatient         = "Failed to delete patient"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevRequestBodyTooLarge    = "request body exceeds the configured limit"
	ErrDevTooManyRequests        = "per IP rate limit reached"
	ErrDevCannotParseDate        = "cannot parse calendar date"
	ErrDevValidationFailed       = "validation failed"
	ErrDevMissingRequiredFields  = "missing required fields"
	ErrDevPatientNotFound        = "patient document not found"
	ErrDevRouteNotFound          = "no route matched the request"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanic            = "handler panicked"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on database"
	ErrDevDBConnectionFailed         = "failed to connect to database"
	ErrDevDBMissingConnectionString  = "MONGO_URI not set in environment variables"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
