package utils

import (
	"errors"
	"net/http"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/dto/responses"
	"pod-tracker-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse writes err as the error envelope. Anything that is not
// a CustomError is reported as a generic server failure. Developer detail is
// only attached outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error, production bool) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		customErr = exceptions.ErrServerProcess(err)
	}

	locations := make([]map[string]interface{}, 0, len(customErr.Locations))
	for _, location := range customErr.Locations {
		locations = append(locations, map[string]interface{}{
			"file":          location.File,
			"line":          location.Line,
			"function_name": location.FunctionName,
		})
	}
	if customErr.StatusCode >= constvars.StatusInternalServerError {
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("locations", locations),
		)
	} else {
		log.Warn(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("locations", locations),
		)
	}

	response := exceptions.CustomError{
		StatusCode:    customErr.StatusCode,
		Success:       false,
		ClientMessage: customErr.ClientMessage,
		Data:          customErr.Data,
	}
	if !production {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(customErr.StatusCode)
	json.NewEncoder(w).Encode(response)
}
