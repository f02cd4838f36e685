package middlewares

import (
	"net/http"
	"pod-tracker-service/internal/pkg/dto/responses"
	"pod-tracker-service/internal/pkg/exceptions"
	"pod-tracker-service/internal/pkg/utils"
)

// RouteNotFound answers unmatched paths, and known paths hit with the wrong
// method, with the list of routes the API serves.
func (m *Middlewares) RouteNotFound(availableRoutes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customErr := exceptions.ErrRouteNotFound(r.Method, r.URL.Path)
		customErr.Data = responses.RouteNotFound{AvailableRoutes: availableRoutes}
		utils.BuildErrorResponse(m.Log, w, customErr, m.InternalConfig.App.IsProduction())
	}
}
