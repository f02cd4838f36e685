package middlewares

import (
	"net/http"
	"pod-tracker-service/internal/pkg/exceptions"
	"pod-tracker-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit caps requests per client IP per second and answers with the
// regular error envelope once the cap is reached.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 50
	}
	return httprate.Limit(
		maxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(), m.InternalConfig.App.IsProduction())
		}),
	)
}
