package routers

import (
	"net/http"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/app/delivery/http/controllers"
	"pod-tracker-service/internal/app/delivery/http/middlewares"
	"pod-tracker-service/internal/pkg/constvars"
	"regexp"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	patientController *controllers.PatientController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins(),
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders: []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())

	bodyLimit := internalConfig.App.RequestBodyLimitInMegabyte
	if bodyLimit <= 0 {
		bodyLimit = 1
	}
	router.Use(middleware.RequestSize(int64(bodyLimit) << 20))

	router.Get("/", healthController.Check)

	router.Route("/api", func(r chi.Router) {
		attachPatientRoutes(r, patientController)
	})

	notFound := middlewares.RouteNotFound(availableRoutes(router))
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)
}

var urlParamPattern = regexp.MustCompile(`\{([^}:]+)(:[^}]*)?\}`)

// availableRoutes lists every registered route as "METHOD /path", with URL
// parameters written as ":name".
func availableRoutes(router chi.Routes) []string {
	routes := make([]string, 0)
	chi.Walk(router, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+urlParamPattern.ReplaceAllString(route, ":$1"))
		return nil
	})
	sort.Strings(routes)
	return routes
}
