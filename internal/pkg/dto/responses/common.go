package responses

import "time"

type HealthCheck struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

type RouteNotFound struct {
	AvailableRoutes []string `json:"availableRoutes"`
}
