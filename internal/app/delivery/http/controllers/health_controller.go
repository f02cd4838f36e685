package controllers

import (
	"net/http"
	"pod-tracker-service/internal/app/config"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/dto/responses"
	"pod-tracker-service/internal/pkg/utils"
	"time"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
	Now            func() time.Time
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		InternalConfig: internalConfig,
		Now:            time.Now,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
		Status:      "ok",
		Service:     constvars.AppServiceName,
		Timestamp:   ctrl.Now().UTC(),
		Environment: ctrl.InternalConfig.App.Env,
	})
}
