package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/los-predictor/web/internal/model"
	"github.com/los-predictor/web/internal/service"
)

// Ping godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// Health godoc
// @Summary Readiness check with the loaded model type
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /healthz [get]
func Health(svc *service.PredictionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Model: svc.ModelInfo().Type})
	}
}
