package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/los-predictor/web/internal/config"
	"github.com/los-predictor/web/internal/service"
	"github.com/los-predictor/web/internal/template"
	"go.uber.org/zap"
)

// NewRouter wires middleware, pages and API routes. gin's mode must be set
// by the caller before this is called.
func NewRouter(cfg config.ServerConfig, svc *service.PredictionService, logger *zap.Logger) (*gin.Engine, error) {
	pages, err := template.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	binding.EnableDecoderDisallowUnknownFields = true
	registerFeatureTagNames()

	router := gin.New()
	router.Use(RequestLogger(logger), Recovery(logger), SecurityHeaders())
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(CORS(cfg.AllowedOrigins))
	}
	router.SetHTMLTemplate(pages)

	predict := NewPredictHandler(svc)

	router.GET("/", Index)
	router.GET("/home", About)
	router.POST("/predict", predict.PredictForm)

	router.GET("/ping", Ping)
	router.GET("/healthz", Health(svc))
	router.GET("/openapi.json", OpenAPIDoc)

	api := router.Group("/api/v1")
	{
		api.POST("/predict", predict.PredictJSON)
		api.GET("/model", predict.ModelInfo)
	}

	return router, nil
}
