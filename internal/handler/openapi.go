package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/los-predictor/web/docs"
)

// OpenAPIDoc godoc
// @Summary Generated OpenAPI document
// @Tags docs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /openapi.json [get]
func OpenAPIDoc(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}
