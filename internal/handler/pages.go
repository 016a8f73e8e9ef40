package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/los-predictor/web/internal/template"
)

// Index renders the landing page with an empty form.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, template.IndexPage, template.NewIndexData(nil))
}

// About renders the about page.
func About(c *gin.Context) {
	c.HTML(http.StatusOK, template.AboutPage, nil)
}
