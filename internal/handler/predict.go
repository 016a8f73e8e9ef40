package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/los-predictor/web/internal/model"
	"github.com/los-predictor/web/internal/service"
	"github.com/los-predictor/web/internal/template"
)

type PredictHandler struct {
	svc *service.PredictionService
}

func NewPredictHandler(svc *service.PredictionService) *PredictHandler {
	return &PredictHandler{svc: svc}
}

// PredictForm godoc
// @Summary Predict length of stay from the landing page form
// @Description Every feature of the schema is sent once, by name. The landing page is re-rendered with the prediction or the error.
// @Tags predict
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200 {string} string "landing page with the prediction sentence"
// @Failure 400 {string} string "landing page with the input error"
// @Failure 500 {string} string "landing page with the model error"
// @Router /predict [post]
func (h *PredictHandler) PredictForm(c *gin.Context) {
	var req model.FeatureVector
	err := c.ShouldBindWith(&req, binding.FormPost)
	if err == nil {
		err = model.CheckFormKeys(c.Request.PostForm)
	}
	data := template.NewIndexData(c.Request.PostForm)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		data.Error = bindingMessage(err)
		c.HTML(http.StatusBadRequest, template.IndexPage, data)
		return
	}

	res, err := h.svc.Predict(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		data.Error = err.Error()
		c.HTML(predictStatus(err), template.IndexPage, data)
		return
	}

	data.PredictionText = res.PredictionText
	c.HTML(http.StatusOK, template.IndexPage, data)
}

// PredictJSON godoc
// @Summary Predict length of stay
// @Tags predict
// @Accept json
// @Produce json
// @Param request body model.FeatureVector true "All 24 features, by name"
// @Success 200 {object} model.PredictResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/predict [post]
func (h *PredictHandler) PredictJSON(c *gin.Context) {
	var req model.FeatureVector
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: bindingMessage(err)})
		return
	}

	res, err := h.svc.Predict(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		c.JSON(predictStatus(err), model.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ModelInfo godoc
// @Summary Describe the loaded model artifact
// @Tags predict
// @Produce json
// @Success 200 {object} model.ModelInfoResponse
// @Router /api/v1/model [get]
func (h *PredictHandler) ModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ModelInfo())
}

func predictStatus(err error) int {
	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		return "missing features: " + strings.Join(missing, ", ")
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("value %q is not a number", numErr.Num)
	}
	return err.Error()
}

var tagNamesOnce sync.Once

// registerFeatureTagNames makes validation errors report the submitted
// field name instead of the Go field name.
func registerFeatureTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
}
