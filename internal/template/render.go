// Package template provides the HTML pages and the prediction sentence.
//
// Supported variables in the prediction sentence:
//
//	{{prediction.days}}   prediction rounded to whole days (half to even)
//	{{prediction.value}}  prediction with two decimals
package template

import (
	"embed"
	htmltemplate "html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/los-predictor/web/internal/model"
)

//go:embed templates/*.html
var files embed.FS

const (
	IndexPage = "index.html"
	AboutPage = "home.html"
)

// Load parses the embedded pages. Templates are addressed by file name.
func Load() (*htmltemplate.Template, error) {
	return htmltemplate.ParseFS(files, "templates/*.html")
}

type Field struct {
	Name  string
	Label string
	Value string
}

// IndexData is rendered by the landing page.
type IndexData struct {
	Fields         []Field
	PredictionText string
	Error          string
}

// NewIndexData lists the form fields in schema order, pre-filled from the
// submitted values when there are any.
func NewIndexData(submitted url.Values) IndexData {
	fields := make([]Field, len(model.Features))
	for i, f := range model.Features {
		fields[i] = Field{Name: f.Name, Label: f.Label, Value: submitted.Get(f.Name)}
	}
	return IndexData{Fields: fields}
}

// RenderPrediction substitutes the prediction variables in body.
func RenderPrediction(body string, prediction float64) string {
	return strings.NewReplacer(
		"{{prediction.days}}", strconv.FormatFloat(prediction, 'f', 0, 64),
		"{{prediction.value}}", strconv.FormatFloat(prediction, 'f', 2, 64),
	).Replace(body)
}
