package template

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
)

func TestRenderPrediction(t *testing.T) {
	const body = "Predicted Length of Stay: {{prediction.days}} days"
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "rounds-down", value: 6.4, want: "Predicted Length of Stay: 6 days"},
		{name: "rounds-up", value: 6.6, want: "Predicted Length of Stay: 7 days"},
		{name: "half-to-even-down", value: 2.5, want: "Predicted Length of Stay: 2 days"},
		{name: "half-to-even-up", value: 3.5, want: "Predicted Length of Stay: 4 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderPrediction(body, tt.value); got != tt.want {
				t.Fatalf("RenderPrediction() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := RenderPrediction("{{prediction.value}} d", 6.4); got != "6.40 d" {
		t.Fatalf("RenderPrediction() = %q", got)
	}
}

func TestIndexPageRendersFieldsAndPrediction(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	data := NewIndexData(url.Values{"bmi": {"28.6"}})
	data.PredictionText = "Predicted Length of Stay: 6 days"

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, IndexPage, data); err != nil {
		t.Fatalf("ExecuteTemplate() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`name="rcount"`, `name="facid"`, `value="28.6"`, "Predicted Length of Stay: 6 days"} {
		if !strings.Contains(out, want) {
			t.Fatalf("index page missing %q", want)
		}
	}
	if strings.Index(out, `name="rcount"`) > strings.Index(out, `name="facid"`) {
		t.Fatalf("fields must follow schema order")
	}
}

func TestAboutPageRenders(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, AboutPage, nil); err != nil {
		t.Fatalf("ExecuteTemplate() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<h1>About</h1>") {
		t.Fatalf("unexpected about page: %s", buf.String())
	}
}
