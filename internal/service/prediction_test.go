package service

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/los-predictor/web/internal/config"
	"github.com/los-predictor/web/internal/estimator"
	"github.com/los-predictor/web/internal/model"
)

type fakePredictor struct {
	values []float64
	err    error
	frame  estimator.Frame
}

func (f *fakePredictor) Predict(frame estimator.Frame) ([]float64, error) {
	f.frame = frame
	return f.values, f.err
}

func (f *fakePredictor) Info() estimator.Info {
	return estimator.Info{Type: estimator.TypeRandomForest, FeatureNames: model.FeatureNames(), Trees: 3}
}

var exampleRow = []float64{3, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 35.1, 14.2, 137, 145, 12, 1.1, 28.6, 78, 6, 2, 0}

func exampleVector() *model.FeatureVector {
	var v model.FeatureVector
	rv := reflect.ValueOf(&v).Elem()
	for i, x := range exampleRow {
		x := x
		rv.Field(i).Set(reflect.ValueOf(&x))
	}
	return &v
}

func vectorWith(field int, value float64) *model.FeatureVector {
	v := exampleVector()
	reflect.ValueOf(v).Elem().Field(field).Set(reflect.ValueOf(&value))
	return v
}

func TestPredict(t *testing.T) {
	fake := &fakePredictor{values: []float64{6.4}}
	svc := NewPredictionService(fake, config.DefaultPredictionTemplate, nil)

	res, err := svc.Predict(context.Background(), exampleVector())
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if res.PredictionText != "Predicted Length of Stay: 6 days" || res.Days != 6 || res.Prediction != 6.4 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if !reflect.DeepEqual(fake.frame.Columns, model.FeatureNames()) {
		t.Fatalf("frame columns = %v", fake.frame.Columns)
	}
	if len(fake.frame.Rows) != 1 || !reflect.DeepEqual(fake.frame.Rows[0], exampleRow) {
		t.Fatalf("frame rows = %v", fake.frame.Rows)
	}
}

func TestPredictErrors(t *testing.T) {
	tests := []struct {
		name         string
		fake         *fakePredictor
		features     *model.FeatureVector
		invalidInput bool
	}{
		{name: "missing-feature", fake: &fakePredictor{values: []float64{1}}, features: &model.FeatureVector{}, invalidInput: true},
		{name: "model-error", fake: &fakePredictor{err: estimator.ErrFeatureMismatch}, features: exampleVector()},
		{name: "no-prediction", fake: &fakePredictor{}, features: exampleVector()},
		{name: "nan-prediction", fake: &fakePredictor{values: []float64{math.NaN()}}, features: exampleVector()},
		{name: "overflowing-prediction", fake: &fakePredictor{values: []float64{1e19}}, features: exampleVector()},
		{name: "nan-feature", fake: &fakePredictor{values: []float64{1}}, features: vectorWith(13, math.NaN()), invalidInput: true},
		{name: "inf-feature", fake: &fakePredictor{values: []float64{1}}, features: vectorWith(13, math.Inf(1)), invalidInput: true},
		{name: "negative-inf-feature", fake: &fakePredictor{values: []float64{1}}, features: vectorWith(0, math.Inf(-1)), invalidInput: true},
		{name: "beyond-float32-feature", fake: &fakePredictor{values: []float64{1}}, features: vectorWith(13, 1e39), invalidInput: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPredictionService(tt.fake, config.DefaultPredictionTemplate, nil)
			_, err := svc.Predict(context.Background(), tt.features)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidInput); got != tt.invalidInput {
				t.Fatalf("errors.Is(err, ErrInvalidInput) = %v, want %v (err=%v)", got, tt.invalidInput, err)
			}
		})
	}
}

func TestPredictCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewPredictionService(&fakePredictor{values: []float64{1}}, config.DefaultPredictionTemplate, nil)
	if _, err := svc.Predict(ctx, exampleVector()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPredictWithArtifact(t *testing.T) {
	est, err := estimator.Load("../../models/random_forest_model.json", model.FeatureNames())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	svc := NewPredictionService(est, config.DefaultPredictionTemplate, nil)

	first, err := svc.Predict(context.Background(), exampleVector())
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	second, err := svc.Predict(context.Background(), exampleVector())
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if first.Prediction != second.Prediction {
		t.Fatalf("prediction not deterministic: %v vs %v", first.Prediction, second.Prediction)
	}
	if first.PredictionText != "Predicted Length of Stay: 6 days" {
		t.Fatalf("PredictionText = %q", first.PredictionText)
	}

	info := svc.ModelInfo()
	if info.Type != estimator.TypeRandomForest || info.Trees != 3 || len(info.FeatureNames) != 24 {
		t.Fatalf("unexpected model info: %+v", info)
	}
}
