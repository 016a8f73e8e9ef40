package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/los-predictor/web/internal/estimator"
	"github.com/los-predictor/web/internal/model"
	"github.com/los-predictor/web/internal/template"
	"go.uber.org/zap"
)

// ErrInvalidInput marks request problems the caller can fix.
var ErrInvalidInput = errors.New("invalid input")

type Predictor interface {
	Predict(frame estimator.Frame) ([]float64, error)
	Info() estimator.Info
}

type PredictionService struct {
	predictor    Predictor
	textTemplate string
	logger       *zap.Logger
}

func NewPredictionService(predictor Predictor, textTemplate string, logger *zap.Logger) *PredictionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionService{predictor: predictor, textTemplate: textTemplate, logger: logger}
}

// Predict runs the model on a single feature row.
func (s *PredictionService) Predict(ctx context.Context, features *model.FeatureVector) (*model.PredictResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	values, err := features.Values()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := checkRange(model.FeatureNames(), values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	frame, err := estimator.NewFrame(model.FeatureNames(), values)
	if err != nil {
		return nil, fmt.Errorf("failed to build model input: %w", err)
	}

	predictions, err := s.predictor.Predict(frame)
	if err != nil {
		return nil, fmt.Errorf("failed to predict: %w", err)
	}
	if len(predictions) == 0 {
		return nil, errors.New("model returned no prediction")
	}
	prediction := predictions[0]
	if math.IsNaN(prediction) || math.IsInf(prediction, 0) {
		return nil, fmt.Errorf("model returned non-finite prediction %v", prediction)
	}

	days := math.RoundToEven(prediction)
	if days >= math.MaxInt64 || days < math.MinInt64 {
		return nil, fmt.Errorf("model returned out of range prediction %v", prediction)
	}

	s.logger.Debug("prediction", zap.Float64("value", prediction))
	return &model.PredictResponse{
		Prediction:     prediction,
		Days:           int64(days),
		PredictionText: template.RenderPrediction(s.textTemplate, prediction),
	}, nil
}

func (s *PredictionService) ModelInfo() model.ModelInfoResponse {
	info := s.predictor.Info()
	return model.ModelInfoResponse{
		Type:         info.Type,
		Version:      info.Version,
		FeatureNames: info.FeatureNames,
		Trees:        info.Trees,
	}
}

// checkRange rejects values the model cannot compare: trees split in
// float32, so anything non-finite or beyond float32 range is refused.
func checkRange(names []string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxFloat32 {
			return fmt.Errorf("feature %s is not a finite number within float32 range", names[i])
		}
	}
	return nil
}
