package estimator

import "fmt"

type Linear struct {
	info         Info
	coefficients []float64
	intercept    float64
}

func newLinear(info Info, coefficients []float64, intercept float64) (*Linear, error) {
	if len(coefficients) != len(info.FeatureNames) {
		return nil, fmt.Errorf("%w: %d coefficients for %d features", ErrFeatureMismatch, len(coefficients), len(info.FeatureNames))
	}
	return &Linear{info: info, coefficients: coefficients, intercept: intercept}, nil
}

func (l *Linear) Predict(frame Frame) ([]float64, error) {
	rows, err := frame.matrix(l.info.FeatureNames)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		y := l.intercept
		for j, coef := range l.coefficients {
			y += coef * row[j]
		}
		out[i] = y
	}
	return out, nil
}

func (l *Linear) Info() Info {
	info := l.info
	info.FeatureNames = append([]string(nil), l.info.FeatureNames...)
	return info
}
