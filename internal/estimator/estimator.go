// Package estimator loads exported regression models and runs inference on
// labeled frames.
//
// Supported artifact types:
//
//	random_forest  - mean of the outputs of several regression trees
//	decision_tree  - a single regression tree
//	linear         - intercept plus a weighted sum of the features
package estimator

import (
	"errors"
	"fmt"
)

const (
	TypeRandomForest = "random_forest"
	TypeDecisionTree = "decision_tree"
	TypeLinear       = "linear"
)

var (
	ErrUnknownModelType = errors.New("unknown model type")
	ErrFeatureMismatch  = errors.New("feature names do not match")
	ErrLengthMismatch   = errors.New("row length does not match columns")
	ErrInvalidTree      = errors.New("invalid tree")
)

// Estimator is a fitted regression model. Implementations are immutable
// after construction and safe for concurrent use.
type Estimator interface {
	// Predict returns one value per frame row.
	Predict(frame Frame) ([]float64, error)
	Info() Info
}

// Info describes a loaded artifact.
type Info struct {
	Type         string   `json:"type"`
	Version      string   `json:"version,omitempty"`
	FeatureNames []string `json:"feature_names"`
	Trees        int      `json:"trees,omitempty"`
}

// Frame is a labeled table: named columns and rows of values.
type Frame struct {
	Columns []string
	Rows    [][]float64
}

// NewFrame builds a frame, rejecting rows whose length differs from the
// column count.
func NewFrame(columns []string, rows ...[]float64) (Frame, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return Frame{}, fmt.Errorf("%w: row %d has %d values for %d columns", ErrLengthMismatch, i, len(row), len(columns))
		}
	}
	return Frame{Columns: columns, Rows: rows}, nil
}

// matrix returns the rows with their values rearranged into the given
// feature order. Every feature must be present exactly once.
func (f Frame) matrix(features []string) ([][]float64, error) {
	index := make(map[string]int, len(f.Columns))
	for i, name := range f.Columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrFeatureMismatch, name)
		}
		index[name] = i
	}
	if len(index) != len(features) {
		return nil, fmt.Errorf("%w: frame has %d columns, model expects %d", ErrFeatureMismatch, len(index), len(features))
	}

	positions := make([]int, len(features))
	for i, name := range features {
		pos, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrFeatureMismatch, name)
		}
		positions[i] = pos
	}

	out := make([][]float64, len(f.Rows))
	for r, row := range f.Rows {
		if len(row) != len(f.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns", ErrLengthMismatch, r, len(row), len(f.Columns))
		}
		ordered := make([]float64, len(features))
		for i, pos := range positions {
			ordered[i] = row[pos]
		}
		out[r] = ordered
	}
	return out, nil
}
