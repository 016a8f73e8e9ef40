package estimator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Artifact is the exported form of a fitted model.
type Artifact struct {
	Type         string    `json:"type" yaml:"type"`
	Version      string    `json:"version,omitempty" yaml:"version,omitempty"`
	FeatureNames []string  `json:"feature_names,omitempty" yaml:"feature_names,omitempty"`
	Trees        []Tree    `json:"trees,omitempty" yaml:"trees,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	Intercept    float64   `json:"intercept,omitempty" yaml:"intercept,omitempty"`
}

// Load reads the artifact at path and builds the estimator it describes.
// YAML is used for .yaml/.yml files, JSON otherwise.
func Load(path string, features []string) (Estimator, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	artifact, err := Decode(payload, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode model artifact %s: %w", path, err)
	}
	return Build(artifact, features)
}

func Decode(payload []byte, format string) (*Artifact, error) {
	var artifact Artifact
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(payload, &artifact); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(payload, &artifact); err != nil {
			return nil, err
		}
	}
	return &artifact, nil
}

// Build turns a decoded artifact into an estimator. When features is not
// empty, the artifact's feature names must match it exactly; an artifact
// without feature names adopts it.
func Build(artifact *Artifact, features []string) (Estimator, error) {
	names, err := resolveFeatures(artifact.FeatureNames, features)
	if err != nil {
		return nil, err
	}
	info := Info{Type: artifact.Type, Version: artifact.Version, FeatureNames: names}

	switch artifact.Type {
	case TypeRandomForest, TypeDecisionTree:
		forest, err := newForest(info, artifact.Trees)
		if err != nil {
			return nil, err
		}
		return forest, nil
	case TypeLinear:
		linear, err := newLinear(info, artifact.Coefficients, artifact.Intercept)
		if err != nil {
			return nil, err
		}
		return linear, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModelType, artifact.Type)
	}
}

func resolveFeatures(declared, expected []string) ([]string, error) {
	switch {
	case len(declared) == 0 && len(expected) == 0:
		return nil, fmt.Errorf("%w: artifact declares no feature names", ErrFeatureMismatch)
	case len(declared) == 0:
		return slices.Clone(expected), nil
	case len(expected) == 0:
		return slices.Clone(declared), nil
	}
	if len(declared) != len(expected) {
		return nil, fmt.Errorf("%w: artifact has %d features, expected %d", ErrFeatureMismatch, len(declared), len(expected))
	}
	for i := range expected {
		if declared[i] != expected[i] {
			return nil, fmt.Errorf("%w: position %d is %q, expected %q", ErrFeatureMismatch, i, declared[i], expected[i])
		}
	}
	return slices.Clone(declared), nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
