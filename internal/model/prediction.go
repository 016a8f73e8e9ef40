package model

type PredictResponse struct {
	Prediction     float64 `json:"prediction"`
	Days           int64   `json:"days"`
	PredictionText string  `json:"prediction_text"`
}

type ModelInfoResponse struct {
	Type         string   `json:"type"`
	Version      string   `json:"version,omitempty"`
	FeatureNames []string `json:"feature_names"`
	Trees        int      `json:"trees,omitempty"`
}
