package model

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

type Feature struct {
	Name  string
	Label string
}

// Features is the model input schema, in the order the model was fitted on.
var Features = []Feature{
	{Name: "rcount", Label: "Readmission count"},
	{Name: "gender", Label: "Gender (0 = F, 1 = M)"},
	{Name: "dialysisrenalendstage", Label: "Dialysis / renal end stage"},
	{Name: "asthma", Label: "Asthma"},
	{Name: "irondef", Label: "Iron deficiency"},
	{Name: "pneum", Label: "Pneumonia"},
	{Name: "substancedependence", Label: "Substance dependence"},
	{Name: "psychologicaldisordermajor", Label: "Major psychological disorder"},
	{Name: "depress", Label: "Depression"},
	{Name: "psychother", Label: "Other psychological disorder"},
	{Name: "fibrosisandother", Label: "Fibrosis and other"},
	{Name: "malnutrition", Label: "Malnutrition"},
	{Name: "hemo", Label: "Blood disorder"},
	{Name: "hematocrit", Label: "Hematocrit (g/dL)"},
	{Name: "neutrophils", Label: "Neutrophils (cells/µL)"},
	{Name: "sodium", Label: "Sodium (mmol/L)"},
	{Name: "glucose", Label: "Glucose (mg/dL)"},
	{Name: "bloodureanitro", Label: "Blood urea nitrogen (mg/dL)"},
	{Name: "creatinine", Label: "Creatinine (mg/dL)"},
	{Name: "bmi", Label: "BMI (kg/m²)"},
	{Name: "pulse", Label: "Pulse (bpm)"},
	{Name: "respiration", Label: "Respiration (breaths/min)"},
	{Name: "secondarydiagnosisnonicd9", Label: "Secondary diagnoses (non ICD-9)"},
	{Name: "facid", Label: "Facility ID"},
}

func FeatureNames() []string {
	names := make([]string, len(Features))
	for i, f := range Features {
		names[i] = f.Name
	}
	return names
}

// FeatureVector binds the model input by field name. Pointers distinguish a
// missing field from an explicit zero.
type FeatureVector struct {
	Rcount                     *float64 `form:"rcount" json:"rcount" binding:"required"`
	Gender                     *float64 `form:"gender" json:"gender" binding:"required"`
	DialysisRenalEndStage      *float64 `form:"dialysisrenalendstage" json:"dialysisrenalendstage" binding:"required"`
	Asthma                     *float64 `form:"asthma" json:"asthma" binding:"required"`
	IronDef                    *float64 `form:"irondef" json:"irondef" binding:"required"`
	Pneum                      *float64 `form:"pneum" json:"pneum" binding:"required"`
	SubstanceDependence        *float64 `form:"substancedependence" json:"substancedependence" binding:"required"`
	PsychologicalDisorderMajor *float64 `form:"psychologicaldisordermajor" json:"psychologicaldisordermajor" binding:"required"`
	Depress                    *float64 `form:"depress" json:"depress" binding:"required"`
	PsychOther                 *float64 `form:"psychother" json:"psychother" binding:"required"`
	FibrosisAndOther           *float64 `form:"fibrosisandother" json:"fibrosisandother" binding:"required"`
	Malnutrition               *float64 `form:"malnutrition" json:"malnutrition" binding:"required"`
	Hemo                       *float64 `form:"hemo" json:"hemo" binding:"required"`
	Hematocrit                 *float64 `form:"hematocrit" json:"hematocrit" binding:"required"`
	Neutrophils                *float64 `form:"neutrophils" json:"neutrophils" binding:"required"`
	Sodium                     *float64 `form:"sodium" json:"sodium" binding:"required"`
	Glucose                    *float64 `form:"glucose" json:"glucose" binding:"required"`
	BloodUreaNitro             *float64 `form:"bloodureanitro" json:"bloodureanitro" binding:"required"`
	Creatinine                 *float64 `form:"creatinine" json:"creatinine" binding:"required"`
	BMI                        *float64 `form:"bmi" json:"bmi" binding:"required"`
	Pulse                      *float64 `form:"pulse" json:"pulse" binding:"required"`
	Respiration                *float64 `form:"respiration" json:"respiration" binding:"required"`
	SecondaryDiagnosisNonICD9  *float64 `form:"secondarydiagnosisnonicd9" json:"secondarydiagnosisnonicd9" binding:"required"`
	FacID                      *float64 `form:"facid" json:"facid" binding:"required"`
}

func (v *FeatureVector) fields() []*float64 {
	return []*float64{
		v.Rcount, v.Gender, v.DialysisRenalEndStage, v.Asthma, v.IronDef,
		v.Pneum, v.SubstanceDependence, v.PsychologicalDisorderMajor,
		v.Depress, v.PsychOther, v.FibrosisAndOther, v.Malnutrition, v.Hemo,
		v.Hematocrit, v.Neutrophils, v.Sodium, v.Glucose, v.BloodUreaNitro,
		v.Creatinine, v.BMI, v.Pulse, v.Respiration,
		v.SecondaryDiagnosisNonICD9, v.FacID,
	}
}

// Values returns the feature values in schema order.
func (v *FeatureVector) Values() ([]float64, error) {
	fields := v.fields()
	values := make([]float64, len(fields))
	for i, f := range fields {
		if f == nil {
			return nil, fmt.Errorf("missing feature %q", Features[i].Name)
		}
		values[i] = *f
	}
	return values, nil
}

// CheckFormKeys rejects submitted keys outside the schema, keys sent more
// than once and blank values (form binding would read those as zero).
func CheckFormKeys(values url.Values) error {
	known := make(map[string]struct{}, len(Features))
	for _, f := range Features {
		known[f.Name] = struct{}{}
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := known[key]; !ok {
			return fmt.Errorf("unknown feature %q", key)
		}
		if n := len(values[key]); n > 1 {
			return fmt.Errorf("feature %q submitted %d times", key, n)
		}
		if len(values[key]) == 1 && strings.TrimSpace(values[key][0]) == "" {
			return fmt.Errorf("feature %q is empty", key)
		}
	}
	return nil
}
