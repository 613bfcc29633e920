package engine

import (
	"strconv"
	"strings"
)

// Canonical answer values for the lifestyle questionnaire. These are the
// values the scoring thresholds key on; anything else falls back to the
// documented default.
const (
	SmokingNever      = "Hiç içmem"
	SmokingQuit       = "Bıraktım"
	SmokingOccasional = "Ara sıra"
	SmokingDaily      = "Günlük"

	AlcoholNever  = "Hiç içmem"
	AlcoholRarely = "Nadiren"
	AlcoholWeekly = "Haftalık"
	AlcoholDaily  = "Günlük"

	ExerciseNone     = "Hiç"
	ExerciseLight    = "1-2 gün"
	ExerciseModerate = "3-4 gün"
	ExerciseHeavy    = "5+ gün"
)

// Risk category labels.
const (
	RiskLow    = "Düşük"
	RiskMedium = "Orta"
	RiskHigh   = "Yüksek"
)

// LifestyleRecord is the questionnaire answer set for one analysis run.
type LifestyleRecord struct {
	Age          int     `yaml:"age"`
	Gender       string  `yaml:"gender"`
	HeightCM     float64 `yaml:"height"`
	WeightKG     float64 `yaml:"weight"`
	Smoking      string  `yaml:"smoking"`
	Alcohol      string  `yaml:"alcohol"`
	Exercise     string  `yaml:"exercise"`
	SleepHours   float64 `yaml:"sleep_hours"`
	StressLevel  int     `yaml:"stress_level"`
	Nutrition    string  `yaml:"nutrition"`
	MentalHealth string  `yaml:"mental_health"`
}

// Normalized returns a copy with malformed fields replaced by the
// documented defaults: age 30, height 170cm, weight 70kg, no smoking or
// alcohol, no exercise, 8h sleep, stress 5.
func (r LifestyleRecord) Normalized() LifestyleRecord {
	if r.Age <= 0 || r.Age > 130 {
		r.Age = 30
	}
	if r.HeightCM <= 0 {
		r.HeightCM = 170
	}
	if r.WeightKG <= 0 {
		r.WeightKG = 70
	}
	switch r.Smoking {
	case SmokingNever, SmokingQuit, SmokingOccasional, SmokingDaily:
	default:
		r.Smoking = SmokingNever
	}
	switch r.Alcohol {
	case AlcoholNever, AlcoholRarely, AlcoholWeekly, AlcoholDaily:
	default:
		r.Alcohol = AlcoholNever
	}
	switch r.Exercise {
	case ExerciseNone, ExerciseLight, ExerciseModerate, ExerciseHeavy:
	default:
		r.Exercise = ExerciseNone
	}
	if r.SleepHours <= 0 || r.SleepHours > 24 {
		r.SleepHours = 8
	}
	if r.StressLevel < 1 || r.StressLevel > 10 {
		r.StressLevel = 5
	}
	return r
}

// BMI computes weight_kg / (height_m)^2 on the normalized record.
func (r LifestyleRecord) BMI() float64 {
	n := r.Normalized()
	h := n.HeightCM / 100
	return n.WeightKG / (h * h)
}

// Dataset is a loaded tabular file, already normalized to lower_snake_case
// column names. Values are kept as strings; numeric interpretation happens
// at the point of use.
type Dataset struct {
	Columns []string
	Rows    []map[string]string
}

// Empty reports whether the dataset has no rows.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Rows) == 0
}

// Column returns all values of one column, in row order.
func (d *Dataset) Column(name string) []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		out = append(out, row[name])
	}
	return out
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Datasets are the three optional structured inputs of a run.
type Datasets struct {
	Genetic *Dataset
	Medical *Dataset
	Family  *Dataset
}

// DiseaseMatch is the per-disease result of symptom matching.
type DiseaseMatch struct {
	Key             string
	Matches         int
	TotalSymptoms   int
	MatchRatio      float64
	MatchedSymptoms []string
	Severity        string
}

// SystemMatch is the per-body-system match fraction.
type SystemMatch struct {
	Name    string
	Matches int
	Total   int
	Ratio   float64
}

// SymptomAnalysis is the output of AnalyzeSymptoms.
type SymptomAnalysis struct {
	DetectedSymptoms []string // unique matched phrases, first-seen order
	DiseaseMatches   []DiseaseMatch
	SystemMatches    []SystemMatch
	PrimarySystem    string // empty when no system matched
}

// RiskAssessment carries the four sub-scores and their composite.
type RiskAssessment struct {
	GeneticRisk        float64
	LifestyleRisk      float64
	MedicalHistoryRisk float64
	FamilyHistoryRisk  float64
	TotalScore         float64
	Category           string
}

// Differential is one runner-up disease in a prediction.
type Differential struct {
	Key             string
	Probability     float64 // percent
	MatchedSymptoms []string
}

// DiagnosisPrediction is the output of PredictDiagnosis.
type DiagnosisPrediction struct {
	PrimaryDiagnosis string
	Confidence       float64 // percent
	Differentials    []Differential
	Recommendation   string
	ICD10            string
}

// Undetermined is the sentinel primary diagnosis used when no disease
// matched at all.
const Undetermined = "Belirsiz"

// RecommendationSet holds the four advice buckets. Rules are additive and
// never deduplicate each other's lines.
type RecommendationSet struct {
	ImmediateActions []string
	Lifestyle        []string
	Medical          []string
	FollowUp         []string
}

func parseFloatField(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
