package engine

import (
	"math"
	"testing"
)

func TestLifestyleNormalizedDefaults(t *testing.T) {
	var l LifestyleRecord
	n := l.Normalized()

	if n.Age != 30 || n.HeightCM != 170 || n.WeightKG != 70 {
		t.Fatalf("defaults = age %d height %v weight %v", n.Age, n.HeightCM, n.WeightKG)
	}
	if n.Smoking != SmokingNever || n.Alcohol != AlcoholNever || n.Exercise != ExerciseNone {
		t.Fatalf("habit defaults = %q %q %q", n.Smoking, n.Alcohol, n.Exercise)
	}
	if n.SleepHours != 8 || n.StressLevel != 5 {
		t.Fatalf("sleep/stress defaults = %v %d", n.SleepHours, n.StressLevel)
	}
}

func TestLifestyleNormalizedRejectsOutOfRange(t *testing.T) {
	l := LifestyleRecord{Age: 200, HeightCM: -1, WeightKG: 0, Smoking: "bilmem", SleepHours: 30, StressLevel: 11}
	n := l.Normalized()
	if n.Age != 30 || n.HeightCM != 170 || n.WeightKG != 70 || n.Smoking != SmokingNever || n.SleepHours != 8 || n.StressLevel != 5 {
		t.Fatalf("out-of-range values not defaulted: %+v", n)
	}
}

func TestBMI(t *testing.T) {
	l := LifestyleRecord{Age: 30, HeightCM: 170, WeightKG: 70, SleepHours: 8, StressLevel: 5}
	bmi := l.BMI()
	if math.Abs(bmi-24.22) > 0.01 {
		t.Fatalf("BMI = %v, want ≈24.22", bmi)
	}
}

func TestLifestyleRiskCappedAtTen(t *testing.T) {
	e := newEngine(t)
	l := LifestyleRecord{
		Age:         70,
		HeightCM:    170,
		WeightKG:    100,
		Smoking:     SmokingDaily,
		Alcohol:     AlcoholNever,
		Exercise:    ExerciseNone,
		SleepHours:  5,
		StressLevel: 8,
	}
	// Raw points: 2 (age) + 2 (BMI≈34.6) + 3 (smoking) + 0 (alcohol) +
	// 2 (exercise) + 1 (sleep) + 2 (stress) = 12, clamped to 10.
	r := e.RiskScore(Datasets{}, l)
	if r.LifestyleRisk != 10 {
		t.Fatalf("lifestyle risk = %v, want 10", r.LifestyleRisk)
	}
}

func TestLifestyleRiskNoBMIPointAtMidBand(t *testing.T) {
	e := newEngine(t)
	base := LifestyleRecord{Age: 30, HeightCM: 170, WeightKG: 70, Exercise: ExerciseModerate, SleepHours: 8, StressLevel: 5}
	withBMI := base
	withBMI.WeightKG = 80 // BMI ≈ 27.7, one point

	r1 := e.RiskScore(Datasets{}, base)
	r2 := e.RiskScore(Datasets{}, withBMI)
	if r1.LifestyleRisk != 0 {
		t.Fatalf("BMI 24.22 must add no point, lifestyle risk = %v", r1.LifestyleRisk)
	}
	if r2.LifestyleRisk != 1 {
		t.Fatalf("BMI 27.7 must add one point, lifestyle risk = %v", r2.LifestyleRisk)
	}
}

func TestRiskScoreCompositeIsMeanOfFour(t *testing.T) {
	e := newEngine(t)
	data := Datasets{
		Genetic: &Dataset{
			Columns: []string{"snp_id", "risk_allele"},
			Rows: []map[string]string{
				{"snp_id": "rs1", "risk_allele": "A"},
				{"snp_id": "rs2", "risk_allele": ""},
			},
		},
		Medical: &Dataset{
			Columns: []string{"diagnosis"},
			Rows:    []map[string]string{{"diagnosis": "Tip 2 Diabetes"}, {"diagnosis": "Hipertansiyon"}},
		},
		Family: &Dataset{
			Columns: []string{"relationship", "diagnosis"},
			Rows:    []map[string]string{{"relationship": "anne", "diagnosis": "Kalp hastalığı"}},
		},
	}
	l := LifestyleRecord{Age: 30, HeightCM: 170, WeightKG: 70, Exercise: ExerciseModerate, SleepHours: 8, StressLevel: 5}

	r := e.RiskScore(data, l)
	if r.GeneticRisk != 5 {
		t.Fatalf("genetic risk = %v, want 5 (1 carrier of 2)", r.GeneticRisk)
	}
	if r.MedicalHistoryRisk != 4 {
		t.Fatalf("medical risk = %v, want 4 (two chronic conditions)", r.MedicalHistoryRisk)
	}
	if r.FamilyHistoryRisk != 1.5 {
		t.Fatalf("family risk = %v, want 1.5", r.FamilyHistoryRisk)
	}
	if r.LifestyleRisk != 0 {
		t.Fatalf("lifestyle risk = %v, want 0", r.LifestyleRisk)
	}
	want := (5.0 + 4.0 + 1.5 + 0.0) / 4
	if r.TotalScore != want {
		t.Fatalf("total = %v, want %v", r.TotalScore, want)
	}
	if r.Category != RiskLow {
		t.Fatalf("category = %q, want %q", r.Category, RiskLow)
	}
}

func TestRiskScoreWithNoOptionalData(t *testing.T) {
	e := newEngine(t)
	r := e.RiskScore(Datasets{}, LifestyleRecord{})

	if r.GeneticRisk != 0 || r.MedicalHistoryRisk != 0 || r.FamilyHistoryRisk != 0 {
		t.Fatalf("missing datasets must score 0, got %+v", r)
	}
	if r.TotalScore != r.LifestyleRisk/4 {
		t.Fatalf("composite must still average four sub-scores, got %v", r.TotalScore)
	}
	if r.Category != RiskLow {
		t.Fatalf("category = %q, want %q", r.Category, RiskLow)
	}
}

func TestRiskCategories(t *testing.T) {
	cases := []struct {
		total float64
		want  string
	}{
		{0, RiskLow},
		{2.9, RiskLow},
		{3, RiskMedium},
		{5.9, RiskMedium},
		{6, RiskHigh},
		{10, RiskHigh},
	}
	for _, tc := range cases {
		got := riskCategory(tc.total)
		if got != tc.want {
			t.Fatalf("category(%v) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestGeneticRiskGuardsDivision(t *testing.T) {
	if got := geneticRisk(&Dataset{Columns: []string{"risk_allele"}}); got != 0 {
		t.Fatalf("empty genetic dataset risk = %v, want 0", got)
	}
	if got := geneticRisk(nil); got != 0 {
		t.Fatalf("nil genetic dataset risk = %v, want 0", got)
	}
}
