package engine

import (
	"testing"

	"healthscreen/internal/catalog"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(catalog.Default())
}

func TestAnalyzeSymptomsMatchesDiseasesAndSystems(t *testing.T) {
	e := newEngine(t)
	a := e.AnalyzeSymptoms("Göğüs ağrısı ve nefes darlığı yaşıyorum, ayrıca yorgunluk var")

	var heart *DiseaseMatch
	for i := range a.DiseaseMatches {
		if a.DiseaseMatches[i].Key == "kalp_hastaligi" {
			heart = &a.DiseaseMatches[i]
		}
	}
	if heart == nil {
		t.Fatalf("expected kalp_hastaligi match, got %v", a.DiseaseMatches)
	}
	if heart.Matches != 3 || heart.TotalSymptoms != 5 {
		t.Fatalf("kalp_hastaligi matches=%d/%d, want 3/5", heart.Matches, heart.TotalSymptoms)
	}
	if heart.MatchRatio != 3.0/5.0 {
		t.Fatalf("kalp_hastaligi ratio = %v", heart.MatchRatio)
	}

	if a.PrimarySystem != "kardiyovasküler" {
		t.Fatalf("primary system = %q, want kardiyovasküler", a.PrimarySystem)
	}

	seen := map[string]int{}
	for _, s := range a.DetectedSymptoms {
		seen[s]++
	}
	for s, n := range seen {
		if n > 1 {
			t.Fatalf("detected symptom %q listed %d times", s, n)
		}
	}
	if seen["göğüs ağrısı"] != 1 || seen["yorgunluk"] != 1 {
		t.Fatalf("detected symptoms = %v", a.DetectedSymptoms)
	}
}

func TestAnalyzeSymptomsNegation(t *testing.T) {
	e := newEngine(t)
	a := e.AnalyzeSymptoms("baş ağrısı yok ama yorgunluk var")

	for _, s := range a.DetectedSymptoms {
		if s == "baş ağrısı" {
			t.Fatal("negated headache must not be detected")
		}
	}
	found := false
	for _, s := range a.DetectedSymptoms {
		if s == "yorgunluk" {
			found = true
		}
	}
	if !found {
		t.Fatalf("tiredness must be detected, got %v", a.DetectedSymptoms)
	}
}

func TestAnalyzeSymptomsNoMatch(t *testing.T) {
	e := newEngine(t)
	a := e.AnalyzeSymptoms("bugün hava çok güzel")

	if len(a.DetectedSymptoms) != 0 || len(a.DiseaseMatches) != 0 || len(a.SystemMatches) != 0 {
		t.Fatalf("expected empty analysis, got %+v", a)
	}
	if a.PrimarySystem != "" {
		t.Fatalf("primary system = %q, want empty", a.PrimarySystem)
	}
}

func TestAnalyzeSymptomsPrimarySystemTieKeepsTableOrder(t *testing.T) {
	e := newEngine(t)
	// One match in each of two systems with equal list sizes produces equal
	// ratios; the earlier table entry must win.
	a := e.AnalyzeSymptoms("çarpıntı ve karın ağrısı şikayetim var")

	if a.PrimarySystem != "kardiyovasküler" {
		t.Fatalf("primary system = %q, want kardiyovasküler on tie", a.PrimarySystem)
	}
}

func TestPreprocessFillsNumericMean(t *testing.T) {
	e := newEngine(t)
	in := Datasets{Medical: &Dataset{
		Columns: []string{"age", "diagnosis"},
		Rows: []map[string]string{
			{"age": "40", "diagnosis": "diabetes"},
			{"age": "", "diagnosis": "diabetes"},
			{"age": "60", "diagnosis": ""},
		},
	}}
	out := e.Preprocess(in)

	if got := out.Medical.Rows[1]["age"]; got != "50" {
		t.Fatalf("numeric fill = %q, want 50", got)
	}
	if got := out.Medical.Rows[2]["diagnosis"]; got != "diabetes" {
		t.Fatalf("mode fill = %q, want diabetes", got)
	}
	// Input must stay untouched.
	if in.Medical.Rows[1]["age"] != "" {
		t.Fatal("Preprocess modified its input")
	}
}

func TestPreprocessEmptyColumnFillsUnknown(t *testing.T) {
	e := newEngine(t)
	out := e.Preprocess(Datasets{Family: &Dataset{
		Columns: []string{"relationship", "diagnosis"},
		Rows: []map[string]string{
			{"relationship": "anne", "diagnosis": ""},
			{"relationship": "baba", "diagnosis": ""},
		},
	}})
	if got := out.Family.Rows[0]["diagnosis"]; got != "unknown" {
		t.Fatalf("empty column fill = %q, want unknown", got)
	}
}

func TestPreprocessNilDatasets(t *testing.T) {
	e := newEngine(t)
	out := e.Preprocess(Datasets{})
	if out.Genetic != nil || out.Medical != nil || out.Family != nil {
		t.Fatalf("expected nil datasets to pass through, got %+v", out)
	}
}
