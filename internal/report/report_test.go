package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"healthscreen/internal/catalog"
	"healthscreen/internal/engine"
	"healthscreen/internal/i18n"
	"healthscreen/internal/textscan"
	"healthscreen/internal/worker"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	labels, err := i18n.Load("", "tr")
	if err != nil {
		t.Fatalf("i18n.Load failed: %v", err)
	}
	return New(labels)
}

func sampleResult(t *testing.T) (*worker.Result, engine.LifestyleRecord, string) {
	t.Helper()
	symptoms := "şiddetli baş ağrısı, bulantı ve ışık hassasiyeti yaşıyorum"
	lifestyle := engine.LifestyleRecord{
		Age: 45, Gender: "Kadın", HeightCM: 165, WeightKG: 80,
		Smoking: engine.SmokingQuit, Alcohol: engine.AlcoholRarely,
		Exercise: engine.ExerciseLight, SleepHours: 6, StressLevel: 7,
	}

	runner := worker.New(engine.New(catalog.Default()))
	progress, outcome, err := runner.Start(worker.Request{Symptoms: symptoms, Lifestyle: lifestyle})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for range progress {
	}
	out := <-outcome
	if out.Err != nil {
		t.Fatalf("analysis failed: %v", out.Err)
	}
	return out.Result, lifestyle, symptoms
}

func TestOutputPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	now := time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)

	path, err := OutputPath(dir, "pdf", now)
	if err != nil {
		t.Fatalf("OutputPath failed: %v", err)
	}
	if filepath.Base(path) != "health_report_20240315_143005.pdf" {
		t.Fatalf("report name = %q", filepath.Base(path))
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("output dir not created: %v", err)
	}
}

func TestRiskEvaluationBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, engine.RiskLow},
		{2.9, engine.RiskLow},
		{3, engine.RiskMedium},
		{5.9, engine.RiskMedium},
		{6, engine.RiskHigh},
		{10, engine.RiskHigh},
	}
	for _, tc := range cases {
		if got := riskEvaluation(tc.score); got != tc.want {
			t.Fatalf("riskEvaluation(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestLifestyleEvaluations(t *testing.T) {
	if got := evaluateSmoking(engine.SmokingDaily); got != "Risk" {
		t.Fatalf("evaluateSmoking(daily) = %q", got)
	}
	if got := evaluateAlcohol(engine.AlcoholNever); got != "Mükemmel" {
		t.Fatalf("evaluateAlcohol(never) = %q", got)
	}
	if got := evaluateExercise(engine.ExerciseHeavy); got != "Mükemmel" {
		t.Fatalf("evaluateExercise(heavy) = %q", got)
	}
	if got := evaluateSleep(5); got != "Yetersiz" {
		t.Fatalf("evaluateSleep(5) = %q", got)
	}
	if got := evaluateSleep(8); got != "İyi" {
		t.Fatalf("evaluateSleep(8) = %q", got)
	}
	if got := evaluateSleep(11); got != "Fazla" {
		t.Fatalf("evaluateSleep(11) = %q", got)
	}
	if got := evaluateStress(8); got != engine.RiskHigh {
		t.Fatalf("evaluateStress(8) = %q", got)
	}
}

func TestRecommendationRowsKeepBucketOrder(t *testing.T) {
	r := newRenderer(t)
	rows := r.recommendationRows(engine.RecommendationSet{
		ImmediateActions: []string{"acil"},
		Lifestyle:        []string{"yaşam"},
		Medical:          []string{"tıbbi"},
		FollowUp:         []string{"takip"},
	})
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %v", rows)
	}
	wantOrder := []string{"acil", "yaşam", "tıbbi", "takip"}
	for i, want := range wantOrder {
		if rows[i][1] != want {
			t.Fatalf("row %d = %v, want advice %q", i, rows[i], want)
		}
	}
}

func TestOverviewRows(t *testing.T) {
	r := newRenderer(t)
	rows := r.overviewRows(textscan.Summary{
		TotalSymptoms: 3,
		PrimarySystems: []textscan.SystemRank{
			{System: "neurological", SymptomCount: 2, Confidence: 0.85},
			{System: "gastrointestinal", SymptomCount: 1, Confidence: 0.7},
		},
		KeyFindings: []string{"şiddetli semptomlar tespit edildi"},
	})

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %v", rows)
	}
	if rows[0][0] != "Öncelikli Sistemler" || !strings.Contains(rows[0][1], "neurological (2 semptom") {
		t.Fatalf("first system row = %v", rows[0])
	}
	if rows[1][0] != "Öncelikli Sistemler" || !strings.Contains(rows[1][1], "gastrointestinal") {
		t.Fatalf("second system row = %v", rows[1])
	}
	if rows[2][0] != "Önemli Bulgular" || rows[2][1] != "şiddetli semptomlar tespit edildi" {
		t.Fatalf("finding row = %v", rows[2])
	}
}

func TestPDFReport(t *testing.T) {
	r := newRenderer(t)
	res, lifestyle, symptoms := sampleResult(t)

	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := r.PDF(res, lifestyle, symptoms, path); err != nil {
		t.Fatalf("PDF failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(raw), "%PDF") {
		t.Fatal("output is not a PDF document")
	}
}

func TestXLSXReport(t *testing.T) {
	r := newRenderer(t)
	res, lifestyle, symptoms := sampleResult(t)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := r.XLSX(res, lifestyle, symptoms, path); err != nil {
		t.Fatalf("XLSX failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat xlsx: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("xlsx report is empty")
	}

	book, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer book.Close()
	rows, err := book.GetRows("Semptom Analizi")
	if err != nil {
		t.Fatalf("read symptom sheet: %v", err)
	}
	found := false
	for _, row := range rows {
		if len(row) > 0 && row[0] == "Öncelikli Sistemler" {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("symptom sheet misses the system overview block")
	}
}
