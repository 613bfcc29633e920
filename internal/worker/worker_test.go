package worker

import (
	"testing"
	"time"

	"healthscreen/internal/catalog"
	"healthscreen/internal/engine"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	return New(engine.New(catalog.Default()))
}

func collect(t *testing.T, progress <-chan Progress, outcome <-chan Outcome) ([]Progress, Outcome) {
	t.Helper()
	var stages []Progress
	for p := range progress {
		stages = append(stages, p)
	}
	select {
	case out := <-outcome:
		return stages, out
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for outcome")
		return nil, Outcome{}
	}
}

func TestRunnerStagesInOrder(t *testing.T) {
	r := newRunner(t)
	progress, outcome, err := r.Start(Request{
		Symptoms:  "şiddetli baş ağrısı, bulantı ve ışık hassasiyeti",
		Lifestyle: engine.LifestyleRecord{Age: 30, HeightCM: 170, WeightKG: 70, SleepHours: 8, StressLevel: 5},
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	stages, out := collect(t, progress, outcome)
	if out.Err != nil {
		t.Fatalf("run failed: %v", out.Err)
	}

	wantStages := []Stage{StageStart, StagePreprocess, StageSymptoms, StageRisk, StageDiagnosis, StageRecommendations}
	if len(stages) != len(wantStages) {
		t.Fatalf("got %d stages, want %d: %v", len(stages), len(wantStages), stages)
	}
	lastPercent := 0
	for i, p := range stages {
		if p.Stage != wantStages[i] {
			t.Fatalf("stage[%d] = %q, want %q", i, p.Stage, wantStages[i])
		}
		if p.Percent <= lastPercent {
			t.Fatalf("progress must increase, got %v", stages)
		}
		lastPercent = p.Percent
	}
	if lastPercent != 100 {
		t.Fatalf("final percent = %d, want 100", lastPercent)
	}

	if out.Result == nil {
		t.Fatal("outcome carries no result")
	}
	if out.Result.Diagnosis.PrimaryDiagnosis != "migren" {
		t.Fatalf("primary = %q, want migren", out.Result.Diagnosis.PrimaryDiagnosis)
	}
	if len(out.Result.Extracted) == 0 || len(out.Result.Specialties) == 0 {
		t.Fatalf("extraction outputs missing: %+v", out.Result)
	}
}

func TestRunnerRejectsConcurrentRuns(t *testing.T) {
	r := newRunner(t)

	// Hold the runner busy manually; Start must refuse a second run.
	r.mu.Lock()
	r.busy = true
	r.mu.Unlock()

	if _, _, err := r.Start(Request{Symptoms: "yorgunluk"}); err != ErrBusy {
		t.Fatalf("err = %v, want ErrBusy", err)
	}

	r.mu.Lock()
	r.busy = false
	r.mu.Unlock()

	progress, outcome, err := r.Start(Request{Symptoms: "yorgunluk"})
	if err != nil {
		t.Fatalf("Start after release failed: %v", err)
	}
	_, out := collect(t, progress, outcome)
	if out.Err != nil {
		t.Fatalf("run failed: %v", out.Err)
	}
	if r.Running() {
		t.Fatal("runner still marked busy after completion")
	}
}

func TestRunnerNoMatchStillSucceeds(t *testing.T) {
	r := newRunner(t)
	progress, outcome, err := r.Start(Request{Symptoms: "bugün hava güzel"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	_, out := collect(t, progress, outcome)
	if out.Err != nil {
		t.Fatalf("run failed: %v", out.Err)
	}
	d := out.Result.Diagnosis
	if d.PrimaryDiagnosis != engine.Undetermined || d.Confidence != 0 || len(d.Differentials) != 0 {
		t.Fatalf("no-match diagnosis = %+v", d)
	}
}
