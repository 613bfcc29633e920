// Package worker runs one analysis at a time off the caller's goroutine so
// an interactive front end stays responsive. This is a simple offload, not
// a pool: a second submission while a run is in flight is rejected, and a
// started run always proceeds to completion or failure — there is no
// cancellation.
package worker

import (
	"errors"
	"fmt"
	"sync"

	"healthscreen/internal/engine"
	"healthscreen/internal/textscan"
)

// ErrBusy is returned when a run is already in flight.
var ErrBusy = errors.New("an analysis is already running")

// Stage names, in the order they always fire. After the start signal, each
// stage consumes only the prior stage's completed output.
type Stage string

const (
	StageStart           Stage = "start"
	StagePreprocess      Stage = "preprocess"
	StageSymptoms        Stage = "symptoms"
	StageRisk            Stage = "risk"
	StageDiagnosis       Stage = "diagnosis"
	StageRecommendations Stage = "recommendations"
)

// Progress is one stage-completion notification.
type Progress struct {
	Stage   Stage
	Percent int
}

// Request is the immutable input snapshot handed to the worker.
type Request struct {
	Symptoms  string
	Lifestyle engine.LifestyleRecord
	Data      engine.Datasets
}

// Result bundles everything a completed run produced.
type Result struct {
	Analysis        engine.SymptomAnalysis
	Risk            engine.RiskAssessment
	Diagnosis       engine.DiagnosisPrediction
	Recommendations engine.RecommendationSet
	Extracted       []textscan.ExtractedSymptom
	Patterns        []textscan.SystemPattern
	Summary         textscan.Summary
	Specialties     []string
}

// Outcome is the terminal signal of a run: exactly one of Result and Err is
// set.
type Outcome struct {
	Result *Result
	Err    error
}

type Runner struct {
	eng *engine.Engine

	mu   sync.Mutex
	busy bool
}

func New(eng *engine.Engine) *Runner {
	return &Runner{eng: eng}
}

// Running reports whether a run is in flight.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Start launches a run. Progress notifications arrive on the first channel
// in strict stage order; the outcome arrives on the second, once, after the
// progress channel closes. Hand-off is single-produce/single-consume, so no
// further synchronization is required by callers.
func (r *Runner) Start(req Request) (<-chan Progress, <-chan Outcome, error) {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return nil, nil, ErrBusy
	}
	r.busy = true
	r.mu.Unlock()

	progress := make(chan Progress, 8)
	outcome := make(chan Outcome, 1)

	go func() {
		result, err := r.run(req, progress)
		close(progress)

		// Release before delivering so a caller that saw the outcome can
		// immediately start the next run.
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()

		if err != nil {
			outcome <- Outcome{Err: err}
			return
		}
		outcome <- Outcome{Result: result}
	}()

	return progress, outcome, nil
}

func (r *Runner) run(req Request, progress chan<- Progress) (result *Result, err error) {
	// An unexpected fault inside a stage marks the run failed instead of
	// crashing the process.
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("analysis failed: %v", rec)
		}
	}()

	progress <- Progress{Stage: StageStart, Percent: 10}

	processed := r.eng.Preprocess(req.Data)
	progress <- Progress{Stage: StagePreprocess, Percent: 30}

	analysis := r.eng.AnalyzeSymptoms(req.Symptoms)
	extracted := r.eng.Scanner().Extract(req.Symptoms)
	patterns := textscan.GroupBySystem(extracted)
	progress <- Progress{Stage: StageSymptoms, Percent: 50}

	risk := r.eng.RiskScore(processed, req.Lifestyle)
	progress <- Progress{Stage: StageRisk, Percent: 70}

	diagnosis := r.eng.PredictDiagnosis(analysis)
	progress <- Progress{Stage: StageDiagnosis, Percent: 90}

	recommendations := r.eng.Recommendations(risk, diagnosis, req.Lifestyle)
	progress <- Progress{Stage: StageRecommendations, Percent: 100}

	return &Result{
		Analysis:        analysis,
		Risk:            risk,
		Diagnosis:       diagnosis,
		Recommendations: recommendations,
		Extracted:       extracted,
		Patterns:        patterns,
		Summary:         textscan.Summarize(extracted, patterns),
		Specialties:     textscan.SuggestSpecialties(patterns),
	}, nil
}
