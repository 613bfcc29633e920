package app

import (
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"healthscreen/internal/config"
	"healthscreen/internal/engine"
	"healthscreen/internal/i18n"
	"healthscreen/internal/ingest"
	"healthscreen/internal/report"
	"healthscreen/internal/runlog"
	"healthscreen/internal/worker"
)

func runAnalyze(cfg config.Config, eng *engine.Engine, labels *i18n.Store, db *sql.DB, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	symptoms := fs.String("symptoms", "", "symptom description text")
	symptomsFile := fs.String("symptoms-file", "", "file containing the symptom description")
	lifestylePath := fs.String("lifestyle", "", "lifestyle questionnaire answers (yaml)")
	geneticPath := fs.String("genetic", "", "genetic dataset (csv/xlsx/json/xml)")
	medicalPath := fs.String("medical", "", "medical history dataset")
	familyPath := fs.String("family", "", "family history dataset")
	pdfOut := fs.Bool("pdf", false, "render a PDF report")
	xlsxOut := fs.Bool("xlsx", false, "render a spreadsheet report")
	fs.Parse(args)

	text := *symptoms
	if *symptomsFile != "" {
		raw, err := os.ReadFile(*symptomsFile)
		if err != nil {
			return fmt.Errorf("read symptoms file: %w", err)
		}
		text = string(raw)
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("no symptoms supplied (use -symptoms or -symptoms-file)")
	}

	lifestyle, err := loadLifestyle(*lifestylePath)
	if err != nil {
		return err
	}

	data, err := loadDatasets(*geneticPath, *medicalPath, *familyPath)
	if err != nil {
		return err
	}

	runner := worker.New(eng)
	progress, outcome, err := runner.Start(worker.Request{
		Symptoms:  text,
		Lifestyle: lifestyle,
		Data:      data,
	})
	if err != nil {
		return err
	}

	for p := range progress {
		log.Printf("analysis %d%% (%s)", p.Percent, p.Stage)
	}
	out := <-outcome
	if out.Err != nil {
		log.Printf("%s: %v", labels.T("analysis_failed"), out.Err)
		return out.Err
	}
	result := out.Result
	log.Printf("%s", labels.T("analysis_done"))

	runID := uuid.NewString()
	if err := persistRun(db, runID, text, lifestyle, result); err != nil {
		// The analysis itself succeeded; a bookkeeping failure should not
		// hide the results.
		log.Printf("Warning: failed to record run: %v", err)
	}

	printResult(labels, runID, result)

	if *pdfOut {
		renderer := report.New(labels)
		path, err := report.OutputPath(cfg.ReportOutputDir, "pdf", time.Now().In(cfg.Location))
		if err != nil {
			return err
		}
		if err := renderer.PDF(result, lifestyle, text, path); err != nil {
			return err
		}
		log.Printf("PDF report written to %s", path)
	}
	if *xlsxOut {
		renderer := report.New(labels)
		path, err := report.OutputPath(cfg.ReportOutputDir, "xlsx", time.Now().In(cfg.Location))
		if err != nil {
			return err
		}
		if err := renderer.XLSX(result, lifestyle, text, path); err != nil {
			return err
		}
		log.Printf("Spreadsheet report written to %s", path)
	}
	return nil
}

func loadLifestyle(path string) (engine.LifestyleRecord, error) {
	var lifestyle engine.LifestyleRecord
	if path == "" {
		return lifestyle.Normalized(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return lifestyle, fmt.Errorf("read lifestyle file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &lifestyle); err != nil {
		return lifestyle, fmt.Errorf("parse lifestyle yaml: %w", err)
	}
	return lifestyle, nil
}

func loadDatasets(geneticPath, medicalPath, familyPath string) (engine.Datasets, error) {
	var data engine.Datasets
	var err error
	if geneticPath != "" {
		if data.Genetic, err = ingest.Load(geneticPath, ingest.KindGenetic); err != nil {
			return data, fmt.Errorf("genetic data: %w", err)
		}
	}
	if medicalPath != "" {
		if data.Medical, err = ingest.Load(medicalPath, ingest.KindMedical); err != nil {
			return data, fmt.Errorf("medical data: %w", err)
		}
	}
	if familyPath != "" {
		if data.Family, err = ingest.Load(familyPath, ingest.KindFamily); err != nil {
			return data, fmt.Errorf("family data: %w", err)
		}
	}
	return data, nil
}

func persistRun(db *sql.DB, runID, symptoms string, lifestyle engine.LifestyleRecord, result *worker.Result) error {
	lifestyleJSON, err := json.Marshal(lifestyle.Normalized())
	if err != nil {
		return err
	}
	resultsJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if err := runlog.InsertRun(db, runlog.Run{
		ID:               runID,
		Symptoms:         symptoms,
		LifestyleJSON:    string(lifestyleJSON),
		GeneticRisk:      result.Risk.GeneticRisk,
		LifestyleRisk:    result.Risk.LifestyleRisk,
		MedicalRisk:      result.Risk.MedicalHistoryRisk,
		FamilyRisk:       result.Risk.FamilyHistoryRisk,
		TotalScore:       result.Risk.TotalScore,
		RiskCategory:     result.Risk.Category,
		PrimaryDiagnosis: result.Diagnosis.PrimaryDiagnosis,
		Confidence:       result.Diagnosis.Confidence,
		DetectedSymptoms: len(result.Analysis.DetectedSymptoms),
		ResultsJSON:      string(resultsJSON),
	}); err != nil {
		return err
	}

	if result.Diagnosis.PrimaryDiagnosis != engine.Undetermined {
		return runlog.InsertMappings(db, []runlog.Mapping{{
			Symptoms:   strings.Join(result.Analysis.DetectedSymptoms, ", "),
			Diagnosis:  result.Diagnosis.PrimaryDiagnosis,
			Confidence: result.Diagnosis.Confidence,
			Source:     "analysis",
		}})
	}
	return nil
}

func printResult(labels *i18n.Store, runID string, result *worker.Result) {
	fmt.Printf("\nRun %s\n\n", runID)
	fmt.Printf("%s: %.1f/10 (%s)\n", labels.T("total_risk"), result.Risk.TotalScore, result.Risk.Category)
	fmt.Printf("  %s: %.1f  %s: %.1f  %s: %.1f  %s: %.1f\n",
		labels.T("genetic_risk"), result.Risk.GeneticRisk,
		labels.T("lifestyle_risk"), result.Risk.LifestyleRisk,
		labels.T("medical_risk"), result.Risk.MedicalHistoryRisk,
		labels.T("family_risk"), result.Risk.FamilyHistoryRisk,
	)

	fmt.Printf("\n%s: %s (%.1f%%, ICD-10 %s)\n",
		labels.T("primary_diagnosis"), result.Diagnosis.PrimaryDiagnosis,
		result.Diagnosis.Confidence, result.Diagnosis.ICD10)
	fmt.Printf("  %s\n", result.Diagnosis.Recommendation)
	for i, d := range result.Diagnosis.Differentials {
		fmt.Printf("  %d. %s (%.1f%%)\n", i+1, d.Key, d.Probability)
	}

	if len(result.Analysis.DetectedSymptoms) > 0 {
		fmt.Printf("\n%s (%d): %s\n", labels.T("detected_symptoms"),
			len(result.Analysis.DetectedSymptoms),
			strings.Join(result.Analysis.DetectedSymptoms, ", "))
	}
	if result.Analysis.PrimarySystem != "" {
		fmt.Printf("Birincil sistem: %s\n", result.Analysis.PrimarySystem)
	}
	if len(result.Specialties) > 0 {
		fmt.Printf("Önerilen uzmanlıklar: %s\n", strings.Join(result.Specialties, ", "))
	}

	printBucket(labels.T("immediate_actions"), result.Recommendations.ImmediateActions)
	printBucket(labels.T("lifestyle_advice"), result.Recommendations.Lifestyle)
	printBucket(labels.T("medical_advice"), result.Recommendations.Medical)
	printBucket(labels.T("follow_up"), result.Recommendations.FollowUp)
}

func printBucket(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, line := range lines {
		fmt.Printf("  - %s\n", line)
	}
}
