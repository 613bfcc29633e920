// Package report renders a completed analysis into a paginated PDF or a
// multi-sheet spreadsheet. It is a pure presentation transform over the
// result records; no decision logic lives here.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"healthscreen/internal/engine"
	"healthscreen/internal/i18n"
	"healthscreen/internal/textscan"
	"healthscreen/internal/worker"
)

type Renderer struct {
	labels *i18n.Store
}

func New(labels *i18n.Store) *Renderer {
	return &Renderer{labels: labels}
}

// OutputPath builds the conventional report file name under dir and makes
// sure the directory exists.
func OutputPath(dir, ext string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("health_report_%s.%s", now.Format("20060102_150405"), ext)
	return filepath.Join(dir, name), nil
}

// riskEvaluation maps a sub-score to its band label.
func riskEvaluation(score float64) string {
	if score < 3 {
		return engine.RiskLow
	}
	if score < 6 {
		return engine.RiskMedium
	}
	return engine.RiskHigh
}

func evaluateSmoking(smoking string) string {
	switch smoking {
	case engine.SmokingNever:
		return "Mükemmel"
	case engine.SmokingQuit:
		return "İyi"
	case engine.SmokingOccasional:
		return "Dikkat"
	case engine.SmokingDaily:
		return "Risk"
	}
	return "Bilinmeyen"
}

func evaluateAlcohol(alcohol string) string {
	switch alcohol {
	case engine.AlcoholNever:
		return "Mükemmel"
	case engine.AlcoholRarely:
		return "İyi"
	case engine.AlcoholWeekly:
		return "Dikkat"
	case engine.AlcoholDaily:
		return "Risk"
	}
	return "Bilinmeyen"
}

func evaluateExercise(exercise string) string {
	switch exercise {
	case engine.ExerciseNone:
		return "Yetersiz"
	case engine.ExerciseLight:
		return "Az"
	case engine.ExerciseModerate:
		return "İyi"
	case engine.ExerciseHeavy:
		return "Mükemmel"
	}
	return "Bilinmeyen"
}

func evaluateSleep(hours float64) string {
	if hours < 6 {
		return "Yetersiz"
	}
	if hours <= 9 {
		return "İyi"
	}
	return "Fazla"
}

func evaluateStress(level int) string {
	if level <= 3 {
		return engine.RiskLow
	}
	if level <= 6 {
		return engine.RiskMedium
	}
	return engine.RiskHigh
}

// riskRows builds the shared risk table used by both output formats.
func (r *Renderer) riskRows(risk engine.RiskAssessment) [][]string {
	return [][]string{
		{r.labels.T("genetic_risk"), fmt.Sprintf("%.1f/10", risk.GeneticRisk), riskEvaluation(risk.GeneticRisk)},
		{r.labels.T("lifestyle_risk"), fmt.Sprintf("%.1f/10", risk.LifestyleRisk), riskEvaluation(risk.LifestyleRisk)},
		{r.labels.T("medical_risk"), fmt.Sprintf("%.1f/10", risk.MedicalHistoryRisk), riskEvaluation(risk.MedicalHistoryRisk)},
		{r.labels.T("family_risk"), fmt.Sprintf("%.1f/10", risk.FamilyHistoryRisk), riskEvaluation(risk.FamilyHistoryRisk)},
		{r.labels.T("total_risk"), fmt.Sprintf("%.1f/10", risk.TotalScore), risk.Category},
	}
}

func (r *Renderer) lifestyleRows(l engine.LifestyleRecord) [][]string {
	n := l.Normalized()
	return [][]string{
		{"Sigara Kullanımı", n.Smoking, evaluateSmoking(n.Smoking)},
		{"Alkol Kullanımı", n.Alcohol, evaluateAlcohol(n.Alcohol)},
		{"Egzersiz Sıklığı", n.Exercise, evaluateExercise(n.Exercise)},
		{"Günlük Uyku", fmt.Sprintf("%.1f saat", n.SleepHours), evaluateSleep(n.SleepHours)},
		{"Stres Seviyesi", fmt.Sprintf("%d/10", n.StressLevel), evaluateStress(n.StressLevel)},
	}
}

// overviewRows renders the extraction summary: the most affected systems,
// then the notable findings.
func (r *Renderer) overviewRows(sum textscan.Summary) [][]string {
	var rows [][]string
	for _, sys := range sum.PrimarySystems {
		rows = append(rows, []string{
			r.labels.T("primary_systems"),
			fmt.Sprintf("%s (%d semptom, güven %.2f)", sys.System, sys.SymptomCount, sys.Confidence),
		})
	}
	for _, f := range sum.KeyFindings {
		rows = append(rows, []string{r.labels.T("key_findings"), f})
	}
	return rows
}

func (r *Renderer) recommendationRows(rec engine.RecommendationSet) [][]string {
	var rows [][]string
	add := func(bucket string, lines []string) {
		for _, line := range lines {
			rows = append(rows, []string{bucket, line})
		}
	}
	add(r.labels.T("immediate_actions"), rec.ImmediateActions)
	add(r.labels.T("lifestyle_advice"), rec.Lifestyle)
	add(r.labels.T("medical_advice"), rec.Medical)
	add(r.labels.T("follow_up"), rec.FollowUp)
	return rows
}

func summaryPairs(r *Renderer, res *worker.Result, l engine.LifestyleRecord, now time.Time) [][2]string {
	n := l.Normalized()
	return [][2]string{
		{r.labels.T("report_date"), now.Format("02.01.2006 15:04")},
		{r.labels.T("age"), fmt.Sprintf("%d", n.Age)},
		{r.labels.T("gender"), n.Gender},
		{r.labels.T("height"), fmt.Sprintf("%.0f cm", n.HeightCM)},
		{r.labels.T("weight"), fmt.Sprintf("%.0f kg", n.WeightKG)},
		{"BMI", fmt.Sprintf("%.1f", n.BMI())},
		{r.labels.T("total_risk"), fmt.Sprintf("%.1f/10 (%s)", res.Risk.TotalScore, res.Risk.Category)},
		{r.labels.T("primary_diagnosis"), res.Diagnosis.PrimaryDiagnosis},
		{r.labels.T("confidence"), fmt.Sprintf("%.1f%%", res.Diagnosis.Confidence)},
		{r.labels.T("detected_symptoms"), fmt.Sprintf("%d", len(res.Analysis.DetectedSymptoms))},
	}
}

const disclaimerText = "Bu rapor yalnızca bilgilendirme amaçlıdır ve tıbbi teşhis yerine geçmez. " +
	"Kesin teşhis için mutlaka bir sağlık profesyoneline başvurun. Acil durumlarda derhal " +
	"en yakın sağlık kuruluşuna gidin. İlaç kullanımı ve tedavi kararları için doktor onayı alın. " +
	"Tüm veriler yerel olarak işlenir ve dışarıya aktarılmaz."
