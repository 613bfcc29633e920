package report

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"healthscreen/internal/engine"
	"healthscreen/internal/worker"
)

// PDF writes the full paginated report. Text is passed through the cp1254
// translator so Turkish characters survive the core fonts.
func (r *Renderer) PDF(res *worker.Result, lifestyle engine.LifestyleRecord, symptoms, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1254")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(r.labels.T("app_title")), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(0, 8, tr(r.labels.T("report_title")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for _, pair := range summaryPairs(r, res, lifestyle, time.Now()) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 7, tr(pair[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, tr(pair[1]), "1", 1, "L", false, 0, "")
	}

	r.pdfHeading(pdf, tr, r.labels.T("risk_analysis"))
	r.pdfTable(pdf, tr,
		[]string{r.labels.T("risk_factor"), r.labels.T("score"), r.labels.T("evaluation")},
		r.riskRows(res.Risk), []float64{80, 35, 55})

	r.pdfHeading(pdf, tr, r.labels.T("symptom_analysis"))
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(symptoms), "", "L", false)
	pdf.Ln(2)
	if len(res.Analysis.DetectedSymptoms) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s (%d):", r.labels.T("detected_symptoms"), len(res.Analysis.DetectedSymptoms))), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, s := range res.Analysis.DetectedSymptoms {
			pdf.CellFormat(0, 6, tr("- "+s), "", 1, "L", false, 0, "")
		}
	}
	if len(res.Analysis.SystemMatches) > 0 {
		var rows [][]string
		for _, m := range res.Analysis.SystemMatches {
			rows = append(rows, []string{m.Name, fmt.Sprintf("%d/%d", m.Matches, m.Total), fmt.Sprintf("%.1f%%", m.Ratio*100)})
		}
		pdf.Ln(2)
		r.pdfTable(pdf, tr, []string{"Sistem", "Eşleşme", "Oran"}, rows, []float64{80, 45, 45})
	}
	if rows := r.overviewRows(res.Summary); len(rows) > 0 {
		pdf.Ln(2)
		for _, row := range rows {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(60, 6, tr(row[0]), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 6, tr(row[1]), "", "L", false)
		}
	}

	r.pdfHeading(pdf, tr, r.labels.T("diagnosis_prediction"))
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", r.labels.T("primary_diagnosis"), res.Diagnosis.PrimaryDiagnosis)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %.1f%%", r.labels.T("confidence"), res.Diagnosis.Confidence)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("ICD-10: %s", res.Diagnosis.ICD10)), "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 6, tr(res.Diagnosis.Recommendation), "", "L", false)
	if len(res.Diagnosis.Differentials) > 0 {
		var rows [][]string
		for i, d := range res.Diagnosis.Differentials {
			rows = append(rows, []string{fmt.Sprintf("%d", i+1), d.Key, fmt.Sprintf("%.1f%%", d.Probability)})
		}
		pdf.Ln(2)
		r.pdfTable(pdf, tr, []string{"#", r.labels.T("differentials"), r.labels.T("confidence")}, rows, []float64{15, 110, 45})
	}

	r.pdfHeading(pdf, tr, r.labels.T("recommendations"))
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range r.recommendationRows(res.Recommendations) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, tr(row[1]), "", "L", false)
	}

	r.pdfHeading(pdf, tr, r.labels.T("lifestyle_analysis"))
	r.pdfTable(pdf, tr, []string{"Faktör", "Durum", r.labels.T("evaluation")}, r.lifestyleRows(lifestyle), []float64{70, 50, 50})

	pdf.AddPage()
	r.pdfHeading(pdf, tr, r.labels.T("disclaimer"))
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, tr(disclaimerText), "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf report: %w", err)
	}
	return nil
}

func (r *Renderer) pdfHeading(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (r *Renderer) pdfTable(pdf *fpdf.Fpdf, tr func(string) string, header []string, rows [][]string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
