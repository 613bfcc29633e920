package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"healthscreen/internal/engine"
	"healthscreen/internal/worker"
)

// XLSX writes the multi-sheet spreadsheet rendition of the report.
func (r *Renderer) XLSX(res *worker.Result, lifestyle engine.LifestyleRecord, symptoms, path string) error {
	book := excelize.NewFile()
	defer book.Close()

	summarySheet := r.labels.T("summary")
	if err := book.SetSheetName(book.GetSheetName(0), summarySheet); err != nil {
		return err
	}
	for i, pair := range summaryPairs(r, res, lifestyle, time.Now()) {
		if err := writeRow(book, summarySheet, i+1, []any{pair[0], pair[1]}); err != nil {
			return err
		}
	}

	if err := r.writeSheet(book, r.labels.T("risk_analysis"),
		[]string{r.labels.T("risk_factor"), r.labels.T("score"), r.labels.T("evaluation")},
		r.riskRows(res.Risk)); err != nil {
		return err
	}

	var symptomRows [][]string
	for _, s := range res.Extracted {
		symptomRows = append(symptomRows, []string{s.Key, s.Variant, s.Severity, s.Timing, s.Location, fmt.Sprintf("%.2f", s.Confidence)})
	}
	if err := r.writeSheet(book, r.labels.T("symptom_analysis"),
		[]string{"Semptom", "Eşleşen İfade", "Şiddet", "Zamanlama", "Bölge", r.labels.T("confidence")},
		symptomRows); err != nil {
		return err
	}
	// Overview block below the symptom table, separated by one blank row.
	for i, row := range r.overviewRows(res.Summary) {
		n := len(symptomRows) + 3 + i
		if err := writeRow(book, r.labels.T("symptom_analysis"), n, []any{row[0], row[1]}); err != nil {
			return err
		}
	}

	diagnosisRows := [][]string{{
		r.labels.T("primary_diagnosis"), res.Diagnosis.PrimaryDiagnosis,
		fmt.Sprintf("%.1f%%", res.Diagnosis.Confidence), res.Diagnosis.ICD10,
	}}
	for i, d := range res.Diagnosis.Differentials {
		diagnosisRows = append(diagnosisRows, []string{
			fmt.Sprintf("%s %d", r.labels.T("differentials"), i+1), d.Key,
			fmt.Sprintf("%.1f%%", d.Probability), "",
		})
	}
	if err := r.writeSheet(book, r.labels.T("diagnosis_prediction"),
		[]string{"Tür", "Teşhis", r.labels.T("confidence"), "ICD-10"},
		diagnosisRows); err != nil {
		return err
	}

	if err := r.writeSheet(book, r.labels.T("recommendations"),
		[]string{"Kategori", "Öneri"},
		r.recommendationRows(res.Recommendations)); err != nil {
		return err
	}

	if err := r.writeSheet(book, r.labels.T("lifestyle_analysis"),
		[]string{"Faktör", "Durum", r.labels.T("evaluation")},
		r.lifestyleRows(lifestyle)); err != nil {
		return err
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx report: %w", err)
	}
	return nil
}

func (r *Renderer) writeSheet(book *excelize.File, name string, header []string, rows [][]string) error {
	if _, err := book.NewSheet(name); err != nil {
		return err
	}
	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := writeRow(book, name, 1, hdr); err != nil {
		return err
	}
	for i, row := range rows {
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := writeRow(book, name, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(book *excelize.File, sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return book.SetSheetRow(sheet, cell, &values)
}
