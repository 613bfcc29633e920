package runlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes every table of the run log to one workbook, a sheet per
// table, for offline review.
func ExportXLSX(db *sql.DB, path string) error {
	runs, err := ListRuns(db, time.Time{}, time.Now().Add(24*time.Hour))
	if err != nil {
		return fmt.Errorf("export runs: %w", err)
	}
	feedback, err := ListFeedback(db, 10000)
	if err != nil {
		return fmt.Errorf("export feedback: %w", err)
	}

	book := excelize.NewFile()
	defer book.Close()

	runSheet := book.GetSheetName(0)
	if err := book.SetSheetName(runSheet, "Runs"); err != nil {
		return err
	}
	header := []any{
		"ID", "Created", "Symptoms", "Total Score", "Category",
		"Primary Diagnosis", "Confidence", "Detected Symptoms",
	}
	if err := setRow(book, "Runs", 1, header); err != nil {
		return err
	}
	for i, r := range runs {
		row := []any{
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Symptoms,
			fmt.Sprintf("%.1f", r.TotalScore), r.RiskCategory,
			r.PrimaryDiagnosis, fmt.Sprintf("%.1f%%", r.Confidence), r.DetectedSymptoms,
		}
		if err := setRow(book, "Runs", i+2, row); err != nil {
			return err
		}
	}

	if _, err := book.NewSheet("Feedback"); err != nil {
		return err
	}
	if err := setRow(book, "Feedback", 1, []any{"Run ID", "Rating", "Actual Diagnosis", "Comment", "Created"}); err != nil {
		return err
	}
	for i, f := range feedback {
		rating := any("")
		if f.UserRating.Valid {
			rating = f.UserRating.Int64
		}
		row := []any{f.RunID, rating, f.ActualDiagnosis, f.FeedbackText, f.CreatedAt.Format("2006-01-02 15:04")}
		if err := setRow(book, "Feedback", i+2, row); err != nil {
			return err
		}
	}

	if err := exportMappings(db, book); err != nil {
		return err
	}

	return book.SaveAs(path)
}

func exportMappings(db *sql.DB, book *excelize.File) error {
	rows, err := db.Query(
		`SELECT symptoms, diagnosis, confidence, verified, source, created_at
		 FROM symptom_mappings ORDER BY created_at`,
	)
	if err != nil {
		return fmt.Errorf("export mappings: %w", err)
	}
	defer rows.Close()

	if _, err := book.NewSheet("Mappings"); err != nil {
		return err
	}
	if err := setRow(book, "Mappings", 1, []any{"Symptoms", "Diagnosis", "Confidence", "Verified", "Source", "Created"}); err != nil {
		return err
	}
	i := 2
	for rows.Next() {
		var m Mapping
		if err := rows.Scan(&m.Symptoms, &m.Diagnosis, &m.Confidence, &m.Verified, &m.Source, &m.CreatedAt); err != nil {
			return err
		}
		row := []any{m.Symptoms, m.Diagnosis, m.Confidence, m.Verified, m.Source, m.CreatedAt.Format("2006-01-02 15:04")}
		if err := setRow(book, "Mappings", i, row); err != nil {
			return err
		}
		i++
	}
	return rows.Err()
}

func setRow(book *excelize.File, sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return book.SetSheetRow(sheet, cell, &values)
}
