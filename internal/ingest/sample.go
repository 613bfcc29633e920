package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteSampleData creates small example input files under dir, one per
// supported record kind, so a first run has something to load.
func WriteSampleData(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	geneticPath := filepath.Join(dir, "sample_genetic_data.csv")
	genetic := [][]string{
		{"snp_id", "chromosome", "position", "genotype", "risk_allele", "disease_association"},
		{"rs1234567", "1", "12345", "AA", "A", "Diabetes"},
		{"rs2345678", "2", "23456", "AG", "G", "Kalp Hastalığı"},
		{"rs3456789", "3", "34567", "GG", "G", "Kanser"},
		{"rs4567890", "4", "45678", "AT", "T", "Alzheimer"},
	}
	f, err := os.Create(geneticPath)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(genetic); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	medicalPath := filepath.Join(dir, "sample_medical_data.xlsx")
	medical := [][]any{
		{"date", "diagnosis", "treatment", "status"},
		{"2023-01-15", "Hipertansiyon", "ACE inhibitör", "Aktif"},
		{"2023-03-20", "Diabetes Tip 2", "Metformin", "Kontrol altında"},
		{"2023-06-10", "Yüksek Kolesterol", "Statin", "İyileşti"},
		{"2023-09-05", "Migren", "Analjezik", "Kronik"},
	}
	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	for i, row := range medical {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write sample xlsx: %w", err)
		}
	}
	if err := book.SaveAs(medicalPath); err != nil {
		return nil, fmt.Errorf("save sample xlsx: %w", err)
	}

	familyPath := filepath.Join(dir, "sample_family_data.json")
	familyJSON := `[
  {"relationship": "mother", "diagnosis": "Hipertansiyon", "age_of_onset": 55},
  {"relationship": "father", "diagnosis": "Kalp Hastalığı", "age_of_onset": 60},
  {"relationship": "grandmother", "diagnosis": "Diabetes", "age_of_onset": 62}
]
`
	if err := os.WriteFile(familyPath, []byte(familyJSON), 0644); err != nil {
		return nil, err
	}

	return []string{geneticPath, medicalPath, familyPath}, nil
}
