package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overlay is an optional YAML file that extends the built-in tables with
// site-specific diseases and symptom phrases without a rebuild.
type Overlay struct {
	Diseases []OverlayDisease `yaml:"diseases"`
	Symptoms []OverlaySymptom `yaml:"symptoms"`
}

type OverlayDisease struct {
	Key         string   `yaml:"key"`
	Symptoms    []string `yaml:"symptoms"`
	RiskFactors []string `yaml:"risk_factors"`
	Severity    string   `yaml:"severity"`
	ICD10       string   `yaml:"icd10"`
}

type OverlaySymptom struct {
	Key      string   `yaml:"key"`
	Variants []string `yaml:"variants"`
}

// LoadOverlay reads and validates an overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog overlay: %w", err)
	}
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse catalog overlay yaml: %w", err)
	}
	for _, d := range o.Diseases {
		if d.Key == "" || len(d.Symptoms) == 0 {
			return nil, fmt.Errorf("catalog overlay: disease entries need a key and at least one symptom")
		}
		switch d.Severity {
		case "", SeverityLow, SeverityMedium, SeverityHigh:
		default:
			return nil, fmt.Errorf("catalog overlay: unknown severity %q for %q", d.Severity, d.Key)
		}
	}
	return &o, nil
}

// Apply merges the overlay into the catalog. New diseases append after the
// built-in table so built-in tie-break order is preserved; an overlay entry
// with an existing key replaces that entry in place. Symptom variants for
// an existing key are appended, duplicates ignored.
func (c *Catalog) Apply(o *Overlay) {
	for _, d := range o.Diseases {
		entry := DiseaseEntry{
			Key:         d.Key,
			Symptoms:    d.Symptoms,
			RiskFactors: d.RiskFactors,
			Severity:    d.Severity,
			ICD10:       d.ICD10,
		}
		if entry.Severity == "" {
			entry.Severity = SeverityMedium
		}
		if existing := c.Disease(d.Key); existing != nil {
			*existing = entry
			continue
		}
		c.Diseases = append(c.Diseases, entry)
	}

	for _, s := range o.Symptoms {
		if s.Key == "" || len(s.Variants) == 0 {
			continue
		}
		existing, ok := c.SymptomDictionary[s.Key]
		if !ok {
			c.addSymptom(s.Key, s.Variants...)
			continue
		}
		for _, v := range s.Variants {
			if !containsFold(existing, v) {
				existing = append(existing, v)
			}
		}
		c.SymptomDictionary[s.Key] = existing
	}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}
