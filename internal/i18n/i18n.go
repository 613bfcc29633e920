// Package i18n provides the display-language phrase store used by the
// shell and report layers. The matching and scoring engine never consults
// it: medical phrase dictionaries stay canonical regardless of display
// language.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Supported display languages, in preference order.
var Supported = []string{"tr", "en", "de"}

const fallbackLang = "tr"

// Store resolves label keys for one selected language, falling back to
// Turkish and finally to the key itself.
type Store struct {
	lang   string
	tables map[string]map[string]string
}

// Load builds a store for lang. When dir is non-empty, a <lang>.json file
// there overrides the built-in table for that language; a missing file is
// fine, a malformed one fails the load.
func Load(dir, lang string) (*Store, error) {
	if !supported(lang) {
		return nil, fmt.Errorf("unsupported language %q (supported: %v)", lang, Supported)
	}

	s := &Store{lang: lang, tables: map[string]map[string]string{}}
	for code, table := range builtin {
		copied := make(map[string]string, len(table))
		for k, v := range table {
			copied[k] = v
		}
		s.tables[code] = copied
	}

	if dir != "" {
		path := filepath.Join(dir, lang+".json")
		data, err := os.ReadFile(path)
		if err == nil {
			var overrides map[string]string
			if err := json.Unmarshal(data, &overrides); err != nil {
				return nil, fmt.Errorf("parse language file %s: %w", path, err)
			}
			for k, v := range overrides {
				s.tables[lang][k] = v
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read language file: %w", err)
		}
	}
	return s, nil
}

func supported(lang string) bool {
	for _, code := range Supported {
		if code == lang {
			return true
		}
	}
	return false
}

// Lang returns the selected language code.
func (s *Store) Lang() string { return s.lang }

// T resolves a label key.
func (s *Store) T(key string) string {
	if v, ok := s.tables[s.lang][key]; ok {
		return v
	}
	if v, ok := s.tables[fallbackLang][key]; ok {
		return v
	}
	return key
}

var builtin = map[string]map[string]string{
	"tr": {
		"app_title":            "Sağlık Tarama Sistemi",
		"report_title":         "Kişisel Sağlık Değerlendirme Raporu",
		"summary":              "Genel Özet",
		"risk_analysis":        "Risk Analizi",
		"symptom_analysis":     "Semptom Analizi",
		"diagnosis_prediction": "Teşhis Tahmini",
		"recommendations":      "Kişisel Öneriler",
		"lifestyle_analysis":   "Yaşam Tarzı Analizi",
		"disclaimer":           "Sorumluluk Reddi ve Uyarılar",
		"risk_factor":          "Risk Faktörü",
		"score":                "Skor",
		"evaluation":           "Değerlendirme",
		"total_risk":           "Toplam Risk",
		"genetic_risk":         "Genetik Risk",
		"lifestyle_risk":       "Yaşam Tarzı Riski",
		"medical_risk":         "Tıbbi Geçmiş Riski",
		"family_risk":          "Aile Geçmişi Riski",
		"primary_diagnosis":    "Birincil Teşhis",
		"confidence":           "Güven Oranı",
		"differentials":        "Ayırıcı Teşhisler",
		"detected_symptoms":    "Tespit Edilen Semptomlar",
		"primary_systems":      "Öncelikli Sistemler",
		"key_findings":         "Önemli Bulgular",
		"immediate_actions":    "Acil Öneriler",
		"lifestyle_advice":     "Yaşam Tarzı Önerileri",
		"medical_advice":       "Tıbbi Öneriler",
		"follow_up":            "Takip Önerileri",
		"report_date":          "Rapor Tarihi",
		"age":                  "Yaş",
		"gender":               "Cinsiyet",
		"height":               "Boy",
		"weight":               "Kilo",
		"analysis_done":        "Analiz tamamlandı",
		"analysis_failed":      "Analiz hatası",
	},
	"en": {
		"app_title":            "Health Screening System",
		"report_title":         "Personal Health Assessment Report",
		"summary":              "Summary",
		"risk_analysis":        "Risk Analysis",
		"symptom_analysis":     "Symptom Analysis",
		"diagnosis_prediction": "Diagnosis Prediction",
		"recommendations":      "Personal Recommendations",
		"lifestyle_analysis":   "Lifestyle Analysis",
		"disclaimer":           "Disclaimer and Warnings",
		"risk_factor":          "Risk Factor",
		"score":                "Score",
		"evaluation":           "Evaluation",
		"total_risk":           "Total Risk",
		"genetic_risk":         "Genetic Risk",
		"lifestyle_risk":       "Lifestyle Risk",
		"medical_risk":         "Medical History Risk",
		"family_risk":          "Family History Risk",
		"primary_diagnosis":    "Primary Diagnosis",
		"confidence":           "Confidence",
		"differentials":        "Differential Diagnoses",
		"detected_symptoms":    "Detected Symptoms",
		"primary_systems":      "Primary Systems",
		"key_findings":         "Key Findings",
		"immediate_actions":    "Immediate Actions",
		"lifestyle_advice":     "Lifestyle Recommendations",
		"medical_advice":       "Medical Recommendations",
		"follow_up":            "Follow-up",
		"report_date":          "Report Date",
		"age":                  "Age",
		"gender":               "Gender",
		"height":               "Height",
		"weight":               "Weight",
		"analysis_done":        "Analysis complete",
		"analysis_failed":      "Analysis failed",
	},
	"de": {
		"app_title":            "Gesundheits-Screening-System",
		"report_title":         "Persönlicher Gesundheitsbericht",
		"summary":              "Zusammenfassung",
		"risk_analysis":        "Risikoanalyse",
		"symptom_analysis":     "Symptomanalyse",
		"diagnosis_prediction": "Diagnosevorhersage",
		"recommendations":      "Persönliche Empfehlungen",
		"lifestyle_analysis":   "Lebensstilanalyse",
		"disclaimer":           "Haftungsausschluss und Warnhinweise",
		"risk_factor":          "Risikofaktor",
		"score":                "Punktzahl",
		"evaluation":           "Bewertung",
		"total_risk":           "Gesamtrisiko",
		"genetic_risk":         "Genetisches Risiko",
		"lifestyle_risk":       "Lebensstil-Risiko",
		"medical_risk":         "Krankengeschichte-Risiko",
		"family_risk":          "Familienanamnese-Risiko",
		"primary_diagnosis":    "Primärdiagnose",
		"confidence":           "Konfidenz",
		"differentials":        "Differentialdiagnosen",
		"detected_symptoms":    "Erkannte Symptome",
		"primary_systems":      "Primäre Systeme",
		"key_findings":         "Wichtige Befunde",
		"immediate_actions":    "Sofortmaßnahmen",
		"lifestyle_advice":     "Lebensstil-Empfehlungen",
		"medical_advice":       "Medizinische Empfehlungen",
		"follow_up":            "Nachsorge",
		"report_date":          "Berichtsdatum",
		"age":                  "Alter",
		"gender":               "Geschlecht",
		"height":               "Größe",
		"weight":               "Gewicht",
		"analysis_done":        "Analyse abgeschlossen",
		"analysis_failed":      "Analyse fehlgeschlagen",
	},
}
