package engine

import (
	"fmt"
	"sort"
)

// PredictDiagnosis selects the disease with the highest match ratio as the
// primary diagnosis; ties keep the canonical table order. Up to five
// runner-ups become the differential list. When nothing matched at all, a
// sentinel prediction with zero confidence is returned rather than an
// error.
func (e *Engine) PredictDiagnosis(analysis SymptomAnalysis) DiagnosisPrediction {
	if len(analysis.DiseaseMatches) == 0 {
		return DiagnosisPrediction{
			PrimaryDiagnosis: Undetermined,
			Confidence:       0,
			Differentials:    []Differential{},
			Recommendation:   "Daha detaylı muayene gerekli",
			ICD10:            "Unknown",
		}
	}

	ranked := append([]DiseaseMatch(nil), analysis.DiseaseMatches...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchRatio > ranked[j].MatchRatio
	})

	primary := ranked[0]
	confidence := primary.MatchRatio * 100

	differentials := []Differential{}
	for _, m := range ranked[1:] {
		if len(differentials) == 5 {
			break
		}
		differentials = append(differentials, Differential{
			Key:             m.Key,
			Probability:     m.MatchRatio * 100,
			MatchedSymptoms: m.MatchedSymptoms,
		})
	}

	var recommendation string
	switch {
	case confidence > 70:
		recommendation = fmt.Sprintf("%s için uzman doktor kontrolü önerilir", primary.Key)
	case confidence > 40:
		recommendation = fmt.Sprintf("Belirti profili %s ile uyumlu, doktor değerlendirmesi gerekli", primary.Key)
	default:
		recommendation = "Belirsiz semptom profili, kapsamlı tıbbi değerlendirme önerilir"
	}

	icd10 := "Unknown"
	if d := e.cat.Disease(primary.Key); d != nil && d.ICD10 != "" {
		icd10 = d.ICD10
	}

	return DiagnosisPrediction{
		PrimaryDiagnosis: primary.Key,
		Confidence:       confidence,
		Differentials:    differentials,
		Recommendation:   recommendation,
		ICD10:            icd10,
	}
}
