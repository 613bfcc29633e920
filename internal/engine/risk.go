package engine

import "strings"

// Chronic conditions scanned for in the medical history, 2 points each.
var chronicConditions = []string{"diabetes", "hipertansiyon", "kalp hastalığı", "kanser"}

// High-risk conditions scanned for in the family history, 1.5 points each.
var familyRiskConditions = []string{"kalp hastalığı", "kanser", "diabetes", "alzheimer"}

// RiskScore computes the four sub-scores and their composite. Each
// sub-score is clamped to [0,10]; a missing optional dataset degrades that
// sub-score to 0. The composite is always the mean of exactly four
// sub-scores, even when some defaulted to 0 for lack of data.
func (e *Engine) RiskScore(data Datasets, lifestyle LifestyleRecord) RiskAssessment {
	r := RiskAssessment{
		GeneticRisk:        clamp10(geneticRisk(data.Genetic)),
		LifestyleRisk:      clamp10(lifestyleRisk(lifestyle.Normalized())),
		MedicalHistoryRisk: clamp10(historyRisk(data.Medical, chronicConditions, 2.0)),
		FamilyHistoryRisk:  clamp10(historyRisk(data.Family, familyRiskConditions, 1.5)),
	}
	r.TotalScore = (r.GeneticRisk + r.LifestyleRisk + r.MedicalHistoryRisk + r.FamilyHistoryRisk) / 4
	r.Category = riskCategory(r.TotalScore)
	return r
}

func riskCategory(total float64) string {
	switch {
	case total < 3:
		return RiskLow
	case total < 6:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// geneticRisk scales the proportion of records carrying a non-empty
// risk_allele value to [0,10]. An absent or empty dataset scores 0; the
// division by record count is guarded explicitly.
func geneticRisk(d *Dataset) float64 {
	if d.Empty() || !d.HasColumn("risk_allele") {
		return 0
	}
	total := len(d.Rows)
	if total == 0 {
		return 0
	}
	carriers := 0
	for _, v := range d.Column("risk_allele") {
		if strings.TrimSpace(v) != "" {
			carriers++
		}
	}
	return float64(carriers) / float64(total) * 10
}

// lifestyleRisk is an additive point scale over fixed thresholds, capped at
// 10 by the caller's clamp.
func lifestyleRisk(l LifestyleRecord) float64 {
	score := 0.0

	if l.Age > 65 {
		score += 2
	} else if l.Age > 45 {
		score += 1
	}

	bmi := l.BMI()
	if bmi > 30 {
		score += 2
	} else if bmi > 25 {
		score += 1
	}

	switch l.Smoking {
	case SmokingDaily:
		score += 3
	case SmokingOccasional:
		score += 1
	}

	switch l.Alcohol {
	case AlcoholDaily:
		score += 2
	case AlcoholWeekly:
		score += 1
	}

	switch l.Exercise {
	case ExerciseNone:
		score += 2
	case ExerciseLight:
		score += 1
	}

	if l.SleepHours < 6 || l.SleepHours > 9 {
		score += 1
	}

	if l.StressLevel > 7 {
		score += 2
	} else if l.StressLevel > 5 {
		score += 1
	}

	return score
}

// historyRisk awards pointsPer for every distinct condition found by
// case-insensitive substring search across the dataset's diagnosis column.
func historyRisk(d *Dataset, conditions []string, pointsPer float64) float64 {
	if d.Empty() || !d.HasColumn("diagnosis") {
		return 0
	}
	diagnoses := d.Column("diagnosis")
	score := 0.0
	for _, condition := range conditions {
		for _, diag := range diagnoses {
			if strings.Contains(strings.ToLower(diag), condition) {
				score += pointsPer
				break
			}
		}
	}
	return score
}

func clamp10(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
