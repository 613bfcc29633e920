package engine

import "strings"

// Recommendations assembles the four advice buckets from independent,
// additive rules. Rule evaluation order is fixed: risk level, BMI, smoking,
// exercise, sleep, stress, disease-specific advice (only above 50%
// diagnosis confidence), follow-up by risk category, then the generic
// lifestyle advice which is always appended last. No rule removes or
// deduplicates another's output.
func (e *Engine) Recommendations(risk RiskAssessment, diagnosis DiagnosisPrediction, lifestyle LifestyleRecord) RecommendationSet {
	l := lifestyle.Normalized()
	var rec RecommendationSet

	if risk.Category == RiskHigh || risk.TotalScore > 7 {
		rec.ImmediateActions = append(rec.ImmediateActions,
			"Acil olarak bir sağlık profesyoneline başvurun",
			"Kan basıncı ve kan şekeri kontrolü yaptırın",
			"Mevcut ilaçlarınızı gözden geçirin",
		)
	}

	bmi := l.BMI()
	if bmi > 30 {
		rec.Lifestyle = append(rec.Lifestyle, "Kilo verme programı başlatın (hedef BMI: 18.5-24.9)")
	} else if bmi > 25 {
		rec.Lifestyle = append(rec.Lifestyle, "Sağlıklı beslenme ve düzenli egzersiz ile ideal kiloya ulaşın")
	}

	if l.Smoking == SmokingDaily || l.Smoking == SmokingOccasional {
		rec.Lifestyle = append(rec.Lifestyle, "Sigara bırakma programına katılın")
		rec.Medical = append(rec.Medical, "Sigara bırakma danışmanlığı alın")
	}

	switch l.Exercise {
	case ExerciseNone:
		rec.Lifestyle = append(rec.Lifestyle, "Haftada en az 150 dakika orta şiddetli egzersiz yapın")
	case ExerciseLight:
		rec.Lifestyle = append(rec.Lifestyle, "Egzersiz sıklığınızı haftada 3-4 güne çıkarın")
	}

	if l.SleepHours < 7 {
		rec.Lifestyle = append(rec.Lifestyle, "Günlük 7-9 saat kaliteli uyku alın")
	} else if l.SleepHours > 9 {
		rec.Lifestyle = append(rec.Lifestyle, "Uyku düzeninizi gözden geçirin, aşırı uyku da zararlı olabilir")
	}

	if l.StressLevel > 6 {
		rec.Lifestyle = append(rec.Lifestyle,
			"Stres yönetimi teknikleri öğrenin (meditasyon, nefes egzersizleri)",
			"Düzenli fiziksel aktivite ile stresi azaltın",
		)
	}

	if diagnosis.Confidence > 50 {
		e.diseaseAdvice(&rec, strings.ToLower(diagnosis.PrimaryDiagnosis))
	}

	switch risk.Category {
	case RiskHigh:
		rec.FollowUp = append(rec.FollowUp,
			"3 ay içinde kontrol muayenesi",
			"Aylık kan basıncı takibi",
			"Risk faktörlerinin düzenli değerlendirilmesi",
		)
	case RiskMedium:
		rec.FollowUp = append(rec.FollowUp,
			"6 ay içinde kontrol muayenesi",
			"Yaşam tarzı değişikliklerinin takibi",
		)
	default:
		rec.FollowUp = append(rec.FollowUp, "Yıllık genel sağlık kontrolü")
	}

	rec.Lifestyle = append(rec.Lifestyle,
		"Bol su için (günlük 2-3 litre)",
		"Sebze ve meyve tüketimini artırın",
		"İşlenmiş gıdaları sınırlayın",
	)

	return rec
}

// diseaseAdvice appends advice blocks keyed by substring match on the
// primary diagnosis name.
func (e *Engine) diseaseAdvice(rec *RecommendationSet, diagnosis string) {
	switch {
	case strings.Contains(diagnosis, "diabetes"):
		rec.Medical = append(rec.Medical,
			"HbA1c ve açlık kan şekeri testi yaptırın",
			"Diyetisyen kontrolü alın",
			"Kan şekeri takibi yapın",
		)
		rec.Lifestyle = append(rec.Lifestyle,
			"Şekerli gıdaları sınırlayın",
			"Düzenli öğün saatleri belirleyin",
			"Karbonhidrat sayımı öğrenin",
		)
	case strings.Contains(diagnosis, "hipertansiyon"):
		rec.Medical = append(rec.Medical,
			"Düzenli kan basıncı ölçümü yapın",
			"Kardiyoloji kontrolü yaptırın",
		)
		rec.Lifestyle = append(rec.Lifestyle,
			"Tuz tüketimini azaltın (günlük 5g altı)",
			"DASH diyeti uygulayın",
			"Düzenli aerobik egzersiz yapın",
		)
	case strings.Contains(diagnosis, "kalp"):
		rec.Medical = append(rec.Medical,
			"EKG ve ekokardiyografi yaptırın",
			"Kardiyoloji uzmanına başvurun",
			"Kolesterol profili kontrolü yaptırın",
		)
		rec.ImmediateActions = append(rec.ImmediateActions, "Göğüs ağrısı durumunda acil servise başvurun")
	case strings.Contains(diagnosis, "depresyon"):
		rec.Medical = append(rec.Medical,
			"Psikiyatri veya psikoloji uzmanına başvurun",
			"Depresyon tarama testleri yaptırın",
		)
		rec.Lifestyle = append(rec.Lifestyle,
			"Sosyal aktivitelere katılın",
			"Düzenli uyku düzeni oluşturun",
			"Güneş ışığından yararlanın",
		)
	}
}
