package textscan

import "sort"

// systemGroup ties a body system to the canonical symptom keys it covers.
// Order matters: summary output and specialty suggestions follow it.
type systemGroup struct {
	Name string
	Keys []string
}

var systemGroups = []systemGroup{
	{"cardiovascular", []string{"göğüs_ağrısı", "nefes_darlığı", "çarpıntı", "şişlik"}},
	{"respiratory", []string{"öksürük", "balgam", "hırıltı", "nefes_darlığı"}},
	{"gastrointestinal", []string{"karın_ağrısı", "bulantı", "kusma", "ishal", "kabızlık"}},
	{"neurological", []string{"baş_ağrısı", "baş_dönmesi", "uyuşma", "titreme"}},
	{"psychiatric", []string{"depresyon", "anksiyete", "uykusuzluk"}},
	{"musculoskeletal", []string{"kas_ağrısı", "eklem_ağrısı", "sırt_ağrısı"}},
	{"dermatological", []string{"kaşıntı", "döküntü", "şişlik"}},
	{"metabolic", []string{"yorgunluk", "susuzluk", "iştah_kaybı", "kilo_kaybı", "kilo_alımı"}},
}

// SystemPattern aggregates the extracted symptoms that fall into one body
// system.
type SystemPattern struct {
	System            string
	Symptoms          []ExtractedSymptom
	AverageConfidence float64
	SeverityCounts    map[string]int
}

// GroupBySystem buckets extracted symptoms into body systems. Systems with
// no hits are omitted. A symptom key appearing in two groups (e.g. shortness
// of breath) counts in both.
func GroupBySystem(symptoms []ExtractedSymptom) []SystemPattern {
	byKey := make(map[string]ExtractedSymptom, len(symptoms))
	for _, s := range symptoms {
		byKey[s.Key] = s
	}

	var out []SystemPattern
	for _, g := range systemGroups {
		var hits []ExtractedSymptom
		total := 0.0
		counts := map[string]int{}
		for _, key := range g.Keys {
			s, ok := byKey[key]
			if !ok {
				continue
			}
			hits = append(hits, s)
			total += s.Confidence
			counts[s.Severity]++
		}
		if len(hits) == 0 {
			continue
		}
		out = append(out, SystemPattern{
			System:            g.Name,
			Symptoms:          hits,
			AverageConfidence: total / float64(len(hits)),
			SeverityCounts:    counts,
		})
	}
	return out
}

// SystemRank is one entry of the top-systems list in a Summary.
type SystemRank struct {
	System       string
	SymptomCount int
	Confidence   float64
}

// Summary condenses an extraction run for display and reporting.
type Summary struct {
	TotalSymptoms  int
	PrimarySystems []SystemRank
	SeverityCounts map[string]int
	TimingCounts   map[string]int
	KeyFindings    []string
}

// Summarize builds the overview shown on reports: the three most affected
// systems (by symptom count, then average confidence), severity and timing
// distributions, and notable findings.
func Summarize(symptoms []ExtractedSymptom, patterns []SystemPattern) Summary {
	sum := Summary{
		TotalSymptoms:  len(symptoms),
		SeverityCounts: map[string]int{},
		TimingCounts:   map[string]int{},
	}
	for _, s := range symptoms {
		sum.SeverityCounts[s.Severity]++
		sum.TimingCounts[s.Timing]++
	}

	ranked := make([]SystemRank, 0, len(patterns))
	for _, p := range patterns {
		ranked = append(ranked, SystemRank{
			System:       p.System,
			SymptomCount: len(p.Symptoms),
			Confidence:   p.AverageConfidence,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SymptomCount != ranked[j].SymptomCount {
			return ranked[i].SymptomCount > ranked[j].SymptomCount
		}
		return ranked[i].Confidence > ranked[j].Confidence
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	sum.PrimarySystems = ranked

	if n := sum.SeverityCounts["severe"]; n > 0 {
		sum.KeyFindings = append(sum.KeyFindings, "şiddetli semptomlar tespit edildi")
	}
	if sum.TimingCounts["continuous"] > 0 {
		sum.KeyFindings = append(sum.KeyFindings, "sürekli semptomlar mevcut")
	}
	if len(patterns) > 2 {
		sum.KeyFindings = append(sum.KeyFindings, "çoklu sistem tutulumu")
	}
	return sum
}

var specialtyMapping = map[string][]string{
	"cardiovascular":   {"Kardiyoloji", "İç Hastalıkları"},
	"respiratory":      {"Göğüs Hastalıkları", "İç Hastalıkları"},
	"gastrointestinal": {"Gastroenteroloji", "İç Hastalıkları"},
	"neurological":     {"Nöroloji", "İç Hastalıkları"},
	"psychiatric":      {"Psikiyatri", "Psikoloji"},
	"musculoskeletal":  {"Ortopedi", "Fizik Tedavi", "Romatoloji"},
	"dermatological":   {"Dermatoloji"},
	"metabolic":        {"Endokrinoloji", "İç Hastalıkları"},
}

var specialtyPriority = []string{
	"Acil Tıp",
	"İç Hastalıkları",
	"Kardiyoloji",
	"Nöroloji",
	"Gastroenteroloji",
	"Göğüs Hastalıkları",
	"Psikiyatri",
	"Endokrinoloji",
	"Ortopedi",
	"Dermatoloji",
	"Romatoloji",
	"Fizik Tedavi",
	"Psikoloji",
}

var emergencyKeys = map[string]bool{
	"göğüs_ağrısı":  true,
	"nefes_darlığı": true,
	"konvülsiyon":   true,
}

// SuggestSpecialties maps affected systems to medical specialties, at most
// five, in a fixed priority order. Emergency medicine is prepended when a
// cardiovascular or neurological pattern contains chest pain, shortness of
// breath or convulsions.
func SuggestSpecialties(patterns []SystemPattern) []string {
	suggested := map[string]bool{}
	for _, p := range patterns {
		for _, sp := range specialtyMapping[p.System] {
			suggested[sp] = true
		}
		if p.System == "cardiovascular" || p.System == "neurological" {
			for _, s := range p.Symptoms {
				if emergencyKeys[s.Key] {
					suggested["Acil Tıp"] = true
				}
			}
		}
	}

	var out []string
	for _, sp := range specialtyPriority {
		if suggested[sp] {
			out = append(out, sp)
		}
		if len(out) == 5 {
			break
		}
	}
	return out
}
