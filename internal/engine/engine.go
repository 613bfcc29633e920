// Package engine implements the matching and scoring pipeline: symptom
// matching against the disease tables, risk scoring, diagnosis prediction
// and recommendation assembly. The engine holds no logging or localization
// dependency; it consumes plain records and returns plain records.
package engine

import (
	"fmt"
	"strings"

	"healthscreen/internal/catalog"
	"healthscreen/internal/textscan"
)

type Engine struct {
	cat     *catalog.Catalog
	scanner *textscan.Scanner
}

func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat, scanner: textscan.New(cat)}
}

// Scanner exposes the text extraction helper bound to this engine's catalog.
func (e *Engine) Scanner() *textscan.Scanner {
	return e.scanner
}

// AnalyzeSymptoms matches free-form complaint text against the disease and
// body-system tables. Matching is case-insensitive substring containment
// with no word-boundary check; a phrase negated within its clause (per
// the extraction helper's negation window) does not count as a match.
// Empty or matchless input yields a result with empty slices, not an error.
func (e *Engine) AnalyzeSymptoms(text string) SymptomAnalysis {
	text = strings.ToLower(text)

	var result SymptomAnalysis
	seen := map[string]bool{}

	for _, disease := range e.cat.Diseases {
		match := DiseaseMatch{
			Key:           disease.Key,
			TotalSymptoms: len(disease.Symptoms),
			Severity:      disease.Severity,
		}
		for _, symptom := range disease.Symptoms {
			if !e.phraseMatches(text, symptom) {
				continue
			}
			match.Matches++
			match.MatchedSymptoms = append(match.MatchedSymptoms, symptom)
			if !seen[symptom] {
				seen[symptom] = true
				result.DetectedSymptoms = append(result.DetectedSymptoms, symptom)
			}
		}
		if match.Matches > 0 {
			match.MatchRatio = float64(match.Matches) / float64(match.TotalSymptoms)
			result.DiseaseMatches = append(result.DiseaseMatches, match)
		}
	}

	bestRatio := 0.0
	for _, system := range e.cat.Systems {
		matches := 0
		for _, symptom := range system.Symptoms {
			if e.phraseMatches(text, symptom) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		sm := SystemMatch{
			Name:    system.Name,
			Matches: matches,
			Total:   len(system.Symptoms),
			Ratio:   float64(matches) / float64(len(system.Symptoms)),
		}
		result.SystemMatches = append(result.SystemMatches, sm)
		// Strict greater-than keeps the first-seen system on ties.
		if sm.Ratio > bestRatio {
			bestRatio = sm.Ratio
			result.PrimarySystem = system.Name
		}
	}

	return result
}

func (e *Engine) phraseMatches(text, phrase string) bool {
	p := strings.ToLower(phrase)
	if !strings.Contains(text, p) {
		return false
	}
	return !e.scanner.Negated(text, p)
}

// Preprocess fills missing cell values in each supplied dataset: numeric
// columns with the column mean, other columns with the most frequent value
// (or "unknown" when the column is entirely empty). Inputs are not
// modified; filled copies are returned.
func (e *Engine) Preprocess(data Datasets) Datasets {
	return Datasets{
		Genetic: fillMissing(data.Genetic),
		Medical: fillMissing(data.Medical),
		Family:  fillMissing(data.Family),
	}
}

func fillMissing(d *Dataset) *Dataset {
	if d.Empty() {
		return d
	}

	out := &Dataset{Columns: append([]string(nil), d.Columns...)}
	out.Rows = make([]map[string]string, len(d.Rows))
	for i, row := range d.Rows {
		copied := make(map[string]string, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Rows[i] = copied
	}

	for _, col := range out.Columns {
		values := out.Column(col)

		numeric := false
		sum, count := 0.0, 0
		for _, v := range values {
			f, ok := parseFloatField(v)
			if !ok {
				if strings.TrimSpace(v) != "" {
					count = 0
					break
				}
				continue
			}
			numeric = true
			sum += f
			count++
		}

		var fill string
		if numeric && count > 0 {
			fill = fmt.Sprintf("%g", sum/float64(count))
		} else {
			fill = modeValue(values)
		}

		for _, row := range out.Rows {
			if strings.TrimSpace(row[col]) == "" {
				row[col] = fill
			}
		}
	}
	return out
}

func modeValue(values []string) string {
	counts := map[string]int{}
	best, bestCount := "unknown", 0
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}
