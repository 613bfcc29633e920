// Package textscan extracts symptom mentions from free-form complaint text.
// Matching is case-insensitive substring containment against the catalog's
// phrase dictionary. A phrase can match inside a longer word; there is no
// word-boundary check. That imprecision is part of the matching contract and
// is kept deliberately, since adding boundaries would change diagnosis
// output.
package textscan

import (
	"strings"
	"unicode/utf8"

	"healthscreen/internal/catalog"
)

// ExtractedSymptom is one positive symptom mention found in the input text.
type ExtractedSymptom struct {
	Key        string  // canonical dictionary key
	Variant    string  // the phrase variant that matched
	Severity   string  // mild / moderate / severe
	Timing     string  // morning ... chronic, or unknown
	Location   string  // anatomical region, or unknown
	Confidence float64 // [0,1]
}

// negationWindow is the distance, in runes, within which a negation word in
// the same clause cancels a symptom match.
const negationWindow = 50

// Scanner runs phrase extraction against one catalog.
type Scanner struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Scanner {
	return &Scanner{cat: cat}
}

// Extract returns every non-negated symptom found in text, in dictionary
// order. For each canonical key the first non-negated matching variant
// wins; a negated variant does not end the search for that key. An empty
// or matchless input yields an empty slice.
func (s *Scanner) Extract(text string) []ExtractedSymptom {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	var out []ExtractedSymptom
	for _, key := range s.cat.SymptomKeys {
		for _, variant := range s.cat.SymptomDictionary[key] {
			v := strings.ToLower(variant)
			if !strings.Contains(text, v) {
				continue
			}
			if s.Negated(text, v) {
				continue
			}
			out = append(out, ExtractedSymptom{
				Key:        key,
				Variant:    variant,
				Severity:   s.extractSeverity(text, v),
				Timing:     s.extractTiming(text, v),
				Location:   s.extractLocation(text, v),
				Confidence: s.confidence(text, v),
			})
			break
		}
	}
	return out
}

// sentenceWith returns the first sentence (delimited by . ! ?) containing
// the phrase, or "" when no sentence does.
func sentenceWith(text, phrase string) string {
	for _, sentence := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.Contains(sentence, phrase) {
			return sentence
		}
	}
	return ""
}

// Adversative conjunctions bound the reach of a negation word: in
// "baş ağrısı yok ama yorgunluk var" the negation covers the headache
// clause only.
var clauseBreaks = []string{" ama ", " fakat ", " ancak ", " lakin "}

// clauseWith narrows a sentence to the clause containing the phrase.
func clauseWith(sentence, phrase string) string {
	parts := []string{sentence}
	for _, sep := range clauseBreaks {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}
	for _, p := range parts {
		if strings.Contains(p, phrase) {
			return p
		}
	}
	return sentence
}

// trailingNegations are the negation words that follow the phrase they
// negate ("baş ağrısı yok"). The rest only negate what comes after them:
// a trailing "hiç" belongs to the next word, as in "baş ağrısı hiç
// geçmiyor", which asserts the symptom rather than denying it.
var trailingNegations = map[string]bool{"yok": true, "değil": true}

// Negated reports whether the phrase's clause carries a negation word within
// the negation window. "Yok" and "değil" count on either side of the phrase;
// the other negation words only count when they precede it. The phrase is
// expected to be lowercased.
func (s *Scanner) Negated(text, phrase string) bool {
	sentence := sentenceWith(text, phrase)
	if sentence == "" {
		return false
	}
	clause := clauseWith(sentence, phrase)
	symPos := runeIndex(clause, phrase)
	for _, neg := range s.cat.NegationWords {
		negPos := runeIndex(clause, neg)
		if negPos < 0 {
			continue
		}
		if negPos > symPos && !trailingNegations[neg] {
			continue
		}
		dist := negPos - symPos
		if dist < 0 {
			dist = -dist
		}
		if dist > 0 && dist < negationWindow {
			return true
		}
	}
	return false
}

func (s *Scanner) extractSeverity(text, phrase string) string {
	sentence := sentenceWith(text, phrase)
	if sentence == "" {
		return "unknown"
	}
	for _, level := range []string{"mild", "moderate", "severe"} {
		for _, word := range s.cat.SeverityWords[level] {
			if strings.Contains(sentence, word) {
				return level
			}
		}
	}
	return "moderate"
}

func (s *Scanner) extractTiming(text, phrase string) string {
	sentence := sentenceWith(text, phrase)
	if sentence == "" {
		return "unknown"
	}
	for _, timing := range s.cat.TimingOrder {
		for _, word := range s.cat.TimingWords[timing] {
			if strings.Contains(sentence, word) {
				return timing
			}
		}
	}
	return "unknown"
}

func (s *Scanner) extractLocation(text, phrase string) string {
	sentence := sentenceWith(text, phrase)
	if sentence == "" {
		return "unknown"
	}
	for _, region := range s.cat.AnatomicalRegions {
		if strings.Contains(sentence, region) {
			return region
		}
	}
	return "unknown"
}

// shortTimingIndicators is the reduced indicator list the confidence score
// checks against, distinct from the full timing dictionary.
var shortTimingIndicators = []string{"sabah", "akşam", "gece", "sürekli", "ara sıra"}

// confidence starts at 0.7 and adds up to +0.1 each for severity, timing
// and anatomy indicators anywhere in the text, plus +0.05 per repeat of the
// phrase beyond the first (capped at +0.1). The total is capped at 1.0.
func (s *Scanner) confidence(text, phrase string) float64 {
	score := 0.7

	severityHit := false
	for _, words := range s.cat.SeverityWords {
		for _, w := range words {
			if strings.Contains(text, w) {
				severityHit = true
				break
			}
		}
		if severityHit {
			break
		}
	}
	if severityHit {
		score += 0.1
	}

	for _, w := range shortTimingIndicators {
		if strings.Contains(text, w) {
			score += 0.1
			break
		}
	}

	for _, region := range s.cat.AnatomicalRegions {
		if strings.Contains(text, region) {
			score += 0.1
			break
		}
	}

	if n := strings.Count(text, phrase); n > 1 {
		bonus := float64(n-1) * 0.05
		if bonus > 0.1 {
			bonus = 0.1
		}
		score += bonus
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// runeIndex returns the index of substr in s counted in runes, or -1.
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}
