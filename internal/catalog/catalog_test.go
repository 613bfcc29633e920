package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDiseaseTable(t *testing.T) {
	c := Default()

	wantOrder := []string{"diabetes", "hipertansiyon", "kalp_hastaligi", "depresyon", "migren", "anksiyete"}
	if len(c.Diseases) != len(wantOrder) {
		t.Fatalf("expected %d diseases, got %d", len(wantOrder), len(c.Diseases))
	}
	for i, key := range wantOrder {
		if c.Diseases[i].Key != key {
			t.Fatalf("disease[%d] = %q, want %q", i, c.Diseases[i].Key, key)
		}
	}

	d := c.Disease("kalp_hastaligi")
	if d == nil {
		t.Fatal("Disease(kalp_hastaligi) returned nil")
	}
	if d.ICD10 != "I25" {
		t.Fatalf("kalp_hastaligi ICD10 = %q, want I25", d.ICD10)
	}
	if d.Severity != SeverityHigh {
		t.Fatalf("kalp_hastaligi severity = %q, want %q", d.Severity, SeverityHigh)
	}

	if c.Disease("nonexistent") != nil {
		t.Fatal("Disease(nonexistent) should return nil")
	}
}

func TestDefaultSymptomDictionary(t *testing.T) {
	c := Default()

	if len(c.SymptomKeys) != len(c.SymptomDictionary) {
		t.Fatalf("key order list has %d entries, dictionary has %d", len(c.SymptomKeys), len(c.SymptomDictionary))
	}
	if c.SymptomKeys[0] != "ateş" {
		t.Fatalf("first dictionary key = %q, want ateş", c.SymptomKeys[0])
	}
	variants, ok := c.SymptomDictionary["baş_ağrısı"]
	if !ok {
		t.Fatal("dictionary missing baş_ağrısı")
	}
	if variants[0] != "baş ağrısı" {
		t.Fatalf("baş_ağrısı primary variant = %q", variants[0])
	}
	if len(c.NegationWords) == 0 || len(c.AnatomicalRegions) == 0 {
		t.Fatal("negation or anatomy word lists are empty")
	}
	for _, timing := range c.TimingOrder {
		if len(c.TimingWords[timing]) == 0 {
			t.Fatalf("timing category %q has no words", timing)
		}
	}
}

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	return path
}

func TestOverlayAppendsAfterBuiltins(t *testing.T) {
	path := writeOverlay(t, `
diseases:
  - key: astim
    symptoms: ["nefes darlığı", "hırıltı", "öksürük"]
    severity: orta
    icd10: J45
symptoms:
  - key: gece_terlemesi
    variants: ["gece terlemesi", "gece terliyorum"]
`)
	o, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}

	c := Default()
	builtins := len(c.Diseases)
	c.Apply(o)

	if len(c.Diseases) != builtins+1 {
		t.Fatalf("expected %d diseases after apply, got %d", builtins+1, len(c.Diseases))
	}
	if c.Diseases[builtins].Key != "astim" {
		t.Fatalf("new disease must append after built-ins, last key = %q", c.Diseases[builtins].Key)
	}
	if got := c.Disease("astim").ICD10; got != "J45" {
		t.Fatalf("astim ICD10 = %q, want J45", got)
	}
	if _, ok := c.SymptomDictionary["gece_terlemesi"]; !ok {
		t.Fatal("overlay symptom key not added to dictionary")
	}
	if last := c.SymptomKeys[len(c.SymptomKeys)-1]; last != "gece_terlemesi" {
		t.Fatalf("overlay symptom key not appended to key order, last = %q", last)
	}
}

func TestOverlayReplacesExistingDiseaseInPlace(t *testing.T) {
	path := writeOverlay(t, `
diseases:
  - key: migren
    symptoms: ["şiddetli baş ağrısı", "bulantı", "aura"]
    severity: orta
    icd10: G43.1
`)
	o, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}

	c := Default()
	builtins := len(c.Diseases)
	c.Apply(o)

	if len(c.Diseases) != builtins {
		t.Fatalf("replacing an existing key must not grow the table, got %d", len(c.Diseases))
	}
	// Position 4 is migren's built-in slot; tie-break order depends on it.
	if c.Diseases[4].Key != "migren" {
		t.Fatalf("migren moved from its slot, position 4 holds %q", c.Diseases[4].Key)
	}
	if got := c.Diseases[4].ICD10; got != "G43.1" {
		t.Fatalf("migren ICD10 = %q, want G43.1", got)
	}
	if got := len(c.Diseases[4].Symptoms); got != 3 {
		t.Fatalf("migren symptom list not replaced, len=%d", got)
	}
}

func TestOverlayMergesSymptomVariants(t *testing.T) {
	path := writeOverlay(t, `
symptoms:
  - key: yorgunluk
    variants: ["tükenmişlik", "Yorgunluk"]
`)
	o, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay failed: %v", err)
	}

	c := Default()
	before := len(c.SymptomDictionary["yorgunluk"])
	c.Apply(o)
	after := c.SymptomDictionary["yorgunluk"]

	// "Yorgunluk" is a case-variant duplicate and must be ignored.
	if len(after) != before+1 {
		t.Fatalf("expected one new variant, before=%d after=%d", before, len(after))
	}
	if after[len(after)-1] != "tükenmişlik" {
		t.Fatalf("new variant must append, last = %q", after[len(after)-1])
	}
}

func TestLoadOverlayRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing key", "diseases:\n  - symptoms: [\"öksürük\"]\n"},
		{"no symptoms", "diseases:\n  - key: astim\n"},
		{"bad severity", "diseases:\n  - key: astim\n    symptoms: [\"öksürük\"]\n    severity: extreme\n"},
		{"broken yaml", "diseases: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeOverlay(t, tc.content)
			if _, err := LoadOverlay(path); err == nil {
				t.Fatalf("LoadOverlay accepted invalid overlay %q", tc.name)
			}
		})
	}

	if _, err := LoadOverlay(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadOverlay accepted a missing file")
	}
}
