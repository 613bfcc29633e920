package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuiltinLanguages(t *testing.T) {
	for _, lang := range Supported {
		s, err := Load("", lang)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", lang, err)
		}
		if s.Lang() != lang {
			t.Fatalf("Lang() = %q, want %q", s.Lang(), lang)
		}
		if got := s.T("total_risk"); got == "total_risk" {
			t.Fatalf("%s table missing total_risk", lang)
		}
	}
}

func TestLoadRejectsUnsupportedLanguage(t *testing.T) {
	if _, err := Load("", "fr"); err == nil {
		t.Fatal("Load(fr) should fail")
	}
}

func TestTranslationsDiffer(t *testing.T) {
	tr, err := Load("", "tr")
	if err != nil {
		t.Fatalf("Load(tr) failed: %v", err)
	}
	en, err := Load("", "en")
	if err != nil {
		t.Fatalf("Load(en) failed: %v", err)
	}
	if tr.T("report_title") == en.T("report_title") {
		t.Fatal("tr and en must resolve report_title differently")
	}
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	s, err := Load("", "en")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := s.T("no_such_key"); got != "no_such_key" {
		t.Fatalf("T(no_such_key) = %q, want the key itself", got)
	}
}

func TestFileOverrides(t *testing.T) {
	dir := t.TempDir()
	override := `{"total_risk": "Overall Risk", "custom_key": "Custom"}`
	if err := os.WriteFile(filepath.Join(dir, "en.json"), []byte(override), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	s, err := Load(dir, "en")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := s.T("total_risk"); got != "Overall Risk" {
		t.Fatalf("override not applied, T(total_risk) = %q", got)
	}
	if got := s.T("custom_key"); got != "Custom" {
		t.Fatalf("new key not applied, got %q", got)
	}
	// Keys the override leaves untouched keep their built-in values.
	if got := s.T("age"); got != "Age" {
		t.Fatalf("untouched key = %q, want Age", got)
	}
}

func TestBrokenOverrideFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tr.json"), []byte("{broken"), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := Load(dir, "tr"); err == nil {
		t.Fatal("broken override file must fail Load")
	}
}

func TestMissingOverrideFileIsFine(t *testing.T) {
	if _, err := Load(t.TempDir(), "de"); err != nil {
		t.Fatalf("missing override file must not fail Load: %v", err)
	}
}
