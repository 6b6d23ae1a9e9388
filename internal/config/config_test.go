package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Edge.Low != 30 || c.Edge.High != 200 {
		t.Errorf("Edge thresholds = (%d,%d), want (30,200)", c.Edge.Low, c.Edge.High)
	}
	if c.Locate.Epsilon != 10 {
		t.Errorf("Epsilon = %v, want 10", c.Locate.Epsilon)
	}
	if c.Locate.TopK != 10 {
		t.Errorf("TopK = %d, want 10", c.Locate.TopK)
	}
	if c.OCR.Language != "eng" {
		t.Errorf("Language = %q, want eng", c.OCR.Language)
	}
	if c.Render.Color != "#00FF00" {
		t.Errorf("Color = %q, want #00FF00", c.Render.Color)
	}
	if c.Workers != 4 {
		t.Errorf("Workers = %d, want 4", c.Workers)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
edge:
  low: 50
locate:
  epsilon: 5.5
ocr:
  language: deu
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Edge.Low != 50 {
		t.Errorf("Edge.Low = %d, want 50", c.Edge.Low)
	}
	// Fields absent from the file keep their defaults.
	if c.Edge.High != 200 {
		t.Errorf("Edge.High = %d, want default 200", c.Edge.High)
	}
	if c.Locate.Epsilon != 5.5 {
		t.Errorf("Epsilon = %v, want 5.5", c.Locate.Epsilon)
	}
	if c.Locate.TopK != 10 {
		t.Errorf("TopK = %d, want default 10", c.Locate.TopK)
	}
	if c.OCR.Language != "deu" {
		t.Errorf("Language = %q, want deu", c.OCR.Language)
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := writeConfig(t, `
locate:
  epsilon: -3
  top_k: -1
workers: 0
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Locate.Epsilon != 10 {
		t.Errorf("Negative epsilon not normalized: %v", c.Locate.Epsilon)
	}
	if c.Locate.TopK != 10 {
		t.Errorf("Negative top_k not normalized: %d", c.Locate.TopK)
	}
	if c.Workers != 4 {
		t.Errorf("Zero workers not normalized: %d", c.Workers)
	}
}

func TestLoad_ZeroEpsilonKept(t *testing.T) {
	path := writeConfig(t, `
locate:
  epsilon: 0
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Zero means exact approximation and must survive normalization.
	if c.Locate.Epsilon != 0 {
		t.Errorf("Explicit epsilon 0 was normalized to %v", c.Locate.Epsilon)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "edge: [not a mapping")

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error, got nil")
	}
}

func TestLoad_OCRDisabled(t *testing.T) {
	path := writeConfig(t, `
ocr:
  disabled: true
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !c.OCR.Disabled {
		t.Error("Expected OCR.Disabled = true")
	}
	// Language still defaults even when disabled.
	if c.OCR.Language != "eng" {
		t.Errorf("Language = %q, want eng", c.OCR.Language)
	}
}
