package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ESS_CONFIDENCE_LEVEL", "")
	t.Setenv("ESS_MISSING_INDICATOR", "")
	t.Setenv("ESS_MAX_CONCURRENT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analysis.ConfidenceLevel != 0.95 {
		t.Errorf("ConfidenceLevel = %v, want 0.95", cfg.Analysis.ConfidenceLevel)
	}
	if cfg.Analysis.HasMissingIndicator {
		t.Error("HasMissingIndicator should default to false")
	}
	if cfg.Batch.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent = %d, want 4", cfg.Batch.MaxConcurrent)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want INFO", cfg.Logging.Level)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ESS_CONFIDENCE_LEVEL", "0.99")
	t.Setenv("ESS_MISSING_INDICATOR", "-999")
	t.Setenv("ESS_MAX_CONCURRENT", "8")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analysis.ConfidenceLevel != 0.99 {
		t.Errorf("ConfidenceLevel = %v, want 0.99", cfg.Analysis.ConfidenceLevel)
	}
	if !cfg.Analysis.HasMissingIndicator || cfg.Analysis.MissingIndicator != -999 {
		t.Errorf("MissingIndicator = %v (%v), want -999 (true)",
			cfg.Analysis.MissingIndicator, cfg.Analysis.HasMissingIndicator)
	}
	if cfg.Batch.MaxConcurrent != 8 {
		t.Errorf("MaxConcurrent = %d, want 8", cfg.Batch.MaxConcurrent)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Logging.Level = %q, want DEBUG", cfg.Logging.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"confidence level out of range", "ESS_CONFIDENCE_LEVEL", "1.5"},
		{"confidence level not a number", "ESS_CONFIDENCE_LEVEL", "ninety-five"},
		{"missing indicator not a number", "ESS_MISSING_INDICATOR", "none"},
		{"max concurrent not an integer", "ESS_MAX_CONCURRENT", "two"},
		{"max concurrent below one", "ESS_MAX_CONCURRENT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ESS_CONFIDENCE_LEVEL", "")
			t.Setenv("ESS_MISSING_INDICATOR", "")
			t.Setenv("ESS_MAX_CONCURRENT", "")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Error("expected configuration error")
			}
		})
	}
}
