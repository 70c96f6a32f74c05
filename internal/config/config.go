package config

import (
	"os"
	"strconv"

	"esscalc/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Batch    BatchConfig
	Logging  LoggingConfig
}

// AnalysisConfig holds estimation settings
type AnalysisConfig struct {
	// ConfidenceLevel is the two-sided confidence level for Wald intervals
	ConfidenceLevel float64
	// MissingIndicator, when set, is a numeric sentinel (e.g. -999) compared
	// by equality at ingestion. When unset, NaN and null are treated as
	// missing.
	MissingIndicator    float64
	HasMissingIndicator bool
}

// BatchConfig holds settings for concurrent batch profiling
type BatchConfig struct {
	MaxConcurrent int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	analysisConfig, err := loadAnalysisConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analysis configuration")
	}
	config.Analysis = *analysisConfig

	batchConfig, err := loadBatchConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load batch configuration")
	}
	config.Batch = *batchConfig

	config.Logging = LoggingConfig{Level: getEnv("LOG_LEVEL", "INFO")}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadAnalysisConfig() (*AnalysisConfig, error) {
	cfg := &AnalysisConfig{
		ConfidenceLevel: 0.95,
	}

	if raw := os.Getenv("ESS_CONFIDENCE_LEVEL"); raw != "" {
		level, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("ESS_CONFIDENCE_LEVEL must be a number")
		}
		cfg.ConfidenceLevel = level
	}

	if raw := os.Getenv("ESS_MISSING_INDICATOR"); raw != "" {
		indicator, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("ESS_MISSING_INDICATOR must be a number")
		}
		cfg.MissingIndicator = indicator
		cfg.HasMissingIndicator = true
	}

	return cfg, nil
}

func loadBatchConfig() (*BatchConfig, error) {
	cfg := &BatchConfig{MaxConcurrent: 4}

	if raw := os.Getenv("ESS_MAX_CONCURRENT"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("ESS_MAX_CONCURRENT must be an integer")
		}
		cfg.MaxConcurrent = n
	}

	return cfg, nil
}

func validateConfig(config *Config) error {
	if config.Analysis.ConfidenceLevel <= 0 || config.Analysis.ConfidenceLevel >= 1 {
		return errors.ConfigInvalid("confidence level must be in (0, 1)")
	}
	if config.Batch.MaxConcurrent < 1 {
		return errors.ConfigInvalid("max concurrent must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
