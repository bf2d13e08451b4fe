// Package config loads the runner configuration from a YAML file, .env
// files and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

// Config is the runner configuration.
type Config struct {
	CorpusPath         string  `yaml:"corpus_path"`
	StopWordsPath      string  `yaml:"stop_words_path"`
	StopWordsLanguage  string  `yaml:"stop_words_language"`
	LemmasPath         string  `yaml:"lemmas_path"`
	ValidationFraction float64 `yaml:"validation_fraction"`
	Seed               int64   `yaml:"seed"`
	LogLevel           string  `yaml:"log_level"`
	Baseline           bool    `yaml:"baseline"`
	BaselineThreshold  float64 `yaml:"baseline_threshold"`
	CrossValidation    int     `yaml:"cross_validation_folds"`

	Model      Model      `yaml:"model"`
	Validation Validation `yaml:"validation"`
}

// Model mirrors the classifier options.
type Model struct {
	ValidChars          string  `yaml:"valid_chars"`
	Separator           string  `yaml:"separator"`
	FoldDiacritics      bool    `yaml:"fold_diacritics"`
	ExcludeStopWords    bool    `yaml:"exclude_stop_words"`
	EnableStemming      bool    `yaml:"enable_stemming"`
	EnableLemmatization bool    `yaml:"enable_lemmatization"`
	ExcludeRareWords    bool    `yaml:"exclude_rare_words"`
	MinProbability      float64 `yaml:"min_probability"`
	ExcludeFreqWords    bool    `yaml:"exclude_frequent_words"`
	MaxProbability      float64 `yaml:"max_probability"`
	ExcludePMIWords     bool    `yaml:"exclude_pmi_words"`
	PercentPMIWords     float64 `yaml:"percent_excluding_pmi_words"`
	ExcludeIDFWords     bool    `yaml:"exclude_idf_words"`
	PercentIDFWords     float64 `yaml:"percent_excluding_idf_words"`
	EnableTolerance     bool    `yaml:"enable_tolerance"`
	Tolerance           int     `yaml:"tolerance"`
}

// Validation mirrors the validator options.
type Validation struct {
	TextOutputProbability float64 `yaml:"text_output_probability"`
	LoggingStep           int     `yaml:"logging_step"`
	SnippetSentences      int     `yaml:"snippet_sentences"`
}

// Default returns the settings of the reference training run.
func Default() Config {
	return Config{
		StopWordsLanguage:  "en",
		ValidationFraction: 0.25,
		LogLevel:           "info",
		BaselineThreshold:  0.05,
		Model: Model{
			ValidChars:       "abcdefghijklmnopqrstuvwxyz",
			Separator:        " ",
			ExcludeStopWords: true,
			EnableStemming:   true,
			ExcludeRareWords: true,
			MinProbability:   0.00001,
			ExcludeFreqWords: true,
			MaxProbability:   0.9,
			PercentPMIWords:  0.3,
			PercentIDFWords:  0.9,
			EnableTolerance:  true,
			Tolerance:        1000000,
		},
		Validation: Validation{
			TextOutputProbability: 0.01,
			LoggingStep:           100,
			SnippetSentences:      2,
		},
	}
}

// Load reads path (if it exists) over the defaults, then loads envFiles
// into the environment and applies SENTIBAYES_* overrides. The result is
// not validated; call Validate once every override is applied.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Warn("config file not found, using defaults", slog.String("path", path))
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	for _, f := range envFiles {
		if err := gotenv.Load(f); err != nil {
			slog.Debug("no .env file loaded", slog.String("path", f))
		}
	}

	return cfg, applyEnv(&cfg)
}

func applyEnv(cfg *Config) error {
	var errs []error
	envOverride(&cfg.CorpusPath, "SENTIBAYES_CORPUS_PATH")
	envOverride(&cfg.StopWordsPath, "SENTIBAYES_STOP_WORDS_PATH")
	envOverride(&cfg.StopWordsLanguage, "SENTIBAYES_STOP_WORDS_LANGUAGE")
	envOverride(&cfg.LemmasPath, "SENTIBAYES_LEMMAS_PATH")
	envOverride(&cfg.LogLevel, "SENTIBAYES_LOG_LEVEL")
	errs = append(errs,
		envOverrideFloat(&cfg.ValidationFraction, "SENTIBAYES_VALIDATION_FRACTION"),
		envOverrideInt64(&cfg.Seed, "SENTIBAYES_SEED"),
		envOverrideBool(&cfg.Baseline, "SENTIBAYES_BASELINE"),
		envOverrideInt(&cfg.CrossValidation, "SENTIBAYES_CROSS_VALIDATION_FOLDS"),
		envOverrideInt(&cfg.Model.Tolerance, "SENTIBAYES_TOLERANCE"),
		envOverrideFloat(&cfg.Validation.TextOutputProbability, "SENTIBAYES_TEXT_OUTPUT_PROBABILITY"),
		envOverrideInt(&cfg.Validation.LoggingStep, "SENTIBAYES_LOGGING_STEP"),
	)
	return errors.Join(errs...)
}

// Validate rejects settings the runner cannot use.
func (c Config) Validate() error {
	if c.CorpusPath == "" {
		return errors.New("corpus path is required")
	}
	if c.ValidationFraction <= 0 || c.ValidationFraction >= 1 {
		return fmt.Errorf("validation fraction must be between 0 and 1 exclusive, but was %v", c.ValidationFraction)
	}
	if c.CrossValidation == 1 || c.CrossValidation < 0 {
		return fmt.Errorf("cross validation folds must be 0 or at least 2, but was %d", c.CrossValidation)
	}
	return nil
}

func envOverride(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envOverrideInt64(dst *int64, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envOverrideFloat(dst *float64, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func envOverrideBool(dst *bool, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
