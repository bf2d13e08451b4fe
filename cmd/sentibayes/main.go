package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/kljensen/snowball/english"

	"github.com/tsawler/sentibayes"
	"github.com/tsawler/sentibayes/internal/baseline"
	"github.com/tsawler/sentibayes/internal/config"
	"github.com/tsawler/sentibayes/internal/corpus"
	"github.com/tsawler/sentibayes/internal/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	cfg, err := config.Load(*configPath, ".env", ".env."+env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if flag.NArg() > 0 {
		cfg.CorpusPath = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger := logging.InitLogger(cfg.LogLevel)
	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	logger.Info("reading data", slog.String("path", cfg.CorpusPath))
	texts, err := corpus.ReadFile(cfg.CorpusPath)
	if err != nil {
		return err
	}

	opts, err := modelOptions(cfg, logger)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.CrossValidation > 0 {
		result, err := sentibayes.CrossValidate(texts, cfg.CrossValidation, opts...)
		if err != nil {
			return err
		}
		logger.Info("cross validation",
			slog.Int("folds", cfg.CrossValidation),
			slog.Float64("mean_accuracy", result.MeanAccuracy),
			slog.Float64("std_accuracy", result.StdAccuracy),
			slog.Float64("min_accuracy", result.MinAccuracy),
			slog.Float64("max_accuracy", result.MaxAccuracy))
	}

	logger.Info("splitting the data into training and validation", slog.Int("texts", len(texts)))
	validationData, trainData, err := sentibayes.Split(texts, cfg.ValidationFraction, rng)
	if err != nil {
		return err
	}

	logger.Info("training model", slog.Int("texts", len(trainData)))
	builder, err := sentibayes.NewBuilder(opts...)
	if err != nil {
		return err
	}
	if err := builder.AddTexts(trainData...); err != nil {
		return err
	}
	model, err := builder.Build()
	if err != nil {
		return err
	}
	logger.Info("dictionary size", slog.Int("words", model.VocabularySize()), slog.Int("entries", model.Len()))

	validator, err := sentibayes.NewValidator(
		sentibayes.WithTextOutputProbability(cfg.Validation.TextOutputProbability),
		sentibayes.WithLoggingStep(cfg.Validation.LoggingStep),
		sentibayes.WithSnippetSentences(cfg.Validation.SnippetSentences),
		sentibayes.WithRand(rng),
		sentibayes.WithValidationLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Info("validation", slog.Int("texts", len(validationData)))
	metrics := validator.Validate(model, validationData)
	logger.Info("quality metrics\n" + metrics.String())

	if cfg.Baseline {
		vader := baseline.NewVader(cfg.BaselineThreshold)
		quiet, err := sentibayes.NewValidator(sentibayes.WithTextOutputProbability(0), sentibayes.WithLoggingStep(0))
		if err != nil {
			return err
		}
		logger.Info("VADER baseline quality metrics\n" + quiet.Validate(vader, validationData).String())
	}
	return nil
}

func modelOptions(cfg config.Config, logger *slog.Logger) ([]sentibayes.Option, error) {
	m := cfg.Model
	opts := []sentibayes.Option{
		sentibayes.WithValidChars(m.ValidChars),
		sentibayes.WithSeparator(m.Separator),
		sentibayes.WithDiacriticFolding(m.FoldDiacritics),
		sentibayes.WithLogger(logger),
	}

	if m.ExcludeStopWords {
		var (
			stopWords sentibayes.StopWords
			err       error
		)
		if cfg.StopWordsPath != "" {
			stopWords, err = corpus.LoadStopWords(cfg.StopWordsPath)
		} else {
			stopWords, err = sentibayes.StopWordsFor(sentibayes.Language(cfg.StopWordsLanguage))
		}
		if err != nil {
			return nil, fmt.Errorf("stop words: %w", err)
		}
		opts = append(opts, sentibayes.WithStopWords(stopWords))
	}
	if m.EnableLemmatization {
		if cfg.LemmasPath == "" {
			return nil, errors.New("lemmatization enabled without lemmas_path")
		}
		dict, err := corpus.LoadDictionary(cfg.LemmasPath)
		if err != nil {
			return nil, fmt.Errorf("lemmas: %w", err)
		}
		opts = append(opts, sentibayes.UsingLemmatizer(dict))
	}
	if m.EnableStemming {
		opts = append(opts, sentibayes.UsingStemmer(sentibayes.StemmerFunc(func(word string) string {
			return english.Stem(word, false)
		})))
	}
	if m.ExcludeRareWords {
		opts = append(opts, sentibayes.WithRareWordThreshold(m.MinProbability))
	}
	if m.ExcludeFreqWords {
		opts = append(opts, sentibayes.WithFrequentWordThreshold(m.MaxProbability))
	}
	if m.ExcludePMIWords {
		opts = append(opts, sentibayes.WithPMIExclusion(m.PercentPMIWords))
	}
	if m.ExcludeIDFWords {
		opts = append(opts, sentibayes.WithIDFExclusion(m.PercentIDFWords))
	}
	if m.EnableTolerance {
		opts = append(opts, sentibayes.WithTolerance(m.Tolerance))
	} else {
		opts = append(opts, sentibayes.WithoutTolerance())
	}
	return opts, nil
}
