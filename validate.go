package sentibayes

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// ValidationOptions controls a validation run.
type ValidationOptions struct {
	TextOutputProbability float64 // Chance of logging each misclassified text.
	LoggingStep           int     // Progress is logged every LoggingStep examples; 0 disables it.
	SnippetSentences      int     // Sentences quoted in a diagnostic; 0 quotes the whole text.
	Rand                  *rand.Rand
	Logger                *slog.Logger
}

// A ValidationOpt represents a setting that changes a validation run.
type ValidationOpt func(opts *ValidationOptions)

// DefaultValidationOptions returns the settings used when no option is
// given.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		TextOutputProbability: 0.75,
		LoggingStep:           10,
		SnippetSentences:      2,
	}
}

// WithTextOutputProbability sets the chance of logging a misclassification.
func WithTextOutputProbability(p float64) ValidationOpt {
	return func(opts *ValidationOptions) {
		opts.TextOutputProbability = p
	}
}

// WithLoggingStep sets the progress logging interval.
func WithLoggingStep(step int) ValidationOpt {
	return func(opts *ValidationOptions) {
		opts.LoggingStep = step
	}
}

// WithSnippetSentences sets how many sentences a diagnostic quotes.
func WithSnippetSentences(n int) ValidationOpt {
	return func(opts *ValidationOptions) {
		opts.SnippetSentences = n
	}
}

// WithRand sets the source for misclassification sampling.
func WithRand(rng *rand.Rand) ValidationOpt {
	return func(opts *ValidationOptions) {
		opts.Rand = rng
	}
}

// WithValidationLogger sets the logger for progress and diagnostics.
func WithValidationLogger(logger *slog.Logger) ValidationOpt {
	return func(opts *ValidationOptions) {
		opts.Logger = logger
	}
}

// A Validator scores a Predictor against labeled examples.
type Validator struct {
	opts      ValidationOptions
	segmenter *sentences.DefaultSentenceTokenizer
}

// NewValidator creates a Validator. Out-of-range options are rejected here
// rather than at use.
func NewValidator(opts ...ValidationOpt) (*Validator, error) {
	base := DefaultValidationOptions()
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.TextOutputProbability < 0 || base.TextOutputProbability > 1 {
		return nil, fmt.Errorf("%w: text output probability must be between 0 and 1, but was %v",
			ErrInvalidOption, base.TextOutputProbability)
	}
	if base.LoggingStep < 0 {
		return nil, fmt.Errorf("%w: logging step must not be negative, but was %d", ErrInvalidOption, base.LoggingStep)
	}
	if base.SnippetSentences < 0 {
		return nil, fmt.Errorf("%w: snippet sentences must not be negative, but was %d", ErrInvalidOption, base.SnippetSentences)
	}
	if base.Rand == nil {
		base.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if base.Logger == nil {
		base.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	segmenter, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("sentence tokenizer: %w", err)
	}
	return &Validator{opts: base, segmenter: segmenter}, nil
}

// Validate predicts every example once, in order, and tallies the outcomes.
func (v *Validator) Validate(p Predictor, examples []LabeledText) QualityMetrics {
	var (
		cm      ConfusionMatrix
		correct int
	)
	for step, example := range examples {
		if v.opts.LoggingStep > 0 && step%v.opts.LoggingStep == 0 {
			v.opts.Logger.Info("validating", slog.Int("step", step), slog.Int("total", len(examples)))
		}

		predicted := p.Predict(example.Text)
		cm.add(predicted, example.Sentiment)
		if predicted == example.Sentiment {
			correct++
			continue
		}
		if v.opts.Rand.Float64() < v.opts.TextOutputProbability {
			v.opts.Logger.Warn("text was not recognized correctly",
				slog.String("id", example.ID),
				slog.String("expected", example.Sentiment.String()),
				slog.String("actual", predicted.String()),
				slog.String("text", v.snippet(example.Text)))
		}
	}
	return QualityMetrics{correct: correct, total: len(examples), matrix: cm}
}

// snippet returns the leading sentences of text.
func (v *Validator) snippet(text string) string {
	if v.opts.SnippetSentences == 0 {
		return text
	}
	sents := v.segmenter.Tokenize(text)
	if len(sents) <= v.opts.SnippetSentences {
		return strings.TrimSpace(text)
	}
	parts := make([]string, 0, v.opts.SnippetSentences)
	for _, s := range sents[:v.opts.SnippetSentences] {
		parts = append(parts, strings.TrimSpace(s.Text))
	}
	return strings.Join(parts, " ") + " ..."
}
