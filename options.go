package sentibayes

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var (
	// ErrInvalidOption reports an out-of-range configuration value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrAlreadyBuilt is returned when a Builder is used after Build.
	ErrAlreadyBuilt = errors.New("already built")
	// ErrNoTrainingData is returned by Build when no text was added.
	ErrNoTrainingData = errors.New("training data is empty")
)

// A Stemmer reduces a word to its stem. Implementations must be pure.
type Stemmer interface {
	Stem(word string) string
}

// StemmerFunc adapts an ordinary function to the Stemmer interface.
type StemmerFunc func(word string) string

// Stem calls f(word).
func (f StemmerFunc) Stem(word string) string { return f(word) }

// A Lemmatizer maps a word form to its lemma. Implementations must be pure.
type Lemmatizer interface {
	Lemmatize(word string) string
}

// LemmatizerFunc adapts an ordinary function to the Lemmatizer interface.
type LemmatizerFunc func(word string) string

// Lemmatize calls f(word).
func (f LemmatizerFunc) Lemmatize(word string) string { return f(word) }

// Options controls normalization and feature selection. The same Options
// are used for training and prediction.
type Options struct {
	ValidChars     string    // Characters kept by the character filter; empty keeps every character.
	Separator      string    // Placeholder for stripped tags and invalid characters.
	Tokenizer      Tokenizer // Splits normalized text on Separator.
	FoldDiacritics bool      // If true, strip combining marks after lower-casing.

	StopWords        StopWords
	ExcludeStopWords bool

	Lemmatizer          Lemmatizer
	EnableLemmatization bool
	Stemmer             Stemmer
	EnableStemming      bool

	ExcludeRareWords bool
	MinProbability   float64 // Entries with a raw probability below this are dropped.

	ExcludeFrequentWords bool
	MaxProbability       float64 // Entries with a raw probability above this are dropped.

	ExcludePMIWords          bool
	PercentExcludingPMIWords float64 // Fraction of entries with the lowest PMI to drop.

	ExcludeIDFWords          bool
	PercentExcludingIDFWords float64 // Fraction of words with the highest IDF to drop.

	EnableTolerance bool
	Tolerance       int // A zero probability becomes 1/Tolerance, a certain one 1-1/Tolerance.

	Logger *slog.Logger
}

// An Option represents a setting that changes the training process.
//
// For example, it might enable stemming:
//
//	b, err := sentibayes.NewBuilder(sentibayes.UsingStemmer(s))
type Option func(opts *Options)

// DefaultOptions returns the configuration used when no Option is given:
// lower-case ASCII letters, a single-space separator and tolerance
// smoothing of one in a million.
func DefaultOptions() Options {
	return Options{
		ValidChars:      "abcdefghijklmnopqrstuvwxyz",
		Separator:       " ",
		Tokenizer:       SeparatorTokenizer{},
		EnableTolerance: true,
		Tolerance:       1000000,
		Logger:          discardLogger,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithValidChars sets the character whitelist.
func WithValidChars(chars string) Option {
	return func(opts *Options) {
		opts.ValidChars = chars
	}
}

// WithSeparator sets the token separator.
func WithSeparator(sep string) Option {
	return func(opts *Options) {
		opts.Separator = sep
	}
}

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(t Tokenizer) Option {
	return func(opts *Options) {
		opts.Tokenizer = t
	}
}

// WithDiacriticFolding can enable or disable (the default) accent folding.
func WithDiacriticFolding(include bool) Option {
	return func(opts *Options) {
		opts.FoldDiacritics = include
	}
}

// WithStopWords excludes the given stop words from every document.
func WithStopWords(words StopWords) Option {
	return func(opts *Options) {
		opts.StopWords = words
		opts.ExcludeStopWords = true
	}
}

// UsingStemmer enables stemming with s.
func UsingStemmer(s Stemmer) Option {
	return func(opts *Options) {
		opts.Stemmer = s
		opts.EnableStemming = true
	}
}

// UsingLemmatizer enables lemmatization with l.
func UsingLemmatizer(l Lemmatizer) Option {
	return func(opts *Options) {
		opts.Lemmatizer = l
		opts.EnableLemmatization = true
	}
}

// WithRareWordThreshold drops entries whose raw probability is below threshold.
func WithRareWordThreshold(threshold float64) Option {
	return func(opts *Options) {
		opts.ExcludeRareWords = true
		opts.MinProbability = threshold
	}
}

// WithFrequentWordThreshold drops entries whose raw probability is above threshold.
func WithFrequentWordThreshold(threshold float64) Option {
	return func(opts *Options) {
		opts.ExcludeFrequentWords = true
		opts.MaxProbability = threshold
	}
}

// WithPMIExclusion drops the given fraction of least informative entries.
func WithPMIExclusion(percent float64) Option {
	return func(opts *Options) {
		opts.ExcludePMIWords = true
		opts.PercentExcludingPMIWords = percent
	}
}

// WithIDFExclusion drops the given fraction of rarest words.
func WithIDFExclusion(percent float64) Option {
	return func(opts *Options) {
		opts.ExcludeIDFWords = true
		opts.PercentExcludingIDFWords = percent
	}
}

// WithTolerance enables tolerance smoothing of the given strength.
func WithTolerance(tolerance int) Option {
	return func(opts *Options) {
		opts.EnableTolerance = true
		opts.Tolerance = tolerance
	}
}

// WithoutTolerance disables smoothing, leaving 0 and 1 probabilities in the
// table.
func WithoutTolerance() Option {
	return func(opts *Options) {
		opts.EnableTolerance = false
	}
}

// WithLogger sets the logger used while building.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func newOptions(opts ...Option) (Options, error) {
	base := DefaultOptions()
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Logger == nil {
		base.Logger = discardLogger
	}
	if base.Tokenizer == nil {
		base.Tokenizer = SeparatorTokenizer{}
	}
	return base, base.validate()
}

func (o Options) validate() error {
	if o.Separator == "" {
		return fmt.Errorf("%w: separator must not be empty", ErrInvalidOption)
	}
	if o.EnableStemming && o.Stemmer == nil {
		return fmt.Errorf("%w: stemming enabled without a stemmer", ErrInvalidOption)
	}
	if o.EnableLemmatization && o.Lemmatizer == nil {
		return fmt.Errorf("%w: lemmatization enabled without a lemmatizer", ErrInvalidOption)
	}
	if o.EnableTolerance && o.Tolerance < 2 {
		return fmt.Errorf("%w: tolerance must be at least 2, but was %d", ErrInvalidOption, o.Tolerance)
	}
	fractions := []struct {
		name    string
		enabled bool
		value   float64
	}{
		{"min probability", o.ExcludeRareWords, o.MinProbability},
		{"max probability", o.ExcludeFrequentWords, o.MaxProbability},
		{"PMI exclusion percent", o.ExcludePMIWords, o.PercentExcludingPMIWords},
		{"IDF exclusion percent", o.ExcludeIDFWords, o.PercentExcludingIDFWords},
	}
	for _, f := range fractions {
		if f.enabled && (f.value < 0 || f.value > 1) {
			return fmt.Errorf("%w: %s must be between 0 and 1, but was %v", ErrInvalidOption, f.name, f.value)
		}
	}
	return nil
}
