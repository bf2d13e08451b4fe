package sentibayes

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// A Builder accumulates labeled texts and builds a Classifier exactly once.
//
// A Builder is owned by a single goroutine; it is not safe for concurrent
// use.
type Builder struct {
	opts       Options
	normalizer *normalizer

	index map[string]int // normalized text -> position in docs
	docs  []document
	built bool
}

// NewBuilder creates a Builder according to the user-specified options. An
// out-of-range option is reported immediately.
func NewBuilder(opts ...Option) (*Builder, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Builder{
		opts:       options,
		normalizer: newNormalizer(options),
		index:      make(map[string]int),
	}, nil
}

// AddText normalizes text and stores it under sentiment. A text whose
// normalized form was already added replaces the earlier one.
func (b *Builder) AddText(text string, sentiment Sentiment) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if !sentiment.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidOption, sentiment)
	}

	words := b.normalizer.Normalize(text)
	doc := document{words: words, sentiment: sentiment}
	key := strings.Join(words, "\x00")
	if i, found := b.index[key]; found {
		b.docs[i] = doc
		return nil
	}
	b.index[key] = len(b.docs)
	b.docs = append(b.docs, doc)
	return nil
}

// AddTexts adds every example in order.
func (b *Builder) AddTexts(texts ...LabeledText) error {
	for _, t := range texts {
		if err := b.AddText(t.Text, t.Sentiment); err != nil {
			return fmt.Errorf("add text %q: %w", t.ID, err)
		}
	}
	return nil
}

// Len returns the number of distinct documents accumulated so far.
func (b *Builder) Len() int {
	return len(b.docs)
}

// IsBuilt reports whether Build has succeeded.
func (b *Builder) IsBuilt() bool {
	return b.built
}

// Build trains the Classifier. It fails with ErrAlreadyBuilt on any call
// after the first successful one.
func (b *Builder) Build() (*Classifier, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if len(b.docs) == 0 {
		return nil, ErrNoTrainingData
	}
	startTime := time.Now()

	b.built = true
	docs := b.docs
	b.docs, b.index = nil, nil

	counts := countWords(docs)
	table := estimate(counts, b.opts)
	prior := float64(counts.positiveDocs) / float64(counts.totalDocs())
	model := newClassifier(b.normalizer, prior, table)

	b.opts.Logger.Info("model built",
		slog.Int("documents", counts.totalDocs()),
		slog.Int("vocabulary", model.VocabularySize()),
		slog.Int("entries", model.Len()),
		slog.Float64("positive_prior", model.PositivePrior()),
		slog.Duration("elapsed", time.Since(startTime)))
	return model, nil
}
