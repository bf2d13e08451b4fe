package sentibayes

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// reviews is the three-document corpus used across the model tests.
var reviews = []LabeledText{
	{ID: "1", Text: "good movie", Sentiment: Positive},
	{ID: "2", Text: "not a good movie", Sentiment: Negative},
	{ID: "3", Text: "did not like", Sentiment: Negative},
}

func buildReviews(t testing.TB, opts ...Option) *Classifier {
	t.Helper()
	b, err := NewBuilder(append([]Option{WithTolerance(100)}, opts...)...)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	if err := b.AddTexts(reviews...); err != nil {
		t.Fatalf("AddTexts: %v", err)
	}
	model, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return model
}

func TestBuildPriorsAndProbabilities(t *testing.T) {
	model := buildReviews(t)

	if math.Abs(model.PositivePrior()-0.33) > 0.01 {
		t.Errorf("Expected positive prior 0.33, got %v", model.PositivePrior())
	}
	if math.Abs(model.NegativePrior()-0.67) > 0.01 {
		t.Errorf("Expected negative prior 0.67, got %v", model.NegativePrior())
	}

	tests := []struct {
		word      string
		sentiment Sentiment
		expected  float64
	}{
		{"good", Positive, 0.99},
		{"good", Negative, 0.5},
		{"not", Negative, 0.99},
		{"not", Positive, 0.01},
		{"a", Positive, 0.01},
		{"a", Negative, 0.5},
		{"like", Negative, 0.5},
	}
	for _, tt := range tests {
		got, ok := model.Probability(tt.word, tt.sentiment)
		if !ok {
			t.Errorf("P(%s|%s): missing", tt.word, tt.sentiment)
			continue
		}
		if math.Abs(got-tt.expected) > 0.01 {
			t.Errorf("P(%s|%s): expected %v, got %v", tt.word, tt.sentiment, tt.expected, got)
		}
	}

	if model.VocabularySize() != 6 {
		t.Errorf("Expected 6 words, got %d", model.VocabularySize())
	}
	if model.Len() != 12 {
		t.Errorf("Expected 12 entries, got %d", model.Len())
	}
}

func TestBuildOnce(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatal(err)
	}
	if b.IsBuilt() {
		t.Fatal("New builder reports built")
	}
	if err := b.AddText("good movie", Positive); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); err != nil {
		t.Fatalf("First build: %v", err)
	}
	if !b.IsBuilt() {
		t.Error("Expected builder to report built")
	}
	if _, err := b.Build(); !errors.Is(err, ErrAlreadyBuilt) {
		t.Errorf("Second build: expected ErrAlreadyBuilt, got %v", err)
	}
	if err := b.AddText("bad movie", Negative); !errors.Is(err, ErrAlreadyBuilt) {
		t.Errorf("AddText after build: expected ErrAlreadyBuilt, got %v", err)
	}
}

func TestBuildWithoutTexts(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrNoTrainingData) {
		t.Errorf("Expected ErrNoTrainingData, got %v", err)
	}
	if b.IsBuilt() {
		t.Error("Failed build must not mark the builder as built")
	}
}

func TestAddTextLastWriteWins(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddText("Good movie", Positive); err != nil {
		t.Fatal(err)
	}
	if err := b.AddText("good   movie!", Negative); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 1 {
		t.Fatalf("Expected 1 document, got %d", b.Len())
	}
	model, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if model.NegativePrior() != 1 {
		t.Errorf("Expected the later label to win, negative prior %v", model.NegativePrior())
	}
}

func TestAddTextInvalidSentiment(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddText("good movie", Sentiment(7)); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Expected ErrInvalidOption, got %v", err)
	}
}

func TestNewBuilderInvalidOptions(t *testing.T) {
	tests := []struct {
		desc string
		opts []Option
	}{
		{"Empty separator", []Option{WithSeparator("")}},
		{"Zero tolerance", []Option{WithTolerance(0)}},
		{"Tolerance of one", []Option{WithTolerance(1)}},
		{"Rare threshold above one", []Option{WithRareWordThreshold(1.5)}},
		{"Negative frequent threshold", []Option{WithFrequentWordThreshold(-0.1)}},
		{"PMI fraction above one", []Option{WithPMIExclusion(2)}},
		{"IDF fraction below zero", []Option{WithIDFExclusion(-1)}},
		{"Stemming without stemmer", []Option{func(o *Options) { o.EnableStemming = true }}},
		{"Lemmatization without lemmatizer", []Option{func(o *Options) { o.EnableLemmatization = true }}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if _, err := NewBuilder(tt.opts...); !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Expected ErrInvalidOption, got %v", err)
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	first := buildReviews(t, WithPMIExclusion(0.25))
	second := buildReviews(t, WithPMIExclusion(0.25))
	if !reflect.DeepEqual(first.table, second.table) {
		t.Error("Identical inputs produced different tables")
	}
	if !reflect.DeepEqual(first.vocabulary, second.vocabulary) {
		t.Error("Identical inputs produced different vocabularies")
	}
}
