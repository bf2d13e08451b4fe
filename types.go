package sentibayes

import (
	"fmt"
	"strings"
)

// A Sentiment is the label assigned to a text. The set is closed: there is
// no neutral class.
type Sentiment int

const (
	Negative Sentiment = iota
	Positive
)

// sentiments lists every label in table order.
var sentiments = [...]Sentiment{Positive, Negative}

// String returns the lower-case name of the label.
func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return fmt.Sprintf("Sentiment(%d)", int(s))
	}
}

// Valid reports whether s is one of the two defined labels.
func (s Sentiment) Valid() bool {
	return s == Positive || s == Negative
}

// ParseSentiment converts a corpus label into a Sentiment. It accepts the
// label names and the 1/0 encoding used by most review corpora.
func ParseSentiment(label string) (Sentiment, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive", "pos", "1", "+":
		return Positive, nil
	case "negative", "neg", "0", "-":
		return Negative, nil
	}
	return Negative, fmt.Errorf("unknown sentiment label %q", label)
}

// A LabeledText is one training or validation example.
type LabeledText struct {
	ID        string    // Corpus identifier.
	Text      string    // The raw text.
	Sentiment Sentiment // The true label.
}

// A WordSentiment indexes the count and probability tables.
type WordSentiment struct {
	Word      string
	Sentiment Sentiment
}

// A Predictor assigns a Sentiment to a piece of text.
type Predictor interface {
	Predict(text string) Sentiment
}

// Language represents supported stop-word languages
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)
