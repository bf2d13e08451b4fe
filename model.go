package sentibayes

import "sort"

// A Classifier is a trained Naive Bayes sentiment model. It is immutable and
// safe for concurrent use.
type Classifier struct {
	normalizer    *normalizer
	positivePrior float64
	negativePrior float64
	table         probabilityTable
	vocabulary    []string // words with at least one entry, in lexical order
}

func newClassifier(n *normalizer, positivePrior float64, table probabilityTable) *Classifier {
	seen := make(map[string]struct{}, len(table)/2)
	for key := range table {
		seen[key.Word] = struct{}{}
	}
	vocabulary := make([]string, 0, len(seen))
	for w := range seen {
		vocabulary = append(vocabulary, w)
	}
	sort.Strings(vocabulary)

	return &Classifier{
		normalizer:    n,
		positivePrior: positivePrior,
		negativePrior: 1 - positivePrior,
		table:         table,
		vocabulary:    vocabulary,
	}
}

// Predict returns the more probable sentiment of text. Words outside the
// vocabulary are ignored; ties favor Positive.
func (c *Classifier) Predict(text string) Sentiment {
	words := c.normalizer.Normalize(text)
	present := make(map[string]struct{}, len(words))

	positive, negative := c.positivePrior, c.negativePrior
	for _, w := range words {
		present[w] = struct{}{}
		if p, ok := c.table[WordSentiment{w, Positive}]; ok {
			if positive *= p; positive <= epsilon {
				return Negative
			}
		}
		if p, ok := c.table[WordSentiment{w, Negative}]; ok {
			if negative *= p; negative <= epsilon {
				return Positive
			}
		}
	}

	for _, w := range c.vocabulary {
		if _, found := present[w]; found {
			continue
		}
		if p, ok := c.table[WordSentiment{w, Positive}]; ok {
			if positive *= 1 - p; positive <= epsilon {
				return Negative
			}
		}
		if p, ok := c.table[WordSentiment{w, Negative}]; ok {
			if negative *= 1 - p; negative <= epsilon {
				return Positive
			}
		}
	}

	if positive >= negative {
		return Positive
	}
	return Negative
}

// PositivePrior returns P(Positive).
func (c *Classifier) PositivePrior() float64 { return c.positivePrior }

// NegativePrior returns P(Negative).
func (c *Classifier) NegativePrior() float64 { return c.negativePrior }

// Probability returns P(word | s) and whether the table holds an entry.
func (c *Classifier) Probability(word string, s Sentiment) (float64, bool) {
	p, ok := c.table[WordSentiment{word, s}]
	return p, ok
}

// VocabularySize returns the number of distinct words in the table.
func (c *Classifier) VocabularySize() int { return len(c.vocabulary) }

// Len returns the number of (word, sentiment) entries in the table.
func (c *Classifier) Len() int { return len(c.table) }
