package sentibayes

import "strings"

// A Tokenizer splits normalized text into words. Empty words must not be
// returned; de-duplication is done by the caller.
type Tokenizer interface {
	Tokenize(text, sep string) []string
}

// TokenizerFunc adapts an ordinary function to the Tokenizer interface.
type TokenizerFunc func(text, sep string) []string

// Tokenize calls f(text, sep).
func (f TokenizerFunc) Tokenize(text, sep string) []string { return f(text, sep) }

// SeparatorTokenizer splits on every occurrence of the separator.
type SeparatorTokenizer struct{}

// Tokenize splits text on sep, discarding empty spans.
func (SeparatorTokenizer) Tokenize(text, sep string) []string {
	parts := strings.Split(text, sep)
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// distinct returns a new slice without repeated words, keeping first
// occurrences. words is not modified.
func distinct(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, found := seen[w]; found {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
