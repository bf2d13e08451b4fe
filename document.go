package sentibayes

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var tagRE = regexp.MustCompile(`<[^>]*>`)

// A normalizer turns raw text into the distinct words used as features. It
// holds no mutable state and is safe for concurrent use.
type normalizer struct {
	opts  Options
	valid map[rune]struct{}
}

func newNormalizer(opts Options) *normalizer {
	valid := make(map[rune]struct{}, len(opts.ValidChars))
	for _, r := range opts.ValidChars {
		valid[r] = struct{}{}
	}
	return &normalizer{opts: opts, valid: valid}
}

// Normalize returns the distinct words of text in order of first
// appearance.
func (n *normalizer) Normalize(text string) []string {
	// Casers and transformers carry state, so each call gets its own.
	clean := cases.Lower(language.Und).String(text)
	if n.opts.FoldDiacritics {
		clean = foldDiacritics(clean)
	}
	clean = tagRE.ReplaceAllLiteralString(clean, n.opts.Separator)
	clean = n.replaceInvalid(clean)

	words := distinct(n.opts.Tokenizer.Tokenize(clean, n.opts.Separator))
	if n.opts.EnableLemmatization {
		words = distinct(mapWords(words, n.opts.Lemmatizer.Lemmatize))
	}
	if n.opts.EnableStemming {
		words = distinct(mapWords(words, n.opts.Stemmer.Stem))
	}
	if n.opts.ExcludeStopWords && len(n.opts.StopWords) > 0 {
		words = n.opts.StopWords.filter(words)
	}
	return words
}

func (n *normalizer) replaceInvalid(text string) string {
	if len(n.valid) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if _, ok := n.valid[r]; ok {
			b.WriteRune(r)
		} else {
			b.WriteString(n.opts.Separator)
		}
	}
	return b.String()
}

func mapWords(words []string, fn func(string) string) []string {
	out := words[:0]
	for _, w := range words {
		if mapped := fn(w); mapped != "" {
			out = append(out, mapped)
		}
	}
	return out
}

// foldDiacritics strips combining marks, e.g. "café" -> "cafe".
func foldDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

// A document is a normalized training example.
type document struct {
	words     []string
	sentiment Sentiment
}
