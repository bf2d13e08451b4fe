package sentibayes

import (
	"fmt"
	"strings"

	"github.com/bbalet/stopwords"
)

// StopWords is a set of words excluded from every document.
type StopWords map[string]struct{}

// NewStopWords builds a set from the given words, lower-cased and trimmed.
// Blank entries are ignored.
func NewStopWords(words ...string) StopWords {
	set := make(StopWords, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, found := s[word]
	return found
}

func (s StopWords) filter(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if !s.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}

// StopWordsFor returns the stop words the stopwords library knows for lang.
//
// The library doesn't export its lists, so each candidate is probed: a word
// the library strips from a one-word string is a stop word.
func StopWordsFor(lang Language) (StopWords, error) {
	if !IsSupported(lang) {
		return nil, FormatLanguageError(lang)
	}
	code := string(lang)
	set := make(StopWords)
	for _, word := range stopWordCandidates(lang) {
		cleaned := strings.TrimSpace(stopwords.CleanString(word, code, false))
		if cleaned != word {
			set[word] = struct{}{}
		}
	}
	return set, nil
}

func stopWordCandidates(lang Language) []string {
	words := []string{
		"a", "about", "after", "all", "also", "an", "and", "any", "are", "as", "at",
		"be", "because", "been", "before", "being", "between", "both", "but", "by",
		"can", "could", "did", "do", "does", "each", "for", "from", "had", "has",
		"have", "he", "her", "here", "him", "his", "how", "i", "if", "in", "into",
		"is", "it", "its", "me", "more", "most", "my", "of", "on", "only", "or",
		"other", "our", "out", "over", "she", "should", "so", "some", "such",
		"than", "that", "the", "their", "them", "then", "there", "these", "they",
		"this", "those", "through", "to", "too", "under", "up", "us", "very",
		"was", "we", "were", "what", "when", "where", "which", "while", "who",
		"why", "will", "with", "would", "you", "your",
	}
	switch lang {
	case Spanish:
		words = append(words,
			"el", "la", "los", "las", "un", "una", "y", "o", "pero", "que", "de",
			"en", "por", "para", "con", "sin", "sobre", "es", "son", "fue", "yo",
			"tu", "su", "mi", "este", "esta", "ese", "lo", "le", "se", "como",
			"cuando", "donde", "porque", "si", "muy", "todo", "nada", "algo")
	case French:
		words = append(words,
			"le", "la", "les", "un", "une", "des", "du", "et", "au", "aux", "pour",
			"par", "avec", "sans", "sous", "sur", "dans", "est", "sont", "je", "tu",
			"il", "elle", "nous", "vous", "ils", "mon", "ton", "son", "ce", "cette",
			"ces", "que", "qui", "dont", "ne", "pas", "plus", "tout")
	case German:
		words = append(words,
			"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "und",
			"oder", "aber", "weil", "wenn", "als", "dass", "zu", "auf", "aus", "bei",
			"mit", "nach", "von", "vor", "ist", "sind", "war", "ich", "du", "er",
			"sie", "es", "wir", "ihr", "nicht", "sehr", "noch", "nur", "auch")
	}
	return words
}

// IsSupported checks if stop words are available for a language.
func IsSupported(lang Language) bool {
	for _, supported := range SupportedLanguages() {
		if lang == supported {
			return true
		}
	}
	return false
}

// SupportedLanguages returns all languages with built-in stop words.
func SupportedLanguages() []Language {
	return []Language{English, Spanish, French, German}
}

// FormatLanguageError creates a formatted error for unsupported languages
func FormatLanguageError(lang Language) error {
	return fmt.Errorf("%w: language %s is not supported. Supported languages: %v",
		ErrInvalidOption, string(lang), SupportedLanguages())
}
