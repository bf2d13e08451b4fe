package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// A Dictionary lemmatizes words by lookup. Unknown words map to themselves.
type Dictionary map[string]string

// Lemmatize returns the lemma of word.
func (d Dictionary) Lemmatize(word string) string {
	if lemma, found := d[word]; found {
		return lemma
	}
	return word
}

// ReadDictionary parses "form<TAB>lemma" lines. Forms are lower-cased;
// blank lines and lines starting with # are skipped.
func ReadDictionary(r io.Reader) (Dictionary, error) {
	dict := make(Dictionary)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		form, lemma, found := strings.Cut(text, "\t")
		if !found {
			return nil, fmt.Errorf("lemma dictionary line %d: expected form and lemma separated by a tab", line)
		}
		form = strings.ToLower(strings.TrimSpace(form))
		lemma = strings.ToLower(strings.TrimSpace(lemma))
		if form == "" || lemma == "" {
			return nil, fmt.Errorf("lemma dictionary line %d: empty form or lemma", line)
		}
		dict[form] = lemma
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lemma dictionary: %w", err)
	}
	return dict, nil
}

// LoadDictionary reads a lemma dictionary from disk.
func LoadDictionary(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDictionary(f)
}
