// Package corpus reads the tab-separated review corpora, stop-word lists
// and lemma dictionaries consumed by the runner.
package corpus

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/sentibayes"
)

// ErrMissingColumn is returned when the corpus header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Column names expected in the corpus header.
const (
	IDColumn        = "id"
	SentimentColumn = "sentiment"
	TextColumn      = "review"
)

// ReadTexts parses a tab-separated corpus whose header names the id,
// sentiment and review columns, in any order.
func ReadTexts(r io.Reader) ([]sentibayes.LabeledText, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("corpus is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var idx [3]int
	for i, name := range []string{IDColumn, SentimentColumn, TextColumn} {
		pos, found := columns[name]
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		idx[i] = pos
	}

	var texts []sentibayes.LabeledText
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read corpus line %d: %w", line, err)
		}
		if len(record) <= max(idx[0], idx[1], idx[2]) {
			return nil, fmt.Errorf("corpus line %d: expected %d fields, got %d", line, len(header), len(record))
		}
		sentiment, err := sentibayes.ParseSentiment(record[idx[1]])
		if err != nil {
			return nil, fmt.Errorf("corpus line %d: %w", line, err)
		}
		texts = append(texts, sentibayes.LabeledText{
			ID:        strings.Trim(record[idx[0]], `"`),
			Sentiment: sentiment,
			Text:      record[idx[2]],
		})
	}
	return texts, nil
}

// ReadFile reads a corpus from disk. Escaped quotes (\") are removed before
// parsing; the file itself is left untouched.
func ReadFile(path string) ([]sentibayes.LabeledText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.ReplaceAll(data, []byte(`\"`), nil)
	texts, err := ReadTexts(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return texts, nil
}

// ReadStopWords reads one stop word per line. Blank lines and lines
// starting with # are skipped.
func ReadStopWords(r io.Reader) (sentibayes.StopWords, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stop words: %w", err)
	}
	return sentibayes.NewStopWords(words...), nil
}

// LoadStopWords reads a stop-word file from disk.
func LoadStopWords(path string) (sentibayes.StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadStopWords(f)
}
