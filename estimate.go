package sentibayes

import (
	"log/slog"
	"math"
	"sort"
)

// epsilon is the underflow threshold for smoothing and prediction.
const epsilon = math.SmallestNonzeroFloat64

// probabilityTable maps a (word, sentiment) pair to P(word | sentiment).
type probabilityTable map[WordSentiment]float64

// estimate converts document frequencies into the final probability table:
// raw conditional probabilities, rarity/frequency pruning on the raw values,
// tolerance smoothing, then PMI and IDF pruning.
func estimate(c *wordCounts, opts Options) probabilityTable {
	table := make(probabilityTable, len(c.bySentiment))
	for _, w := range c.words() {
		for _, s := range sentiments {
			key := WordSentiment{w, s}
			p := rawProbability(c.bySentiment[key], c.docs(s))
			if opts.ExcludeRareWords && p < opts.MinProbability {
				continue
			}
			if opts.ExcludeFrequentWords && p > opts.MaxProbability {
				continue
			}
			if opts.EnableTolerance {
				p = smooth(p, opts.Tolerance)
			}
			table[key] = p
		}
	}
	opts.Logger.Debug("probabilities estimated",
		slog.Int("words", len(c.total)),
		slog.Int("entries", len(table)))

	if opts.ExcludePMIWords {
		removed := pruneByPMI(table, c, opts.PercentExcludingPMIWords)
		opts.Logger.Debug("PMI pruning",
			slog.Int("removed", removed),
			slog.Int("entries", len(table)))
	}
	if opts.ExcludeIDFWords {
		removed := pruneByIDF(table, c, opts.PercentExcludingIDFWords)
		opts.Logger.Debug("IDF pruning",
			slog.Int("removed", removed),
			slog.Int("entries", len(table)))
	}
	return table
}

// rawProbability is zero for a class without documents.
func rawProbability(count, docs int) float64 {
	if docs == 0 {
		return 0
	}
	return float64(count) / float64(docs)
}

func smooth(p float64, tolerance int) float64 {
	switch {
	case p <= epsilon:
		return 1 / float64(tolerance)
	case math.Abs(p-1) <= epsilon:
		return 1 - 1/float64(tolerance)
	}
	return p
}

// pmi returns the pointwise mutual information of a word and a class.
func pmi(conditional, marginal float64) float64 {
	return math.Log2(conditional / marginal)
}

type scoredEntry struct {
	key   WordSentiment
	score float64
}

// pruneByPMI removes the floor(len(table)*percent) entries whose class
// probability diverges least from the word's overall frequency. Ties are
// ordered by word, Positive before Negative.
func pruneByPMI(table probabilityTable, c *wordCounts, percent float64) int {
	total := float64(c.totalDocs())
	entries := make([]scoredEntry, 0, len(table))
	for key, p := range table {
		marginal := float64(c.total[key.Word]) / total
		entries = append(entries, scoredEntry{key: key, score: pmi(p, marginal)})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.score != b.score {
			return a.score < b.score
		}
		if a.key.Word != b.key.Word {
			return a.key.Word < b.key.Word
		}
		return a.key.Sentiment > b.key.Sentiment
	})

	take := int(math.Floor(float64(len(entries)) * percent))
	for _, e := range entries[:take] {
		delete(table, e.key)
	}
	return take
}

// pruneByIDF removes both entries of the round(words*percent) words with the
// highest inverse document frequency, ties broken by word. Equal idf implies
// equal document count, so count never orders two words.
func pruneByIDF(table probabilityTable, c *wordCounts, percent float64) int {
	seen := make(map[string]struct{})
	for key := range table {
		seen[key.Word] = struct{}{}
	}
	total := float64(c.totalDocs())
	entries := make([]scoredEntry, 0, len(seen))
	for w := range seen {
		entries = append(entries, scoredEntry{
			key:   WordSentiment{Word: w},
			score: total / float64(c.total[w]),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.score != b.score {
			return a.score > b.score
		}
		return a.key.Word < b.key.Word
	})

	take := int(math.Round(float64(len(entries)) * percent))
	for _, e := range entries[:take] {
		for _, s := range sentiments {
			delete(table, WordSentiment{e.key.Word, s})
		}
	}
	return take
}
