package sentibayes

import "sort"

// wordCounts holds the document frequencies gathered from a training set.
type wordCounts struct {
	bySentiment  map[WordSentiment]int // documents of a sentiment containing a word
	total        map[string]int        // documents containing a word, over both sentiments
	positiveDocs int
	negativeDocs int
}

// countWords aggregates document frequencies. Every observed word gets an
// entry for both sentiments, zero when it never occurs under one of them.
func countWords(docs []document) *wordCounts {
	c := &wordCounts{
		bySentiment: make(map[WordSentiment]int),
		total:       make(map[string]int),
	}
	for _, doc := range docs {
		if doc.sentiment == Positive {
			c.positiveDocs++
		} else {
			c.negativeDocs++
		}
		for _, w := range doc.words {
			if _, seen := c.total[w]; !seen {
				c.total[w] = 0
				for _, s := range sentiments {
					c.bySentiment[WordSentiment{w, s}] = 0
				}
			}
			c.bySentiment[WordSentiment{w, doc.sentiment}]++
			c.total[w]++
		}
	}
	return c
}

func (c *wordCounts) docs(s Sentiment) int {
	if s == Positive {
		return c.positiveDocs
	}
	return c.negativeDocs
}

func (c *wordCounts) totalDocs() int {
	return c.positiveDocs + c.negativeDocs
}

// words returns the vocabulary in lexical order.
func (c *wordCounts) words() []string {
	words := make([]string, 0, len(c.total))
	for w := range c.total {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
