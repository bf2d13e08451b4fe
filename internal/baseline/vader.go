// Package baseline provides a lexicon-based predictor to compare the Naive
// Bayes model against.
package baseline

import (
	"github.com/jonreiter/govader"

	"github.com/tsawler/sentibayes"
)

// Vader labels text with the VADER compound polarity score.
type Vader struct {
	analyzer  *govader.SentimentIntensityAnalyzer
	threshold float64
}

// NewVader creates a predictor that labels text Positive when its compound
// score is at least threshold.
func NewVader(threshold float64) *Vader {
	return &Vader{
		analyzer:  govader.NewSentimentIntensityAnalyzer(),
		threshold: threshold,
	}
}

// Score returns the compound polarity of text, in [-1, 1].
func (v *Vader) Score(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

// Predict implements sentibayes.Predictor.
func (v *Vader) Predict(text string) sentibayes.Sentiment {
	if v.Score(text) >= v.threshold {
		return sentibayes.Positive
	}
	return sentibayes.Negative
}
