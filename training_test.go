package sentibayes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	items := make([]int, 10)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		fraction float64
		first    int
	}{
		{0, 0},
		{0.25, 3},
		{0.5, 5},
		{1, 10},
	}
	for _, tt := range tests {
		for seed := int64(0); seed < 20; seed++ {
			first, second, err := Split(items, tt.fraction, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			assert.Len(t, first, tt.first)
			assert.Len(t, second, len(items)-tt.first)

			// Disjoint, complete and in input order.
			seen := make(map[int]bool)
			for _, part := range [][]int{first, second} {
				for i, v := range part {
					assert.False(t, seen[v], "item %d drawn twice", v)
					seen[v] = true
					if i > 0 {
						assert.Less(t, part[i-1], v)
					}
				}
			}
			assert.Len(t, seen, len(items))
		}
	}
}

func TestSplitInvalidFraction(t *testing.T) {
	for _, fraction := range []float64{-0.1, 1.1} {
		_, _, err := Split([]int{1, 2}, fraction, nil)
		assert.ErrorIs(t, err, ErrInvalidOption)
	}
}

func TestSplitEmpty(t *testing.T) {
	first, second, err := Split([]string{}, 0.5, nil)
	require.NoError(t, err)
	assert.Empty(t, first)
	assert.Empty(t, second)
}

func TestCrossValidate(t *testing.T) {
	data := []LabeledText{
		{ID: "1", Text: "great fun movie", Sentiment: Positive},
		{ID: "2", Text: "awful boring movie", Sentiment: Negative},
		{ID: "3", Text: "great acting", Sentiment: Positive},
		{ID: "4", Text: "boring plot", Sentiment: Negative},
		{ID: "5", Text: "fun and great", Sentiment: Positive},
		{ID: "6", Text: "awful acting", Sentiment: Negative},
		{ID: "7", Text: "great great story", Sentiment: Positive},
		{ID: "8", Text: "boring awful story", Sentiment: Negative},
		{ID: "9", Text: "fun story", Sentiment: Positive},
	}

	result, err := CrossValidate(data, 3, WithTolerance(100))
	require.NoError(t, err)
	require.Len(t, result.FoldResults, 3)

	total := 0
	for _, fold := range result.FoldResults {
		total += fold.Total()
	}
	assert.Equal(t, len(data), total)
	assert.GreaterOrEqual(t, result.MeanAccuracy, result.MinAccuracy)
	assert.LessOrEqual(t, result.MeanAccuracy, result.MaxAccuracy)
	assert.GreaterOrEqual(t, result.MinAccuracy, 0.0)
	assert.LessOrEqual(t, result.MaxAccuracy, 1.0)
}

func TestCrossValidateInvalidFolds(t *testing.T) {
	data := reviews
	for _, k := range []int{0, 1, len(data) + 1} {
		_, err := CrossValidate(data, k)
		assert.ErrorIs(t, err, ErrInvalidOption, "k=%d", k)
	}
}
