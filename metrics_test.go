package sentibayes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityMetrics(t *testing.T) {
	q, err := NewQualityMetrics(5, 6, 3, 1, 2, 0)
	require.NoError(t, err)

	assert.InDelta(t, 5.0/6, q.Accuracy(), 1e-9)
	assert.InDelta(t, 0.8333, q.BalancedAccuracy(), 1e-4)
	assert.InDelta(t, 0.75, q.PositivePrecision(), 1e-9)
	assert.InDelta(t, 1.0, q.PositiveRecall(), 1e-9)
	assert.InDelta(t, 1.0, q.NegativePrecision(), 1e-9)
	assert.InDelta(t, 2.0/3, q.NegativeRecall(), 1e-9)
	assert.InDelta(t, 6.0/7, q.PositiveFMeasure(), 1e-9)
	assert.InDelta(t, 0.8, q.NegativeFMeasure(), 1e-9)

	assert.Equal(t, 5, q.Correct())
	assert.Equal(t, 6, q.Total())
	assert.Equal(t, 6, q.ConfusionMatrix().Total())
}

func TestQualityMetricsNaN(t *testing.T) {
	empty, err := NewQualityMetrics(0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(empty.Accuracy()))
	assert.True(t, math.IsNaN(empty.BalancedAccuracy()))
	assert.True(t, math.IsNaN(empty.PositiveFMeasure()))

	// No positive predictions: positive precision is undefined.
	q, err := NewQualityMetrics(2, 3, 0, 0, 2, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(q.PositivePrecision()))
	assert.True(t, math.IsNaN(q.PositiveFMeasure()))
	assert.InDelta(t, 0, q.PositiveRecall(), 1e-9)
	assert.InDelta(t, 1, q.NegativeRecall(), 1e-9)
	assert.False(t, math.IsNaN(q.NegativeFMeasure()))
}

func TestNegativeCounts(t *testing.T) {
	tests := []struct {
		name                           string
		correct, total, tp, fp, tn, fn int
	}{
		{"correct", -1, 0, 0, 0, 0, 0},
		{"total", 0, -1, 0, 0, 0, 0},
		{"tp", 0, 0, -1, 0, 0, 0},
		{"fp", 0, 0, 0, -1, 0, 0},
		{"tn", 0, 0, 0, 0, -1, 0},
		{"fn", 0, 0, 0, 0, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQualityMetrics(tt.correct, tt.total, tt.tp, tt.fp, tt.tn, tt.fn)
			assert.ErrorIs(t, err, ErrNegativeCount)
		})
	}
}

func TestInconsistentCounts(t *testing.T) {
	tests := []struct {
		name                           string
		correct, total, tp, fp, tn, fn int
	}{
		{"correct above total", 10, 2, 3, 1, 2, 0},
		{"total differs from matrix", 5, 7, 3, 1, 2, 0},
		{"correct differs from tp+tn", 4, 6, 3, 1, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQualityMetrics(tt.correct, tt.total, tt.tp, tt.fp, tt.tn, tt.fn)
			assert.ErrorIs(t, err, ErrInconsistentCounts)
		})
	}
}

func TestConfusionMatrixAdd(t *testing.T) {
	var cm ConfusionMatrix
	cm.add(Positive, Positive)
	cm.add(Positive, Negative)
	cm.add(Negative, Negative)
	cm.add(Negative, Positive)
	cm.add(Negative, Positive)
	assert.Equal(t, ConfusionMatrix{TruePositive: 1, FalsePositive: 1, TrueNegative: 1, FalseNegative: 2}, cm)
}

func TestQualityMetricsString(t *testing.T) {
	q, err := NewQualityMetrics(5, 6, 3, 1, 2, 0)
	require.NoError(t, err)
	s := q.String()
	for _, want := range []string{
		"Accuracy: 0.8333",
		"Balanced Accuracy: 0.8333",
		"Confusion Matrix:",
		"+Precision: 0.7500",
		"+Recall: 1.0000",
		"-Precision: 1.0000",
		"-Recall: 0.6667",
		"+F-Measure: 0.8571",
		"-F-Measure: 0.8000",
	} {
		assert.Contains(t, s, want)
	}
}
