package sentibayes

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrNegativeCount is returned when a metric is built from a negative count.
var ErrNegativeCount = errors.New("count can't be negative")

// ErrInconsistentCounts is returned when the totals disagree with the
// confusion matrix.
var ErrInconsistentCounts = errors.New("inconsistent counts")

// A ConfusionMatrix tallies predicted against actual labels.
type ConfusionMatrix struct {
	TruePositive  int
	FalsePositive int
	TrueNegative  int
	FalseNegative int
}

// NewConfusionMatrix validates the counts and returns the matrix.
func NewConfusionMatrix(tp, fp, tn, fn int) (ConfusionMatrix, error) {
	counts := []struct {
		name  string
		value int
	}{{"tp", tp}, {"fp", fp}, {"tn", tn}, {"fn", fn}}
	for _, c := range counts {
		if c.value < 0 {
			return ConfusionMatrix{}, fmt.Errorf("%w: %s was %d", ErrNegativeCount, c.name, c.value)
		}
	}
	return ConfusionMatrix{TruePositive: tp, FalsePositive: fp, TrueNegative: tn, FalseNegative: fn}, nil
}

// Total returns the number of classified examples.
func (cm ConfusionMatrix) Total() int {
	return cm.TruePositive + cm.FalsePositive + cm.TrueNegative + cm.FalseNegative
}

func (cm *ConfusionMatrix) add(predicted, actual Sentiment) {
	switch {
	case predicted == Positive && actual == Positive:
		cm.TruePositive++
	case predicted == Positive:
		cm.FalsePositive++
	case actual == Negative:
		cm.TrueNegative++
	default:
		cm.FalseNegative++
	}
}

// QualityMetrics is a read-only view over a validation run. Ratios are
// computed on every call; a zero denominator yields NaN.
type QualityMetrics struct {
	correct int
	total   int
	matrix  ConfusionMatrix
}

// NewQualityMetrics validates the counts and returns the metrics.
func NewQualityMetrics(correct, total, tp, fp, tn, fn int) (QualityMetrics, error) {
	if correct < 0 || total < 0 {
		return QualityMetrics{}, fmt.Errorf("%w: correct %d, total %d", ErrNegativeCount, correct, total)
	}
	cm, err := NewConfusionMatrix(tp, fp, tn, fn)
	if err != nil {
		return QualityMetrics{}, err
	}
	if total != cm.Total() {
		return QualityMetrics{}, fmt.Errorf("%w: total %d, matrix holds %d", ErrInconsistentCounts, total, cm.Total())
	}
	if correct != tp+tn {
		return QualityMetrics{}, fmt.Errorf("%w: correct %d, tp+tn is %d", ErrInconsistentCounts, correct, tp+tn)
	}
	return QualityMetrics{correct: correct, total: total, matrix: cm}, nil
}

// Correct returns the number of correct predictions.
func (q QualityMetrics) Correct() int { return q.correct }

// Total returns the number of evaluated examples.
func (q QualityMetrics) Total() int { return q.total }

// ConfusionMatrix returns the underlying tally.
func (q QualityMetrics) ConfusionMatrix() ConfusionMatrix { return q.matrix }

// Accuracy is correct / total.
func (q QualityMetrics) Accuracy() float64 {
	return ratio(q.correct, q.total)
}

// BalancedAccuracy is the mean of the per-class recalls.
func (q QualityMetrics) BalancedAccuracy() float64 {
	return 0.5 * (q.PositiveRecall() + q.NegativeRecall())
}

// PositivePrecision is tp / (tp + fp).
func (q QualityMetrics) PositivePrecision() float64 {
	return ratio(q.matrix.TruePositive, q.matrix.TruePositive+q.matrix.FalsePositive)
}

// NegativePrecision is tn / (tn + fn).
func (q QualityMetrics) NegativePrecision() float64 {
	return ratio(q.matrix.TrueNegative, q.matrix.TrueNegative+q.matrix.FalseNegative)
}

// PositiveRecall is tp / (tp + fn).
func (q QualityMetrics) PositiveRecall() float64 {
	return ratio(q.matrix.TruePositive, q.matrix.TruePositive+q.matrix.FalseNegative)
}

// NegativeRecall is tn / (tn + fp).
func (q QualityMetrics) NegativeRecall() float64 {
	return ratio(q.matrix.TrueNegative, q.matrix.TrueNegative+q.matrix.FalsePositive)
}

// PositiveFMeasure is the harmonic mean of positive precision and recall.
func (q QualityMetrics) PositiveFMeasure() float64 {
	return fMeasure(q.PositivePrecision(), q.PositiveRecall())
}

// NegativeFMeasure is the harmonic mean of negative precision and recall.
func (q QualityMetrics) NegativeFMeasure() float64 {
	return fMeasure(q.NegativePrecision(), q.NegativeRecall())
}

// String renders the report. The confusion matrix rows are the actual
// labels (positive first), the columns the predicted ones.
func (q QualityMetrics) String() string {
	cm := q.matrix
	m := mat.NewDense(2, 2, []float64{
		float64(cm.TruePositive), float64(cm.FalseNegative),
		float64(cm.FalsePositive), float64(cm.TrueNegative),
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Accuracy: %.4f\n", q.Accuracy())
	fmt.Fprintf(&b, "Balanced Accuracy: %.4f\n\n", q.BalancedAccuracy())
	fmt.Fprintf(&b, "Confusion Matrix:\n    %v\n\n", mat.Formatted(m, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(&b, "+Precision: %.4f\n", q.PositivePrecision())
	fmt.Fprintf(&b, "+Recall: %.4f\n", q.PositiveRecall())
	fmt.Fprintf(&b, "-Precision: %.4f\n", q.NegativePrecision())
	fmt.Fprintf(&b, "-Recall: %.4f\n\n", q.NegativeRecall())
	fmt.Fprintf(&b, "+F-Measure: %.4f\n", q.PositiveFMeasure())
	fmt.Fprintf(&b, "-F-Measure: %.4f", q.NegativeFMeasure())
	return b.String()
}

// ratio returns NaN when den is zero.
func ratio(num, den int) float64 {
	return float64(num) / float64(den)
}

func fMeasure(precision, recall float64) float64 {
	return 2 * (precision * recall) / (precision + recall)
}
