package sentibayes

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Split partitions items into two disjoint groups of exactly
// round(len(items)*fraction) and len(items)-round(len(items)*fraction)
// elements, drawing membership at random while keeping input order. A nil
// rng is replaced by a time-seeded source.
func Split[T any](items []T, fraction float64, rng *rand.Rand) ([]T, []T, error) {
	if fraction < 0 || fraction > 1 || math.IsNaN(fraction) {
		return nil, nil, fmt.Errorf("%w: fraction must be between 0 and 1, but was %v", ErrInvalidOption, fraction)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	remaining := len(items)
	need := int(math.Round(float64(remaining) * fraction))
	first := make([]T, 0, need)
	second := make([]T, 0, remaining-need)

	// Selection sampling: each item is taken with probability need/remaining,
	// which always yields exactly need items.
	for _, item := range items {
		if rng.Float64() < float64(need)/float64(remaining) {
			first = append(first, item)
			need--
		} else {
			second = append(second, item)
		}
		remaining--
	}
	return first, second, nil
}

// CrossValidationResult contains results from cross-validation
type CrossValidationResult struct {
	MeanAccuracy float64
	StdAccuracy  float64
	MinAccuracy  float64
	MaxAccuracy  float64
	FoldResults  []QualityMetrics
}

// CrossValidate performs k-fold cross-validation. Each fold is held out in
// turn while a fresh Builder is trained on the remaining examples with opts.
func CrossValidate(data []LabeledText, k int, opts ...Option) (CrossValidationResult, error) {
	if k <= 1 {
		return CrossValidationResult{}, fmt.Errorf("%w: k must be greater than 1", ErrInvalidOption)
	}
	if k > len(data) {
		return CrossValidationResult{}, fmt.Errorf("%w: k=%d exceeds %d examples", ErrInvalidOption, k, len(data))
	}

	validator, err := NewValidator(WithTextOutputProbability(0), WithLoggingStep(0))
	if err != nil {
		return CrossValidationResult{}, err
	}

	foldSize := len(data) / k
	results := make([]QualityMetrics, k)
	accuracies := make([]float64, k)

	for fold := 0; fold < k; fold++ {
		start := fold * foldSize
		end := start + foldSize
		if fold == k-1 {
			end = len(data) // Include remaining items in last fold
		}

		trainData := make([]LabeledText, 0, len(data)-(end-start))
		trainData = append(trainData, data[:start]...)
		trainData = append(trainData, data[end:]...)

		builder, err := NewBuilder(opts...)
		if err != nil {
			return CrossValidationResult{}, err
		}
		if err := builder.AddTexts(trainData...); err != nil {
			return CrossValidationResult{}, err
		}
		model, err := builder.Build()
		if err != nil {
			return CrossValidationResult{}, fmt.Errorf("fold %d: %w", fold, err)
		}

		results[fold] = validator.Validate(model, data[start:end])
		accuracies[fold] = results[fold].Accuracy()
	}

	mean, std := stat.MeanStdDev(accuracies, nil)
	return CrossValidationResult{
		MeanAccuracy: mean,
		StdAccuracy:  std,
		MinAccuracy:  floats.Min(accuracies),
		MaxAccuracy:  floats.Max(accuracies),
		FoldResults:  results,
	}, nil
}
