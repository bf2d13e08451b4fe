package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsawler/sentibayes"
)

func TestVaderPredict(t *testing.T) {
	v := NewVader(0.05)

	tests := []struct {
		text     string
		expected sentibayes.Sentiment
	}{
		{"I love this movie, it is wonderful and great!", sentibayes.Positive},
		{"This is a terrible, awful and horrible film.", sentibayes.Negative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, v.Predict(tt.text), tt.text)
	}
}

func TestVaderScoreRange(t *testing.T) {
	v := NewVader(0)
	for _, text := range []string{"", "good", "bad bad bad", "The plot was fine."} {
		score := v.Score(text)
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestVaderValidates(t *testing.T) {
	validator, err := sentibayes.NewValidator(sentibayes.WithTextOutputProbability(0))
	assert.NoError(t, err)
	q := validator.Validate(NewVader(0.05), []sentibayes.LabeledText{
		{ID: "1", Text: "What a great, happy ending!", Sentiment: sentibayes.Positive},
		{ID: "2", Text: "Horrible acting and a sad, terrible plot.", Sentiment: sentibayes.Negative},
	})
	assert.Equal(t, 2, q.Total())
	assert.Equal(t, 2, q.Correct())
}
