package sentibayes

import (
	"testing"
)

func FuzzPredict(f *testing.F) {
	model := buildReviews(f, WithDiacriticFolding(true))

	f.Add("movie was not good")
	f.Add("")
	f.Add("<p>Ça ne marche pas</p>")
	f.Add("good good good good")

	f.Fuzz(func(t *testing.T, text string) {
		got := model.Predict(text)
		if !got.Valid() {
			t.Fatalf("Predict(%q) returned %v", text, got)
		}
		if again := model.Predict(text); again != got {
			t.Fatalf("Predict(%q) is not deterministic: %s then %s", text, got, again)
		}
	})
}
