package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const testArtifact = `{
  "vectorizer": {
    "vocabulary": {"bantu": 0, "mandiri": 1},
    "idf": [1.0, 1.5]
  },
  "classifier": {
    "type": "logistic_regression",
    "coef": [
      [-2.0, -2.0, -2.0, 1.0, -1.0],
      [0.5, 0.5, 0.5, 2.0, -0.5],
      [2.0, 2.0, 2.0, -1.0, 3.0]
    ],
    "intercept": [0.1, 0.0, -0.1]
  },
  "advice_map": {
    "0": "Provide immediate support and calming strategies",
    "1": "Continue with guided practice and visual supports",
    "2": "Ready for more challenging independent activities"
  }
}`

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestLoadArtifact(t *testing.T) {
	m, err := Load(writeArtifact(t, testArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Vectorizer.Dims() != 2 {
		t.Fatalf("dims=%d, want 2", m.Vectorizer.Dims())
	}
	if m.AdviceMap[2] != "Ready for more challenging independent activities" {
		t.Fatalf("advice map: %v", m.AdviceMap)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}

func TestFromArtifactValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(a *Artifact)
	}{
		{
			name:   "empty_vocabulary",
			mutate: func(a *Artifact) { a.Vectorizer.Vocabulary = nil },
		},
		{
			name:   "idf_length_mismatch",
			mutate: func(a *Artifact) { a.Vectorizer.IDF = []float64{1.0} },
		},
		{
			name:   "vocab_index_out_of_range",
			mutate: func(a *Artifact) { a.Vectorizer.Vocabulary["bantu"] = 9 },
		},
		{
			name:   "wrong_classifier_type",
			mutate: func(a *Artifact) { a.Classifier.Type = "random_forest" },
		},
		{
			name:   "missing_coef_row",
			mutate: func(a *Artifact) { a.Classifier.Coef = a.Classifier.Coef[:2] },
		},
		{
			name:   "coef_width_mismatch",
			mutate: func(a *Artifact) { a.Classifier.Coef[1] = []float64{1, 2} },
		},
		{
			name:   "intercept_count",
			mutate: func(a *Artifact) { a.Classifier.Intercept = []float64{0} },
		},
		{
			name:   "non_numeric_advice_key",
			mutate: func(a *Artifact) { a.AdviceMap = map[string]string{"two": "x"} },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			art := &Artifact{
				Vectorizer: ArtifactVectorizer{
					Vocabulary: map[string]int{"bantu": 0, "mandiri": 1},
					IDF:        []float64{1.0, 1.5},
				},
				Classifier: ArtifactClassifier{
					Type: "logistic_regression",
					Coef: [][]float64{
						{0, 0, 0, 0, 0},
						{0, 0, 0, 0, 0},
						{0, 0, 0, 0, 0},
					},
					Intercept: []float64{0, 0, 0},
				},
				AdviceMap: map[string]string{"0": "a"},
			}
			tc.mutate(art)
			if _, err := FromArtifact(art); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestTfidfTransform(t *testing.T) {
	v := &tfidfVectorizer{
		vocabulary: map[string]int{"bantu": 0, "mandiri": 1},
		idf:        []float64{1.0, 2.0},
	}

	t.Run("l2_normalized", func(t *testing.T) {
		out := v.Transform("Bantu dan mandiri")
		var norm float64
		for _, x := range out {
			norm += x * x
		}
		if math.Abs(norm-1.0) > 1e-9 {
			t.Fatalf("norm=%v, want 1.0", norm)
		}
		// idf weighting makes the mandiri component larger
		if out[1] <= out[0] {
			t.Fatalf("out=%v, want idf-weighted ordering", out)
		}
	})

	t.Run("unknown_tokens_ignored", func(t *testing.T) {
		out := v.Transform("zzz qqq")
		if out[0] != 0 || out[1] != 0 {
			t.Fatalf("out=%v, want zero vector", out)
		}
	})

	t.Run("single_char_tokens_dropped", func(t *testing.T) {
		// the tokenizer only matches runs of two or more word characters
		out := v.Transform("b a n t u")
		if out[0] != 0 {
			t.Fatalf("out=%v, want no bantu hit", out)
		}
	})
}

func TestLogisticRegressionPredict(t *testing.T) {
	c := &logisticRegression{
		coef: [][]float64{
			{1, 0},
			{0, 1},
			{-1, -1},
		},
		intercept: []float64{0, 0, 0},
	}

	label, err := c.Predict([]float64{2, 1})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if label != 0 {
		t.Fatalf("label=%d, want 0", label)
	}

	probs, err := c.PredictProba([]float64{2, 1})
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("probabilities sum=%v, want 1.0", sum)
	}
	if probs[0] <= probs[1] || probs[1] <= probs[2] {
		t.Fatalf("probs=%v, want descending", probs)
	}
}

func TestLogisticRegressionTieBreaksToFirst(t *testing.T) {
	c := &logisticRegression{
		coef: [][]float64{
			{0},
			{0},
			{0},
		},
		intercept: []float64{1, 1, 1},
	}
	label, err := c.Predict([]float64{0})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if label != 0 {
		t.Fatalf("label=%d, want first class on tie", label)
	}
}

func TestLogisticRegressionWidthMismatch(t *testing.T) {
	c := &logisticRegression{
		coef:      [][]float64{{0, 0}, {0, 0}, {0, 0}},
		intercept: []float64{0, 0, 0},
	}
	if _, err := c.Predict([]float64{1}); err == nil {
		t.Fatalf("expected width mismatch error")
	}
}
