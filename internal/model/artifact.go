package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Artifact is the on-disk JSON export of the trained classifier/vectorizer
// pair plus the advice map. It mirrors what the training pipeline serializes.
type Artifact struct {
	Vectorizer ArtifactVectorizer `json:"vectorizer"`
	Classifier ArtifactClassifier `json:"classifier"`
	AdviceMap  map[string]string  `json:"advice_map"`
}

type ArtifactVectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

type ArtifactClassifier struct {
	Type      string      `json:"type"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

const numClasses = 3

// OrdinalFeatures is the number of assessment values prepended to the text
// vector when building the classifier input.
const OrdinalFeatures = 3

// Load reads and validates a model artifact from path. The returned Model is
// immutable and safe to share between concurrent requests.
func Load(path string) (*Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art Artifact
	if err := json.Unmarshal(b, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	return FromArtifact(&art)
}

// FromArtifact validates the artifact and assembles a runnable Model.
func FromArtifact(art *Artifact) (*Model, error) {
	if art == nil {
		return nil, errors.New("nil model artifact")
	}
	if len(art.Vectorizer.Vocabulary) == 0 {
		return nil, errors.New("model artifact: empty vocabulary")
	}
	dims := len(art.Vectorizer.Vocabulary)
	if len(art.Vectorizer.IDF) != dims {
		return nil, fmt.Errorf("model artifact: idf length %d does not match vocabulary size %d", len(art.Vectorizer.IDF), dims)
	}
	for term, idx := range art.Vectorizer.Vocabulary {
		if idx < 0 || idx >= dims {
			return nil, fmt.Errorf("model artifact: vocabulary index %d for term %q out of range", idx, term)
		}
	}

	if t := strings.TrimSpace(art.Classifier.Type); t != "" && !strings.EqualFold(t, "logistic_regression") {
		return nil, fmt.Errorf("model artifact: unsupported classifier type %q", art.Classifier.Type)
	}
	if len(art.Classifier.Coef) != numClasses {
		return nil, fmt.Errorf("model artifact: expected %d coefficient rows, got %d", numClasses, len(art.Classifier.Coef))
	}
	if len(art.Classifier.Intercept) != numClasses {
		return nil, fmt.Errorf("model artifact: expected %d intercepts, got %d", numClasses, len(art.Classifier.Intercept))
	}
	wantWidth := OrdinalFeatures + dims
	for i, row := range art.Classifier.Coef {
		if len(row) != wantWidth {
			return nil, fmt.Errorf("model artifact: coefficient row %d has width %d, want %d", i, len(row), wantWidth)
		}
	}

	advice := make(map[int]string, len(art.AdviceMap))
	for k, v := range art.AdviceMap {
		label, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("model artifact: advice map key %q is not a label", k)
		}
		advice[label] = v
	}

	return &Model{
		Classifier: &logisticRegression{
			coef:      art.Classifier.Coef,
			intercept: art.Classifier.Intercept,
		},
		Vectorizer: &tfidfVectorizer{
			vocabulary: art.Vectorizer.Vocabulary,
			idf:        art.Vectorizer.IDF,
		},
		AdviceMap: advice,
	}, nil
}

// tokenPattern matches the training-time tokenizer: runs of two or more word
// characters, case-folded.
var tokenPattern = regexp.MustCompile(`\w\w+`)

type tfidfVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

func (v *tfidfVectorizer) Dims() int { return len(v.idf) }

func (v *tfidfVectorizer) Transform(text string) []float64 {
	out := make([]float64, len(v.idf))
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	for _, tok := range tokens {
		if idx, ok := v.vocabulary[tok]; ok {
			out[idx]++
		}
	}
	var norm float64
	for i := range out {
		out[i] *= v.idf[i]
		norm += out[i] * out[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range out {
			out[i] /= norm
		}
	}
	return out
}

type logisticRegression struct {
	coef      [][]float64
	intercept []float64
}

func (c *logisticRegression) scores(features []float64) ([]float64, error) {
	if len(features) != len(c.coef[0]) {
		return nil, fmt.Errorf("feature vector width %d does not match model width %d", len(features), len(c.coef[0]))
	}
	scores := make([]float64, numClasses)
	for k := 0; k < numClasses; k++ {
		s := c.intercept[k]
		row := c.coef[k]
		for i, x := range features {
			s += row[i] * x
		}
		scores[k] = s
	}
	return scores, nil
}

func (c *logisticRegression) Predict(features []float64) (int, error) {
	scores, err := c.scores(features)
	if err != nil {
		return 0, err
	}
	best := 0
	for k := 1; k < len(scores); k++ {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return best, nil
}

func (c *logisticRegression) PredictProba(features []float64) ([]float64, error) {
	scores, err := c.scores(features)
	if err != nil {
		return nil, err
	}
	// Softmax with max-shift for numerical stability.
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	var sum float64
	probs := make([]float64, len(scores))
	for k, s := range scores {
		probs[k] = math.Exp(s - max)
		sum += probs[k]
	}
	for k := range probs {
		probs[k] /= sum
	}
	return probs, nil
}
