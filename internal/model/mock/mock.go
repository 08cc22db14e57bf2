package mock

import (
	"fmt"
	"strings"

	"github.com/yungbote/teachsmart-backend/internal/model"
)

// New returns a deterministic keyword-driven model for development and
// tests. The vectorizer emits two indicator features (struggle keywords,
// support keywords) and the classifier maps those to fixed probability
// profiles, matching the behavior the real model was trained to approximate.
func New() *model.Model {
	return &model.Model{
		Classifier: &classifier{},
		Vectorizer: &vectorizer{},
		AdviceMap: map[int]string{
			0: "Provide immediate support and calming strategies",
			1: "Continue with guided practice and visual supports",
			2: "Ready for more challenging independent activities",
		},
	}
}

var struggleKeywords = []string{"tantrum", "meltdown", "tidak bisa", "salah", "menangis", "crying"}

var supportKeywords = []string{"bantu", "bantuan", "visual", "with help", "needs help"}

type vectorizer struct{}

func (v *vectorizer) Dims() int { return 2 }

func (v *vectorizer) Transform(text string) []float64 {
	lower := strings.ToLower(text)
	out := make([]float64, 2)
	for _, kw := range struggleKeywords {
		if strings.Contains(lower, kw) {
			out[0] = 1
			break
		}
	}
	for _, kw := range supportKeywords {
		if strings.Contains(lower, kw) {
			out[1] = 1
			break
		}
	}
	return out
}

type classifier struct{}

func (c *classifier) label(features []float64) (int, error) {
	if len(features) != model.OrdinalFeatures+2 {
		return 0, fmt.Errorf("mock model: feature vector width %d, want %d", len(features), model.OrdinalFeatures+2)
	}
	switch {
	case features[model.OrdinalFeatures] > 0:
		return 0, nil
	case features[model.OrdinalFeatures+1] > 0:
		return 1, nil
	default:
		return 2, nil
	}
}

func (c *classifier) Predict(features []float64) (int, error) {
	return c.label(features)
}

func (c *classifier) PredictProba(features []float64) ([]float64, error) {
	label, err := c.label(features)
	if err != nil {
		return nil, err
	}
	switch label {
	case 0:
		return []float64{0.7, 0.2, 0.1}, nil
	case 1:
		return []float64{0.2, 0.6, 0.2}, nil
	default:
		return []float64{0.1, 0.2, 0.7}, nil
	}
}
