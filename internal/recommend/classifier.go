package recommend

import (
	"errors"
	"fmt"

	"github.com/yungbote/teachsmart-backend/internal/model"
)

// ErrModelUnavailable is returned by every classify-dependent call when the
// trained model failed to load at startup. The greeting and templated
// fallback paths do not depend on the model and keep working.
var ErrModelUnavailable = errors.New("trained model not available")

// ErrLabelOutOfRange reports a classifier label outside {0,1,2}. This is a
// contract violation by the model artifact, not a recoverable condition.
var ErrLabelOutOfRange = errors.New("classifier label out of range")

// Predictor wraps the loaded model behind the narrow contract the engine
// needs. A nil model means load failed; every Classify call then returns
// ErrModelUnavailable.
type Predictor struct {
	model *model.Model
}

func NewPredictor(m *model.Model) *Predictor {
	return &Predictor{model: m}
}

// Available reports whether the trained model loaded at startup.
func (p *Predictor) Available() bool {
	return p != nil && p.model != nil
}

// Classify encodes the assessment and runs the trained classifier,
// normalizing its output into a ClassificationResult.
func (p *Predictor) Classify(in AssessmentInput) (*ClassificationResult, error) {
	if !p.Available() {
		return nil, ErrModelUnavailable
	}

	features := EncodeFeatures(in.Value1, in.Value2, in.Value3, in.Note, p.model.Vectorizer)

	label, err := p.model.Classifier.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if label < 0 || label > 2 {
		return nil, fmt.Errorf("%w: got %d", ErrLabelOutOfRange, label)
	}

	probs, err := p.model.Classifier.PredictProba(features)
	if err != nil {
		return nil, fmt.Errorf("predict proba: %w", err)
	}
	// The contract is three entries; pad with 0.0 rather than erroring when
	// the artifact returns fewer.
	padded := [3]float64{}
	copy(padded[:], probs)

	confidence := padded[0]
	for _, pr := range padded[1:] {
		if pr > confidence {
			confidence = pr
		}
	}

	return &ClassificationResult{
		Label:      label,
		Condition:  conditionName(label),
		Advice:     p.advice(label),
		Confidence: confidence,
		Probabilities: Probabilities{
			Struggling:   padded[0],
			NeedsSupport: padded[1],
			DoingWell:    padded[2],
		},
	}, nil
}

func (p *Predictor) advice(label int) string {
	if p.model != nil {
		if a, ok := p.model.AdviceMap[label]; ok && a != "" {
			return a
		}
	}
	return defaultAdvice(label)
}
