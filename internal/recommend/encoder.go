package recommend

import (
	"strings"

	"github.com/yungbote/teachsmart-backend/internal/model"
)

// Ordinal assessment tokens. "benar" must match exactly (case-insensitive);
// "bantu" matches as a substring so that variants like "dengan bantuan" score
// as assisted. Anything else, including unrecognized tokens, scores 0.0,
// the same silent degradation the model was trained against.
const (
	tokenCorrect  = "benar"
	tokenAssisted = "bantu"
)

func ordinalValue(v string) float64 {
	lower := strings.ToLower(v)
	switch {
	case lower == tokenCorrect:
		return 1.0
	case strings.Contains(lower, tokenAssisted):
		return 0.5
	default:
		return 0.0
	}
}

// EncodeFeatures builds the classifier input: the three ordinal values first,
// then the vectorized note. Pure; same input always yields the same vector.
func EncodeFeatures(value1, value2, value3, note string, vec model.Vectorizer) []float64 {
	text := vec.Transform(note)
	features := make([]float64, 0, model.OrdinalFeatures+len(text))
	features = append(features, ordinalValue(value1), ordinalValue(value2), ordinalValue(value3))
	features = append(features, text...)
	return features
}
