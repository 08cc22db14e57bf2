package model

// Vectorizer turns a free-text observation note into a fixed-width numeric
// vector. Implementations must be safe for concurrent use after load.
type Vectorizer interface {
	Transform(text string) []float64
	Dims() int
}

// Classifier is the trained three-class predictor. Predict returns the raw
// label; PredictProba returns the probability distribution in label order.
// Both operate on the full feature vector (ordinal triple + text vector).
type Classifier interface {
	Predict(features []float64) (int, error)
	PredictProba(features []float64) ([]float64, error)
}

// Model bundles the artifacts loaded once at process start. It is read-only
// after load and shared across requests.
type Model struct {
	Classifier Classifier
	Vectorizer Vectorizer

	// AdviceMap carries the per-label teaching advice shipped inside the
	// trained artifact. Missing entries fall back to canonical defaults.
	AdviceMap map[int]string
}
