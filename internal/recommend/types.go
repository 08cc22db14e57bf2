package recommend

import "time"

// AssessmentInput is one observed assessment: three ordinal trial outcomes
// plus the teacher's free-text observation note. Notes may be written in
// Indonesian or English; the rule table carries synonyms for both.
type AssessmentInput struct {
	Value1 string `json:"value_1"`
	Value2 string `json:"value_2"`
	Value3 string `json:"value_3"`
	Note   string `json:"activity_note"`
}

// Probabilities is the classifier's distribution over the three conditions.
type Probabilities struct {
	Struggling   float64 `json:"struggling"`
	NeedsSupport float64 `json:"needs_support"`
	DoingWell    float64 `json:"doing_well"`
}

// ClassificationResult is the normalized output of the classification
// adapter. Label is the arg-max of the distribution and Confidence its value.
type ClassificationResult struct {
	Label         int           `json:"label"`
	Condition     string        `json:"condition"`
	Advice        string        `json:"advice"`
	Confidence    float64       `json:"confidence"`
	Probabilities Probabilities `json:"probabilities"`
}

// ActivityTemplate is one authored activity. Templates are immutable once
// loaded; personalization always copies.
type ActivityTemplate struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Materials   []string `json:"materials" yaml:"materials"`
	Steps       []string `json:"steps" yaml:"steps"`
	Duration    string   `json:"duration" yaml:"duration"`
	Level       string   `json:"level" yaml:"level"`
	Type        string   `json:"type" yaml:"type"`
}

// PersonalizedActivity is a matched template after the personalization pass,
// plus provenance: which pattern matched and which label's rule list it came
// from.
type PersonalizedActivity struct {
	ActivityTemplate

	AgeNote         string `json:"age_note,omitempty"`
	Personalization string `json:"personalization,omitempty"`

	MatchedPattern string `json:"matched_keywords"`
	SourceLabel    int    `json:"prediction_label"`
}

// ResourceMetadata describes a generated learning resource. Fields are
// populated according to which pipeline produced the resource.
type ResourceMetadata struct {
	StudentAge      int    `json:"student_age,omitempty"`
	AETTarget       string `json:"aet_target,omitempty"`
	AbilityLevel    string `json:"ability_level,omitempty"`
	FormatType      string `json:"format_type,omitempty"`
	ModelAvailable  bool   `json:"model_available"`
	ActivityType    string `json:"activity_type,omitempty"`
	PredictionLabel *int   `json:"prediction_label,omitempty"`
	ResponseType    string `json:"response_type,omitempty"`
	Provider        string `json:"provider,omitempty"`
}

// LearningResource is the final rendered document plus metadata.
type LearningResource struct {
	Success   bool             `json:"success"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Metadata  ResourceMetadata `json:"metadata"`
}

// GenerateResourceRequest carries everything the resource pipeline needs for
// one request.
type GenerateResourceRequest struct {
	StudentAge    int
	AETTarget     string
	Context       string
	AbilityLevel  string
	FormatType    string
	VisualSupport bool
	TextLevel     string
	StudentName   string
	Interests     []string
}

// StudentInfo echoes back the student details used for personalization.
type StudentInfo struct {
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Interests []string `json:"interests"`
}

// ActivityRecommendation is the structured (non-markdown) output of the
// predict-and-generate path: classification plus the personalized activity.
type ActivityRecommendation struct {
	Success     bool                  `json:"success"`
	Prediction  *ClassificationResult `json:"prediction"`
	Activity    *PersonalizedActivity `json:"activity"`
	GeneratedAt time.Time             `json:"generated_at"`
	StudentInfo StudentInfo           `json:"student_info"`
}

// Condition names are a fixed, label-indexed table.
const (
	conditionStruggling  = "Struggling - Needs Immediate Support"
	conditionProgressing = "Progressing - Needs Continued Support"
	conditionThriving    = "Thriving - Ready for Next Level"
)

func conditionName(label int) string {
	switch label {
	case 0:
		return conditionStruggling
	case 1:
		return conditionProgressing
	default:
		return conditionThriving
	}
}

// Canonical advice used when the model artifact ships without an advice map.
func defaultAdvice(label int) string {
	switch label {
	case 0:
		return "Provide immediate support and calming strategies"
	case 1:
		return "Continue with guided practice and visual supports"
	default:
		return "Ready for more challenging independent activities"
	}
}
