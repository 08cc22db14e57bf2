package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/teachsmart-backend/internal/logger"
	"github.com/yungbote/teachsmart-backend/internal/recommend"
	"github.com/yungbote/teachsmart-backend/internal/repos"
	"github.com/yungbote/teachsmart-backend/internal/types"
)

// ActivityRequest is the structured input for the direct prediction-plus-
// activity path. Unlike resource generation, the assessment comes from the
// caller instead of being synthesized from the target text.
type ActivityRequest struct {
	Assessment  recommend.AssessmentInput
	StudentName string
	StudentAge  int
	Interests   []string
}

type ResourceService interface {
	GenerateLearningResource(ctx context.Context, req recommend.GenerateResourceRequest) (*recommend.LearningResource, error)
	PredictStudentProgress(ctx context.Context, in recommend.AssessmentInput) (*recommend.ClassificationResult, error)
	GenerateActivity(ctx context.Context, req ActivityRequest) (*recommend.ActivityRecommendation, error)
	AETTargets() map[string][]string
	ModelAvailable() bool
}

type resourceService struct {
	log   *logger.Logger
	pred  *recommend.Predictor
	rules *recommend.RuleTable

	// nil disables audit logging
	logs repos.ResourceLogRepo

	pick func(n int) int
	now  func() time.Time
}

// NewResourceService wires the generation pipeline. logsRepo may be nil when
// no database is configured; pick and now are injectable for tests and
// default to the obvious implementations when nil.
func NewResourceService(
	baseLog *logger.Logger,
	pred *recommend.Predictor,
	rules *recommend.RuleTable,
	logsRepo repos.ResourceLogRepo,
	pick func(n int) int,
	now func() time.Time,
) ResourceService {
	if now == nil {
		now = time.Now
	}
	return &resourceService{
		log:   baseLog.With("service", "ResourceService"),
		pred:  pred,
		rules: rules,
		logs:  logsRepo,
		pick:  pick,
		now:   now,
	}
}

func (s *resourceService) ModelAvailable() bool {
	return s.pred.Available()
}

func (s *resourceService) GenerateLearningResource(ctx context.Context, req recommend.GenerateResourceRequest) (*recommend.LearningResource, error) {
	if req.StudentAge <= 0 {
		req.StudentAge = 8
	}
	if req.AbilityLevel == "" {
		req.AbilityLevel = "developing"
	}
	if req.FormatType == "" {
		req.FormatType = "worksheet"
	}

	if recommend.IsGreeting(req.AETTarget) {
		return &recommend.LearningResource{
			Success:   true,
			Content:   recommend.RandomGreeting(s.pick),
			Timestamp: s.now(),
			Metadata: recommend.ResourceMetadata{
				ModelAvailable: s.pred.Available(),
				ResponseType:   "greeting",
				Provider:       "TeachSmart Trained Model",
			},
		}, nil
	}

	if recommend.IsActivityRequest(req.AETTarget) {
		return s.generateActivityResource(ctx, req), nil
	}

	content := recommend.TopicContent(req.AETTarget, req.StudentAge, req.AbilityLevel)
	if s.pred.Available() {
		res, err := s.pred.Classify(recommend.InsightAssessment(req.AbilityLevel))
		if err != nil {
			s.log.Warn("Model insights unavailable", "error", err)
			res = nil
		}
		content += recommend.ModelInsights(res)
	}

	out := &recommend.LearningResource{
		Success:   true,
		Content:   content,
		Timestamp: s.now(),
		Metadata: recommend.ResourceMetadata{
			StudentAge:     req.StudentAge,
			AETTarget:      req.AETTarget,
			AbilityLevel:   req.AbilityLevel,
			FormatType:     req.FormatType,
			ModelAvailable: s.pred.Available(),
		},
	}
	s.audit(ctx, "topic_content", out.Metadata)
	return out, nil
}

// generateActivityResource handles targets that ask for concrete activities.
// The model path classifies a synthesized assessment and maps it through the
// rule table; any classification failure falls back to the non-model buckets
// rather than erroring out.
func (s *resourceService) generateActivityResource(ctx context.Context, req recommend.GenerateResourceRequest) *recommend.LearningResource {
	name := req.StudentName
	if name == "" {
		name = recommend.ExtractStudentName(req.AETTarget)
	}
	interests := req.Interests
	if len(interests) == 0 {
		interests = recommend.ExtractInterests(req.AETTarget)
	}

	sample := recommend.SampleAssessment(req.AbilityLevel, req.AETTarget)

	if s.pred.Available() {
		res, err := s.pred.Classify(sample)
		if err != nil {
			s.log.Warn("Activity classification failed, using rule-based fallback", "error", err)
		} else {
			tpl, pattern := s.rules.Match(res.Label, sample.Note)
			act := recommend.Personalize(tpl, pattern, res.Label, name, req.StudentAge, interests)
			label := res.Label
			out := &recommend.LearningResource{
				Success:   true,
				Content:   recommend.RenderMappedActivity(act, res, req.AETTarget, req.StudentAge, req.AbilityLevel),
				Timestamp: s.now(),
				Metadata: recommend.ResourceMetadata{
					StudentAge:      req.StudentAge,
					AETTarget:       req.AETTarget,
					AbilityLevel:    req.AbilityLevel,
					FormatType:      "mapped_activity",
					ModelAvailable:  true,
					ActivityType:    act.Type,
					PredictionLabel: &label,
				},
			}
			s.audit(ctx, "mapped_activity", out.Metadata)
			return out
		}
	}

	activities := recommend.FallbackActivities(req.AETTarget, req.StudentAge, req.AbilityLevel, interests)
	out := &recommend.LearningResource{
		Success:   true,
		Content:   recommend.RenderFallbackActivities(activities, req.AETTarget, req.StudentAge, req.AbilityLevel, s.now()),
		Timestamp: s.now(),
		Metadata: recommend.ResourceMetadata{
			StudentAge:     req.StudentAge,
			AETTarget:      req.AETTarget,
			AbilityLevel:   req.AbilityLevel,
			FormatType:     "specific_activities",
			ModelAvailable: s.pred.Available(),
		},
	}
	s.audit(ctx, "specific_activities", out.Metadata)
	return out
}

func (s *resourceService) PredictStudentProgress(ctx context.Context, in recommend.AssessmentInput) (*recommend.ClassificationResult, error) {
	if in.Value1 == "" {
		in.Value1 = "salah"
	}
	if in.Value2 == "" {
		in.Value2 = "salah"
	}
	if in.Value3 == "" {
		in.Value3 = "salah"
	}
	return s.pred.Classify(in)
}

func (s *resourceService) GenerateActivity(ctx context.Context, req ActivityRequest) (*recommend.ActivityRecommendation, error) {
	res, err := s.pred.Classify(req.Assessment)
	if err != nil {
		return nil, err
	}

	name := req.StudentName
	if name == "" {
		name = "Student"
	}
	age := req.StudentAge
	if age <= 0 {
		age = 5
	}
	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}

	tpl, pattern := s.rules.Match(res.Label, req.Assessment.Note)
	act := recommend.Personalize(tpl, pattern, res.Label, name, age, interests)

	label := res.Label
	s.audit(ctx, "generate_activity", recommend.ResourceMetadata{
		StudentAge:      age,
		ModelAvailable:  true,
		ActivityType:    act.Type,
		PredictionLabel: &label,
	})

	return &recommend.ActivityRecommendation{
		Success:     true,
		Prediction:  res,
		Activity:    act,
		GeneratedAt: s.now(),
		StudentInfo: recommend.StudentInfo{
			Name:      name,
			Age:       age,
			Interests: interests,
		},
	}, nil
}

func (s *resourceService) AETTargets() map[string][]string {
	return map[string][]string{
		"communication": {
			"Can identify and name basic emotions in self and others",
			"Uses appropriate greetings with familiar adults",
			"Follows simple two-step instructions",
			"Requests help when needed using words or gestures",
		},
		"social": {
			"Demonstrates turn-taking in group activities",
			"Shares materials with peers when prompted",
			"Participates in simple group games",
			"Shows awareness of others' feelings",
		},
		"independence": {
			"Completes self-care tasks with minimal support",
			"Follows visual schedule for daily routines",
			"Organizes personal belongings",
			"Makes simple choices when offered options",
		},
	}
}

func (s *resourceService) audit(ctx context.Context, requestType string, meta recommend.ResourceMetadata) {
	if s.logs == nil {
		return
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		s.log.Warn("Failed to marshal resource log metadata", "error", err)
		return
	}
	row := &types.ResourceLog{
		RequestType:     requestType,
		AETTarget:       meta.AETTarget,
		StudentAge:      meta.StudentAge,
		AbilityLevel:    meta.AbilityLevel,
		FormatType:      meta.FormatType,
		PredictionLabel: meta.PredictionLabel,
		ActivityType:    meta.ActivityType,
		ModelAvailable:  meta.ModelAvailable,
		Metadata:        datatypes.JSON(raw),
	}
	if _, err := s.logs.Create(ctx, nil, []*types.ResourceLog{row}); err != nil {
		s.log.Warn("Failed to write resource log", "error", err)
	}
}
