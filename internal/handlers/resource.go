package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/teachsmart-backend/internal/logger"
	"github.com/yungbote/teachsmart-backend/internal/recommend"
	"github.com/yungbote/teachsmart-backend/internal/services"
)

type ResourceHandler struct {
	log     *logger.Logger
	service services.ResourceService
}

func NewResourceHandler(baseLog *logger.Logger, service services.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		log:     baseLog.With("handler", "ResourceHandler"),
		service: service,
	}
}

// The chat frontend sends camelCase keys while the assessment tooling sends
// snake_case; both spellings are accepted, snake_case winning when both are
// present.
type generateResourceRequest struct {
	StudentAge      *int     `json:"student_age"`
	StudentAgeAlt   *int     `json:"studentAge"`
	AETTarget       string   `json:"aet_target"`
	AETTargetAlt    string   `json:"aetTarget"`
	Context         string   `json:"context"`
	LearningContext string   `json:"learningContext"`
	AbilityLevel    string   `json:"ability_level"`
	AbilityLevelAlt string   `json:"abilityLevel"`
	Format          string   `json:"format"`
	VisualSupport   *bool    `json:"visual_support"`
	VisualSupportA  *bool    `json:"visualSupport"`
	TextLevel       string   `json:"text_level"`
	TextLevelAlt    string   `json:"textLevel"`
	StudentName     string   `json:"student_name"`
	Interests       []string `json:"interests"`
}

func firstString(a, b, def string) string {
	if a != "" {
		return a
	}
	if b != "" {
		return b
	}
	return def
}

func (r *generateResourceRequest) toDomain() recommend.GenerateResourceRequest {
	out := recommend.GenerateResourceRequest{
		StudentAge:    8,
		AETTarget:     firstString(r.AETTarget, r.AETTargetAlt, ""),
		Context:       firstString(r.Context, r.LearningContext, "Classroom setting"),
		AbilityLevel:  firstString(r.AbilityLevel, r.AbilityLevelAlt, "developing"),
		FormatType:    firstString(r.Format, "", "worksheet"),
		VisualSupport: true,
		TextLevel:     firstString(r.TextLevel, r.TextLevelAlt, "simple"),
		StudentName:   r.StudentName,
		Interests:     r.Interests,
	}
	if r.StudentAge != nil {
		out.StudentAge = *r.StudentAge
	} else if r.StudentAgeAlt != nil {
		out.StudentAge = *r.StudentAgeAlt
	}
	if r.VisualSupport != nil {
		out.VisualSupport = *r.VisualSupport
	} else if r.VisualSupportA != nil {
		out.VisualSupport = *r.VisualSupportA
	}
	return out
}

func (h *ResourceHandler) GenerateResource(c *gin.Context) {
	var req generateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	domainReq := req.toDomain()
	h.log.Info("Generating resource", "age", domainReq.StudentAge, "target", domainReq.AETTarget)

	resource, err := h.service.GenerateLearningResource(c.Request.Context(), domainReq)
	if err != nil {
		h.log.Error("Failed to generate resource", "error", err)
		RespondError(c, http.StatusInternalServerError, "generation_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"success": true,
		"content": recommend.FormatResource(resource),
		"metadata": gin.H{
			"generatedAt":  resource.Timestamp,
			"targetAge":    domainReq.StudentAge,
			"abilityLevel": domainReq.AbilityLevel,
			"format":       domainReq.FormatType,
			"aetTarget":    domainReq.AETTarget,
			"provider":     "Trained Chatbot Model",
		},
	})
}

func (h *ResourceHandler) PredictStudent(c *gin.Context) {
	var in recommend.AssessmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := h.service.PredictStudentProgress(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, recommend.ErrModelUnavailable) {
			RespondOK(c, gin.H{"success": false, "error": err.Error()})
			return
		}
		h.log.Error("Prediction failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "prediction_failed", err)
		return
	}

	RespondOK(c, gin.H{"success": true, "prediction": result})
}

type generateActivityRequest struct {
	recommend.AssessmentInput

	StudentName string   `json:"student_name"`
	StudentAge  int      `json:"student_age"`
	Interests   []string `json:"interests"`
}

func (h *ResourceHandler) GenerateActivity(c *gin.Context) {
	var req generateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	rec, err := h.service.GenerateActivity(c.Request.Context(), services.ActivityRequest{
		Assessment:  req.AssessmentInput,
		StudentName: req.StudentName,
		StudentAge:  req.StudentAge,
		Interests:   req.Interests,
	})
	if err != nil {
		if errors.Is(err, recommend.ErrModelUnavailable) {
			RespondError(c, http.StatusServiceUnavailable, "model_unavailable", err)
			return
		}
		h.log.Error("Activity generation failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "generation_failed", err)
		return
	}

	RespondOK(c, rec)
}

func (h *ResourceHandler) GetAETTargets(c *gin.Context) {
	RespondOK(c, gin.H{
		"success": true,
		"targets": h.service.AETTargets(),
	})
}
