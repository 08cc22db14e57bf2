package recommend

import (
	"fmt"
	"strings"
)

// RenderMappedActivity produces the full markdown document for one matched,
// personalized activity. The output is deterministic: same inputs, same
// bytes. No timestamps or random content appear in the body.
func RenderMappedActivity(a *PersonalizedActivity, res *ClassificationResult, target string, age int, abilityLevel string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `# Learning Resource: %s

**Student Age:** %d years
**Ability Level:** %s
**Duration:** %s

## Recommended Activity: %s

**Description:** %s

### Materials Required:
`, target, age, titleCase(abilityLevel), a.Duration, a.Name, a.Description)

	for i, material := range a.Materials {
		fmt.Fprintf(&b, "%d. %s\n", i+1, material)
	}

	b.WriteString("\n### Implementation Steps:\n")
	for i, step := range a.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	if a.Personalization != "" {
		fmt.Fprintf(&b, "\n### Personalization Notes:\n• %s\n", a.Personalization)
	}
	if a.AgeNote != "" {
		fmt.Fprintf(&b, "• %s\n", a.AgeNote)
	}

	b.WriteString(`
### Assessment Criteria:
• Student demonstrates engagement and participation
• Student follows instructions with appropriate support level
• Student shows progress toward learning objective
• Student maintains appropriate emotional regulation

### Differentiation Options:

**For Emerging Level:**
• Provide additional visual supports and physical guidance
• Break tasks into smaller steps with extended processing time

**For Developing Level:**
• Use visual supports with moderate guidance
• Encourage gradual independence with gentle prompts

**For Extending Level:**
• Add complexity and encourage peer teaching
• Include problem-solving and creative variations

`)

	fmt.Fprintf(&b, `### AI Model Assessment:
**Predicted Condition:** %s
**Confidence:** %.0f%%
**Recommendation:** %s

**Assessment Probabilities:**
- Struggling: %.1f%%
- Needs Support: %.1f%%
- Doing Well: %.1f%%

*Generated by TeachSmart AI Model*`,
		res.Condition,
		res.Confidence*100,
		res.Advice,
		res.Probabilities.Struggling*100,
		res.Probabilities.NeedsSupport*100,
		res.Probabilities.DoingWell*100,
	)

	return b.String()
}

// FormatResource wraps generated content with a display header and footer.
// Mapped activities are already complete documents and pass through as-is.
func FormatResource(r *LearningResource) string {
	if r == nil || !r.Success {
		return "Error: Unable to format resource"
	}
	if r.Metadata.FormatType == "mapped_activity" || r.Metadata.ResponseType == "greeting" {
		return r.Content
	}

	return fmt.Sprintf(`# Learning Resource

**Created:** %s
**Student Age:** %d
**Ability Level:** %s

---

%s

---

*Generated by TeachSmart AI Model*
`, r.Timestamp.Format("2006-01-02T15:04:05Z07:00"), r.Metadata.StudentAge, r.Metadata.AbilityLevel, r.Content)
}
