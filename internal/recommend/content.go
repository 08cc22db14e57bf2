package recommend

import (
	"fmt"
	"strings"
)

// TopicContent produces the educational content page for non-activity
// requests. Meltdown and focus targets get dedicated pages; everything else
// gets the generic implementation framework.
func TopicContent(target string, age int, abilityLevel string) string {
	lower := strings.ToLower(target)
	switch {
	case strings.Contains(lower, "meltdown") || strings.Contains(lower, "tantrum"):
		return meltdownContent
	case strings.Contains(lower, "focus") || strings.Contains(lower, "attention") || strings.Contains(lower, "concentrate"):
		return focusContent
	default:
		return genericContent(target, age, abilityLevel)
	}
}

// ModelInsights renders the classification appendix attached to topic
// content. res may be nil when classification failed; the section then notes
// the insights are unavailable rather than being dropped.
func ModelInsights(res *ClassificationResult) string {
	if res == nil {
		return "\n\n## AI Model Insights\n*Model insights unavailable for this request.*"
	}
	return fmt.Sprintf(`

## AI Model Insights

**Predicted Student Condition:** %s
**Confidence Level:** %.1f%%

**Recommended Approach:**
%s

**Assessment Probabilities:**
- Struggling: %.1f%%
- Needs Support: %.1f%%
- Doing Well: %.1f%%

*These insights are generated by your trained autism therapy prediction model.*
`,
		res.Condition,
		res.Confidence*100,
		res.Advice,
		res.Probabilities.Struggling*100,
		res.Probabilities.NeedsSupport*100,
		res.Probabilities.DoingWell*100,
	)
}

func genericContent(target string, age int, abilityLevel string) string {
	return fmt.Sprintf(`# Learning Resource: %s

**Student Age:** %d years
**Ability Level:** %s

## Learning Objective
%s

## Implementation Activities:

### Activity 1: Introduction
- Provide clear explanation with visual supports
- Demonstrate step-by-step process
- Allow practice opportunities

### Activity 2: Guided Practice
- Offer teacher support as needed
- Encourage appropriate peer interaction
- Provide multiple ways to demonstrate understanding

### Activity 3: Independent Practice
- Allow student to work at individual pace
- Offer choices in demonstration methods
- Ensure success criteria are clearly defined

## Assessment Guidelines:
- Observe student engagement and participation
- Document progress toward stated objective
- Note effective strategies for future reference
- Plan appropriate next steps based on outcomes

## Implementation Notes:
- Maintain consistent, predictable routines
- Incorporate student interests when possible
- Provide positive reinforcement regularly
- Allow for sensory breaks as needed`, target, age, titleCase(abilityLevel), target)
}

const meltdownContent = `# Meltdown Management: Professional Guidelines

## Understanding Meltdowns
Meltdowns are neurological responses to overwhelming situations, distinct from behavioral tantrums.

## Immediate Response Protocol:

### 1. Maintain Calm
- Use low, steady voice tone
- Avoid sudden movements
- Remain objective and professional

### 2. Ensure Safety
- Clear potential hazards from area
- Provide appropriate physical space
- Remove or reduce environmental triggers

### 3. Reduce Stimulation
- Lower lighting when possible
- Minimize noise levels
- Reduce visual distractions
- Offer noise-reducing equipment if available

## During Meltdown:

**Appropriate Actions:**
- Remain nearby while respecting personal space
- Use simple, calm language
- Offer comfort items when appropriate
- Allow natural progression of episode

**Actions to Avoid:**
- Attempting reasoning or negotiation
- Physical contact without permission
- Raising voice or showing frustration
- Making demands or giving instructions

## Post-Meltdown Recovery:

- Allow adequate recovery time
- Offer water or preferred snack
- Provide quiet environment
- Check in appropriately: "How are you feeling?"

## Professional Considerations:
- Document incidents for pattern analysis
- Meltdowns indicate communication of overwhelm
- Recovery requires patience and understanding
- Individual strategies may require adjustment`

const focusContent = `# Attention and Focus: Educational Strategies

## Understanding Attention Challenges
Students with autism may experience focus difficulties due to sensory processing differences, executive function challenges, and difficulty filtering environmental distractions.

## Environmental Modifications:
- Minimize visual clutter and distractions
- Maintain consistent seating arrangements
- Provide designated quiet work areas
- Reduce background noise levels
- Utilize natural lighting when available

## Instructional Strategies:
- Break tasks into manageable components
- Use visual schedules and timing devices
- Provide clear, single-step instructions
- Incorporate movement breaks every 15-20 minutes
- Integrate student interests to maintain engagement

## Attention-Building Activities:
- Begin with 2-3 minute focused activities
- Use highly preferred activities initially
- Gradually increase duration based on success
- Incorporate appropriate sensory supports

## Behavioral Support Framework:
- Define and model attention behaviors
- Implement positive reinforcement systems
- Provide visual cues for attention expectations
- Develop self-monitoring tools for students

## Professional Considerations:
- Attention difficulties have neurological basis
- Individual attention profiles vary significantly
- Consistency and patience are essential
- Acknowledge and celebrate incremental progress`

// titleCase uppercases the first letter only, enough for ability levels
// like "developing". Not a general title-caser.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
