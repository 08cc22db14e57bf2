package recommend

import (
	"fmt"
	"strings"
	"time"
)

// Non-model activity generation. Used when the trained model is unavailable
// or classification fails on the activity-request path; buckets are keyed on
// the target text and adjusted for known interests.

type fallbackActivity struct {
	Name        string
	Description string
	Materials   []string
	Steps       []string
	Duration    string
}

// FallbackActivities picks the activity bucket for a target without
// involving the model.
func FallbackActivities(target string, age int, abilityLevel string, interests []string) []fallbackActivity {
	lower := strings.ToLower(target)
	switch {
	case containsAny(lower, "count", "number", "math"):
		return mathActivities(age, interests)
	case containsAny(lower, "shape", "color", "sort"):
		return sortingActivities(interests)
	case containsAny(lower, "communication", "talk", "speak"):
		return communicationActivities()
	case containsAny(lower, "calm", "tantrum", "upset"):
		return calmingActivities()
	default:
		return generalActivities(age, abilityLevel)
	}
}

func hasInterest(interests []string, want string) bool {
	for _, i := range interests {
		if i == want {
			return true
		}
	}
	return false
}

func mathActivities(age int, interests []string) []fallbackActivity {
	if hasInterest(interests, "bears") {
		return []fallbackActivity{{
			Name:        "Counting Bears Adventure",
			Description: "Use teddy bear counters in favorite colors",
			Materials:   []string{"Teddy bear counters", "Ice cube trays", "Number cards 1-10"},
			Steps: []string{
				"Start with 5 colorful teddy bears",
				"Show how to place one bear in each ice cube compartment",
				"Count together: \"One bear, two bears, three bears...\"",
				"Let student try with 3 bears first, then build up",
				"Sing counting songs while placing bears",
			},
			Duration: "5-8 minutes",
		}}
	}
	return []fallbackActivity{{
		Name:        "Counting Practice",
		Description: fmt.Sprintf("Practice counting objects appropriate for age %d", age),
		Materials:   []string{"Objects to count", "Number cards"},
		Steps: []string{
			"Start with 3-5 objects",
			"Demonstrate one-to-one correspondence",
			"Count together slowly",
			"Let student try independently",
			"Gradually increase number of objects",
		},
		Duration: "5-8 minutes",
	}}
}

func sortingActivities(interests []string) []fallbackActivity {
	if hasInterest(interests, "cars") {
		return []fallbackActivity{{
			Name:        "Car Garage Sorting",
			Description: "Sort toy cars by color and size into garages",
			Materials:   []string{"Toy cars in different colors", "Small boxes as garages", "Labels"},
			Steps: []string{
				"Set up 4 \"garages\" (boxes) with color labels",
				"Start with 2 colors only",
				"Show: \"Red cars go in the red garage\"",
				"Let student touch and explore each car",
				"Gradually add more colors and sizes",
			},
			Duration: "6-10 minutes",
		}}
	}
	return []fallbackActivity{{
		Name:        "Shape and Color Sorting",
		Description: "Sort shapes by attributes",
		Materials:   []string{"Foam shapes", "Sorting containers", "Visual labels"},
		Steps: []string{
			"Start with 2 shapes and 2 colors",
			"Demonstrate sorting by one attribute",
			"Let student practice with guidance",
			"Gradually increase complexity",
			"Celebrate successful sorting",
		},
		Duration: "5-8 minutes",
	}}
}

func communicationActivities() []fallbackActivity {
	return []fallbackActivity{{
		Name:        "Following Instructions Practice",
		Description: "Practice following 1-2 step instructions",
		Materials:   []string{"Visual instruction cards", "Simple objects", "Reward system"},
		Steps: []string{
			"Start with 1-step instructions",
			"Use visual supports with words",
			"Give clear, simple directions",
			"Wait for completion before next step",
			"Celebrate successful following",
		},
		Duration: "5-10 minutes",
	}}
}

func calmingActivities() []fallbackActivity {
	return []fallbackActivity{{
		Name:        "Calm Down Strategies",
		Description: "Practice self-regulation techniques",
		Materials:   []string{"Quiet space", "Comfort items", "Visual cues"},
		Steps: []string{
			"Create designated calm space",
			"Teach deep breathing with visual cues",
			"Offer comfort items or fidgets",
			"Practice when student is calm first",
			"Use during actual upset moments",
		},
		Duration: "3-10 minutes as needed",
	}}
}

func generalActivities(age int, abilityLevel string) []fallbackActivity {
	return []fallbackActivity{{
		Name:        "Skill Building Activity",
		Description: fmt.Sprintf("Age-appropriate activity for %d-year-old at %s level", age, abilityLevel),
		Materials:   []string{"Age-appropriate materials", "Visual supports"},
		Steps: []string{
			"Present clear, simple task",
			"Provide appropriate level of support",
			"Break into manageable steps",
			"Celebrate progress and effort",
			"Adjust difficulty as needed",
		},
		Duration: "5-10 minutes",
	}}
}

// RenderFallbackActivities formats the bucketed activities as a learning
// resource document. now is passed in so the caller controls the timestamp.
func RenderFallbackActivities(activities []fallbackActivity, target string, age int, abilityLevel string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, `# Learning Activities: %s

**Created:** %s
**Student Age:** %d
**Ability Level:** %s
**Format:** Specific Activities

---

## Learning Objective
%s

## Age-Appropriate Activities (Age %d):

`, target, now.Format("2006-01-02 15:04"), age, titleCase(abilityLevel), target, age)

	for i, a := range activities {
		fmt.Fprintf(&b, "### Activity %d: %s\n**Description:** %s\n\n**Materials Needed:**\n", i+1, a.Name, a.Description)
		for _, m := range a.Materials {
			fmt.Fprintf(&b, "• %s\n", m)
		}
		fmt.Fprintf(&b, "\n**Duration:** %s\n\n**Steps:**\n", a.Duration)
		for j, s := range a.Steps {
			fmt.Fprintf(&b, "%d. %s\n", j+1, s)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `## Differentiation for %s Level:
• Provide additional visual supports as needed
• Break tasks into smaller steps if necessary
• Allow extra processing time
• Offer multiple ways to demonstrate understanding

## Assessment:
• Observe student engagement and participation
• Note progress toward learning objective
• Document successful strategies for future use
• Plan next steps based on student response

## Teacher Notes:
• Maintain predictable routine and structure
• Use student's interests when possible (incorporated above)
• Provide positive reinforcement frequently
• Allow for sensory breaks as needed
• Adjust activities based on student's daily needs

---

*Generated by TeachSmart Trained Model*`, titleCase(abilityLevel))

	return b.String()
}
