package recommend

import (
	"fmt"
	"strings"
)

// Personalize adapts a matched template to one student. The passes run in a
// fixed order (name, age, interests) so the output is deterministic for a
// given input. The template is copied up front; the rule table stays pristine.
func Personalize(tpl ActivityTemplate, pattern string, label int, name string, age int, interests []string) *PersonalizedActivity {
	out := &PersonalizedActivity{
		ActivityTemplate: cloneTemplate(tpl),
		MatchedPattern:   pattern,
		SourceLabel:      label,
	}

	applyName(out, name)
	applyAge(out, age)
	applyInterests(out, name, interests)
	return out
}

func applyName(a *PersonalizedActivity, name string) {
	if name == "" || name == "Student" {
		return
	}
	a.Description = fmt.Sprintf("For %s: %s", name, a.Description)
}

// Age bands: under 4 gets the shortest span regardless of the template's
// own duration; over 8 stretches the two common spans. Ages 4 through 8 use
// the template as authored.
func applyAge(a *PersonalizedActivity, age int) {
	if age <= 0 {
		return
	}
	switch {
	case age < 4:
		a.Duration = "2-5 minutes"
		a.AgeNote = "Shortened for younger student"
	case age > 8:
		switch a.Duration {
		case "5-8 minutes":
			a.Duration = "8-12 minutes"
		case "2-3 minutes":
			a.Duration = "5-8 minutes"
		}
		a.AgeNote = "Extended for older student"
	}
}

func applyInterests(a *PersonalizedActivity, name string, interests []string) {
	if len(interests) == 0 {
		return
	}

	who := name
	if who == "" {
		who = "Student"
	}
	a.Personalization = fmt.Sprintf("Incorporate %s's interests: %s", who, strings.Join(interests, ", "))

	for _, interest := range interests {
		switch strings.ToLower(interest) {
		case "bears", "teddy bears", "teddy":
			for i, m := range a.Materials {
				a.Materials[i] = strings.ReplaceAll(m, "objects", "teddy bear counters")
			}
		case "cars", "vehicles":
			a.Materials = append(a.Materials, "Toy cars for motivation")
			if a.Name == "Focus Basket Activity" {
				a.Name = "Car Garage Sorting"
				a.Description = strings.ReplaceAll(a.Description, "objects", "toy cars")
			}
		case "animals", "pets":
			a.Materials = append(a.Materials, "Animal figures or pictures")
		case "music", "songs":
			a.Materials = append(a.Materials, "Background music or songs")
			if strings.Contains(strings.ToLower(a.Name), "counting") {
				a.Steps = append(a.Steps, "Sing counting songs together")
			}
		}
	}
}
