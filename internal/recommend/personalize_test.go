package recommend

import (
	"strings"
	"testing"
)

func baseTemplate() ActivityTemplate {
	return ActivityTemplate{
		Name:        "Counting Bears Adventure",
		Description: "Use teddy bear counters in favorite colors",
		Materials:   []string{"Teddy bear counters", "5 large colorful objects"},
		Steps:       []string{"Start with 5 colorful teddy bears"},
		Duration:    "5-8 minutes",
		Level:       "developing with support",
		Type:        "math_support",
	}
}

func TestPersonalizeNamePrefix(t *testing.T) {
	cases := []struct {
		name       string
		student    string
		wantPrefix bool
	}{
		{name: "real_name", student: "Amara", wantPrefix: true},
		{name: "placeholder_skipped", student: "Student", wantPrefix: false},
		{name: "empty_skipped", student: "", wantPrefix: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Personalize(baseTemplate(), "count", 1, tc.student, 5, nil)
			hasPrefix := strings.HasPrefix(got.Description, "For "+tc.student+": ")
			if hasPrefix != tc.wantPrefix {
				t.Fatalf("description=%q, wantPrefix=%v", got.Description, tc.wantPrefix)
			}
		})
	}
}

func TestPersonalizeAgeBands(t *testing.T) {
	cases := []struct {
		name         string
		age          int
		wantDuration string
		wantNote     string
	}{
		{name: "age_3_shortened", age: 3, wantDuration: "2-5 minutes", wantNote: "Shortened for younger student"},
		{name: "age_4_unchanged", age: 4, wantDuration: "5-8 minutes", wantNote: ""},
		{name: "age_8_unchanged", age: 8, wantDuration: "5-8 minutes", wantNote: ""},
		{name: "age_9_extended", age: 9, wantDuration: "8-12 minutes", wantNote: "Extended for older student"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Personalize(baseTemplate(), "count", 1, "Amara", tc.age, nil)
			if got.Duration != tc.wantDuration {
				t.Fatalf("duration=%q, want %q", got.Duration, tc.wantDuration)
			}
			if got.AgeNote != tc.wantNote {
				t.Fatalf("age note=%q, want %q", got.AgeNote, tc.wantNote)
			}
		})
	}
}

func TestPersonalizeOlderStudentShortDuration(t *testing.T) {
	tpl := baseTemplate()
	tpl.Duration = "2-3 minutes"

	got := Personalize(tpl, "count", 1, "Amara", 10, nil)
	if got.Duration != "5-8 minutes" {
		t.Fatalf("duration=%q, want 5-8 minutes", got.Duration)
	}
}

func TestPersonalizeInterests(t *testing.T) {
	t.Run("note_lists_interests", func(t *testing.T) {
		got := Personalize(baseTemplate(), "count", 1, "Amara", 5, []string{"bears", "music"})
		want := "Incorporate Amara's interests: bears, music"
		if got.Personalization != want {
			t.Fatalf("personalization=%q, want %q", got.Personalization, want)
		}
	})

	t.Run("bears_replace_objects", func(t *testing.T) {
		got := Personalize(baseTemplate(), "count", 1, "Amara", 5, []string{"bears"})
		if got.Materials[1] != "5 large colorful teddy bear counters" {
			t.Fatalf("materials=%v, want objects replaced", got.Materials)
		}
	})

	t.Run("cars_rename_focus_basket", func(t *testing.T) {
		tpl := baseTemplate()
		tpl.Name = "Focus Basket Activity"
		tpl.Description = "Simple sorting task with objects"

		got := Personalize(tpl, "attention", 0, "", 5, []string{"cars"})
		if got.Name != "Car Garage Sorting" {
			t.Fatalf("name=%q, want Car Garage Sorting", got.Name)
		}
		if !strings.Contains(got.Description, "toy cars") {
			t.Fatalf("description=%q, want toy cars substitution", got.Description)
		}
		if got.Materials[len(got.Materials)-1] != "Toy cars for motivation" {
			t.Fatalf("materials=%v, want toy cars appended", got.Materials)
		}
	})

	t.Run("music_adds_counting_step", func(t *testing.T) {
		got := Personalize(baseTemplate(), "count", 1, "Amara", 5, []string{"music"})
		last := got.Steps[len(got.Steps)-1]
		if last != "Sing counting songs together" {
			t.Fatalf("steps=%v, want counting song step appended", got.Steps)
		}
	})

	t.Run("animals_append_materials", func(t *testing.T) {
		got := Personalize(baseTemplate(), "count", 1, "Amara", 5, []string{"animals"})
		last := got.Materials[len(got.Materials)-1]
		if last != "Animal figures or pictures" {
			t.Fatalf("materials=%v, want animal figures appended", got.Materials)
		}
	})
}

func TestPersonalizeDoesNotMutateInput(t *testing.T) {
	tpl := baseTemplate()
	_ = Personalize(tpl, "count", 1, "Amara", 5, []string{"bears", "animals"})

	if tpl.Materials[1] != "5 large colorful objects" {
		t.Fatalf("input template mutated: %v", tpl.Materials)
	}
	if len(tpl.Materials) != 2 {
		t.Fatalf("input materials grew: %v", tpl.Materials)
	}
}

func TestPersonalizeProvenance(t *testing.T) {
	got := Personalize(baseTemplate(), "count|counting|numbers|math", 1, "Amara", 5, nil)
	if got.MatchedPattern != "count|counting|numbers|math" {
		t.Fatalf("matched pattern=%q", got.MatchedPattern)
	}
	if got.SourceLabel != 1 {
		t.Fatalf("source label=%d, want 1", got.SourceLabel)
	}
}
