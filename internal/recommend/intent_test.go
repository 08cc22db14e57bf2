package recommend

import (
	"reflect"
	"testing"
)

func TestIsGreeting(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{name: "hello", in: "hello", want: true},
		{name: "hello_bang", in: "Hello!", want: true},
		{name: "indonesian_halo", in: "halo", want: true},
		{name: "good_morning", in: "Good morning", want: true},
		{name: "padded_whitespace", in: "  hi  ", want: true},
		{name: "wrapped_teacher_question", in: "Teacher question: hello", want: true},
		{name: "wrapped_for_student", in: "For student Amara: hi!", want: true},
		{name: "greeting_plus_request_is_not_greeting", in: "hello, I need counting activities", want: false},
		{name: "plain_target", in: "Can count to ten", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsGreeting(tc.in); got != tc.want {
				t.Fatalf("IsGreeting(%q)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRandomGreetingUsesPick(t *testing.T) {
	got := RandomGreeting(func(n int) int { return 0 })
	if got != "Hello! How can I assist you today?" {
		t.Fatalf("unexpected greeting: %q", got)
	}
}

func TestIsActivityRequest(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{name: "activities", in: "What activities can help with counting?", want: true},
		{name: "indonesian_kegiatan", in: "kegiatan untuk berhitung", want: true},
		{name: "how_do_i_teach", in: "How do I teach turn-taking?", want: true},
		{name: "sharing", in: "Sharing with peers", want: true},
		{name: "plain_objective", in: "Can identify basic emotions", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsActivityRequest(tc.in); got != tc.want {
				t.Fatalf("IsActivityRequest(%q)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractStudentName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "for_name", in: "activities for Amara with counting", want: "Amara"},
		{name: "student_name", in: "student Budi needs help", want: "Budi"},
		{name: "name_will", in: "Citra will practice sharing", want: "Citra"},
		{name: "name_age_paren", in: "Amara 6 (5 years old)", want: "Amara"},
		{name: "no_name", in: "activities for counting practice", want: "Student"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractStudentName(tc.in); got != tc.want {
				t.Fatalf("ExtractStudentName(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractInterests(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single", in: "she loves teddy bears", want: []string{"bears"}},
		{name: "multiple_in_scan_order", in: "likes music and toy cars", want: []string{"cars", "music"}},
		{name: "none", in: "counting practice", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractInterests(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractInterests(%q)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
