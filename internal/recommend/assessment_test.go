package recommend

import "testing"

func TestSampleAssessment(t *testing.T) {
	cases := []struct {
		name     string
		ability  string
		target   string
		wantNote string
	}{
		{
			name:     "behavioral_indicators_override_ability",
			ability:  "extending",
			target:   "help with tantrum during transitions",
			wantNote: "anak tantrum dan tidak bisa konsentrasi",
		},
		{
			name:     "turn_taking_emerging",
			ability:  "emerging",
			target:   "how do I teach turn-taking",
			wantNote: "student needs help with turn-taking and sharing activities",
		},
		{
			name:     "turn_taking_extending",
			ability:  "extending",
			target:   "turn taking with peers",
			wantNote: "student ready for advanced turn-taking and peer interaction challenges",
		},
		{
			name:     "turn_taking_developing",
			ability:  "developing",
			target:   "sharing activities",
			wantNote: "student learning turn-taking with visual supports and sharing activities",
		},
		{
			name:     "support_keywords",
			ability:  "developing",
			target:   "needs support with instructions",
			wantNote: "anak membutuhkan bantuan untuk memahami instruksi",
		},
		{
			name:     "independence_keywords",
			ability:  "developing",
			target:   "ready for independent work",
			wantNote: "anak dapat mengikuti instruksi dengan baik dan mandiri",
		},
		{
			name:     "default_emerging",
			ability:  "emerging",
			target:   "counting activities",
			wantNote: "anak membutuhkan bantuan ekstra untuk memahami",
		},
		{
			name:     "default_extending",
			ability:  "extending",
			target:   "counting activities",
			wantNote: "anak siap untuk tantangan yang lebih kompleks",
		},
		{
			name:     "default_developing",
			ability:  "developing",
			target:   "counting activities",
			wantNote: "anak mulai memahami dengan bantuan visual",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SampleAssessment(tc.ability, tc.target)
			if got.Note != tc.wantNote {
				t.Fatalf("note=%q, want %q", got.Note, tc.wantNote)
			}
		})
	}
}

func TestSampleAssessmentOrdinalProfiles(t *testing.T) {
	emerging := SampleAssessment("emerging", "counting")
	if emerging.Value1 != "salah" || emerging.Value2 != "salah" || emerging.Value3 != "benar" {
		t.Fatalf("emerging profile=%+v", emerging)
	}

	extending := SampleAssessment("extending", "counting")
	if extending.Value1 != "benar" || extending.Value2 != "benar" || extending.Value3 != "benar" {
		t.Fatalf("extending profile=%+v", extending)
	}
}
