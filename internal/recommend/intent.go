package recommend

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// Bare greetings short-circuit the whole pipeline; the chat interface also
// wraps targets as "teacher question: ..." or "for student X: ...", so those
// wrappers are recognized too.
var greetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^hello\s*[!.?]*$`),
	regexp.MustCompile(`^hi\s*[!.?]*$`),
	regexp.MustCompile(`^hey\s*[!.?]*$`),
	regexp.MustCompile(`^good morning\s*[!.?]*$`),
	regexp.MustCompile(`^good afternoon\s*[!.?]*$`),
	regexp.MustCompile(`^good evening\s*[!.?]*$`),
	regexp.MustCompile(`^halo\s*[!.?]*$`),
	regexp.MustCompile(`^hai\s*[!.?]*$`),
	regexp.MustCompile(`^teacher question:\s*(hello|hi|hey|good morning|good afternoon|good evening|halo|hai)\s*[!.?]*$`),
	regexp.MustCompile(`^for student .+:\s*(hello|hi|hey|good morning|good afternoon|good evening|halo|hai)\s*[!.?]*$`),
}

// IsGreeting reports whether the target text is a bare greeting with no
// teaching request attached.
func IsGreeting(target string) bool {
	t := strings.TrimSpace(strings.ToLower(target))
	for _, re := range greetingPatterns {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

var greetingResponses = []string{
	"Hello! How can I assist you today?",
	"Hi there! I'm here to help you create educational resources for students with autism. What would you like to work on?",
	"Good day! I'm TeachSmart, your AI assistant for autism-friendly educational content. How can I help you today?",
	"Hello! I'm ready to help you create personalized learning activities. What's your teaching goal today?",
	"Hi! I'm here to support you with autism-friendly educational resources. What can I help you with?",
}

// RandomGreeting picks one canned greeting response. pick is injectable for
// tests; nil uses the package-level PRNG.
func RandomGreeting(pick func(n int) int) string {
	if pick == nil {
		pick = rand.IntN
	}
	return greetingResponses[pick(len(greetingResponses))]
}

var activityKeywords = []string{
	"activities", "activity", "kegiatan", "latihan",
	"what can i do", "how can i help", "suggestions",
	"ideas", "strategies", "exercises",
	"how do i teach", "how to teach", "teaching",
	"turn-taking", "turn taking", "sharing", "social skills",
}

// IsActivityRequest reports whether the target asks for concrete activity
// suggestions rather than general topic content.
func IsActivityRequest(target string) bool {
	t := strings.ToLower(target)
	for _, kw := range activityKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// Name extraction looks for capitalized names in phrasings like "for Amara",
// "Amara will", or "Amara 6 (5 years old)". Case matters here, unlike the
// rest of the matching.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:for|student)\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`([A-Z][a-z]+)\s+(?:will|can|needs)`),
	regexp.MustCompile(`([A-Z][a-z]+)\s+\d+\s*\(`),
}

// ExtractStudentName pulls the student's name out of free text, falling back
// to the placeholder "Student".
func ExtractStudentName(text string) string {
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return "Student"
}

// Interest categories in a fixed scan order so output ordering is stable.
var interestCategories = []struct {
	name     string
	keywords []string
}{
	{"bears", []string{"bear", "teddy", "bears"}},
	{"cars", []string{"car", "vehicle", "truck", "cars"}},
	{"animals", []string{"animal", "pet", "dog", "cat", "animals"}},
	{"music", []string{"music", "song", "singing", "songs"}},
	{"colors", []string{"color", "colorful", "rainbow", "colors"}},
	{"blocks", []string{"block", "building", "lego", "blocks"}},
	{"books", []string{"book", "story", "reading", "books"}},
	{"art", []string{"art", "drawing", "painting", "craft"}},
}

// ExtractInterests finds known interest categories mentioned in the text.
func ExtractInterests(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, cat := range interestCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				found = append(found, cat.name)
				break
			}
		}
	}
	return found
}
