// Package signals derives secondary scores from resume text: structural quality, experience
// level, impact and AI proficiency. Every function is pure and safe to call concurrently.
package signals

import (
	"fmt"
	"regexp"
	"strings"
)

// Level is a coarse experience classification.
type Level string

const (
	LevelSenior    Level = "Senior Level"
	LevelMid       Level = "Mid Level"
	LevelJunior    Level = "Junior/Entry Level"
	LevelEstimated Level = "Entry Level (Estimated)"
)

const (
	minWords = 300
	maxWords = 1000
)

var (
	sectionKeywords = []string{"experience", "education", "skills", "projects", "summary", "objective"}

	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	metricPattern = regexp.MustCompile(`\d+%|\$\d+|\d+ users|\d+ years`)

	actionVerbs = []string{
		"achieved", "developed", "led", "managed", "created", "designed",
		"implemented", "optimized", "increased", "decreased", "saved", "generated",
	}

	// Checked in order, first bucket with a hit wins.
	levelBuckets = []struct {
		level    Level
		keywords []string
	}{
		{LevelSenior, []string{"senior", "lead", "manager", "principal", "architect", "5+ years", "6+ years", "7+ years", "8+ years", "9+ years", "10+ years"}},
		{LevelMid, []string{"mid-level", "mid level", "intermediate", "2+ years", "3+ years", "4+ years"}},
		{LevelJunior, []string{"junior", "associate", "intern", "fresher", "entry level", "graduate", "0-1 years"}},
	}
)

// Feedback messages.
const (
	FeedbackTooShort   = "Resume might be too short."
	FeedbackTooLong    = "Resume might be too long."
	FeedbackNoEmail    = "No email address found or format incorrect."
	FeedbackNoPhone    = "Phone number check failed (might be just formatting)."
	FeedbackFewVerbs   = "Use more strong action verbs (e.g., Led, Developed, Optimized)."
	FeedbackFewMetrics = "Quantify your achievements! (e.g., 'Increased efficiency by 20%')."
)

// Quality is the structural quality score of a resume.
type Quality struct {
	Score    int      `json:"score"`
	Words    int      `json:"words"`
	Sections []string `json:"sections"`
	Feedback []string `json:"feedback"`
}

// AnalyzeQuality scores length, section coverage, and contact details.
func AnalyzeQuality(text string) Quality {
	q := Quality{Feedback: []string{}, Sections: []string{}}
	score := 0.0

	q.Words = len(strings.Fields(text))
	switch {
	case q.Words >= minWords && q.Words <= maxWords:
		score += 20
	case q.Words < minWords:
		q.Feedback = append(q.Feedback, FeedbackTooShort)
	default:
		q.Feedback = append(q.Feedback, FeedbackTooLong)
	}

	lowered := strings.ToLower(text)
	var absent []string
	for _, section := range sectionKeywords {
		if strings.Contains(lowered, section) {
			q.Sections = append(q.Sections, section)
		} else {
			absent = append(absent, section)
		}
	}
	score += 40 * float64(len(q.Sections)) / float64(len(sectionKeywords))
	switch {
	case len(q.Sections) < 3:
		q.Feedback = append(q.Feedback, fmt.Sprintf("Consider adding more sections like: %s", strings.Join(absent, ", ")))
	case len(absent) > 0:
		q.Feedback = append(q.Feedback, fmt.Sprintf("Optional sections not found: %s", strings.Join(absent, ", ")))
	}

	if emailPattern.MatchString(text) {
		score += 20
	} else {
		q.Feedback = append(q.Feedback, FeedbackNoEmail)
	}

	if phonePattern.MatchString(text) {
		score += 20
	} else {
		q.Feedback = append(q.Feedback, FeedbackNoPhone)
	}

	q.Score = clamp(int(score), 0, 100)
	return q
}

// ExperienceLevel classifies text by seniority keywords.
func ExperienceLevel(text string) Level {
	lowered := strings.ToLower(text)
	for _, bucket := range levelBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lowered, kw) {
				return bucket.level
			}
		}
	}
	return LevelEstimated
}

// Impact is the action-verb and quantified-metric density of a resume.
type Impact struct {
	Score    int      `json:"score"`
	Verbs    int      `json:"verbs"`
	Metrics  int      `json:"metrics"`
	Feedback []string `json:"feedback"`
}

// AnalyzeImpact counts distinct action verbs present and metric-shaped phrases.
func AnalyzeImpact(text string) Impact {
	lowered := strings.ToLower(text)
	im := Impact{Feedback: []string{}}

	for _, verb := range actionVerbs {
		if strings.Contains(lowered, verb) {
			im.Verbs++
		}
	}
	im.Metrics = len(metricPattern.FindAllString(lowered, -1))
	im.Score = clamp(5*im.Verbs+10*im.Metrics, 0, 100)

	if im.Verbs < 3 {
		im.Feedback = append(im.Feedback, FeedbackFewVerbs)
	}
	if im.Metrics < 2 {
		im.Feedback = append(im.Feedback, FeedbackFewMetrics)
	}
	return im
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
