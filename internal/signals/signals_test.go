package signals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int, word string) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

func TestQualityThreeSectionsNoContacts(t *testing.T) {
	t.Parallel()

	text := "experience education skills " + words(497, "lorem")
	q := AnalyzeQuality(text)

	assert.Equal(t, 500, q.Words)
	assert.Equal(t, 40, q.Score)
	assert.Equal(t, []string{"experience", "education", "skills"}, q.Sections)
	assert.Contains(t, q.Feedback, "Optional sections not found: projects, summary, objective")
	assert.Contains(t, q.Feedback, FeedbackNoEmail)
	assert.Contains(t, q.Feedback, FeedbackNoPhone)
	assert.NotContains(t, q.Feedback, FeedbackTooShort)
}

func TestQualityFullMarks(t *testing.T) {
	t.Parallel()

	text := "Summary Objective Experience Education Skills Projects jane.doe@example.com (555) 123-4567 " + words(400, "lorem")
	q := AnalyzeQuality(text)

	assert.Equal(t, 100, q.Score)
	assert.Empty(t, q.Feedback)
}

func TestQualityShortAndSparse(t *testing.T) {
	t.Parallel()

	q := AnalyzeQuality("Skills: Go. Contact: dev@example.org")

	assert.Equal(t, 0+6+20, q.Score, "40 * 1/6 truncates to 6")
	require.NotEmpty(t, q.Feedback)
	assert.Equal(t, FeedbackTooShort, q.Feedback[0])
	assert.Contains(t, q.Feedback, "Consider adding more sections like: experience, education, projects, summary, objective")
	assert.Contains(t, q.Feedback, FeedbackNoPhone)
	assert.NotContains(t, q.Feedback, FeedbackNoEmail)
}

func TestQualityTooLong(t *testing.T) {
	t.Parallel()

	q := AnalyzeQuality(words(1001, "lorem"))
	assert.Contains(t, q.Feedback, FeedbackTooLong)
	assert.Zero(t, q.Score)
}

func TestQualityEmptyText(t *testing.T) {
	t.Parallel()

	q := AnalyzeQuality("")
	assert.Zero(t, q.Score)
	assert.Zero(t, q.Words)
	assert.Len(t, q.Feedback, 4)
}

func TestExperienceLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want Level
	}{
		{"Senior backend engineer", LevelSenior},
		{"Junior developer who later became tech lead", LevelSenior},
		{"7+ years building APIs", LevelSenior},
		{"Mid-level developer, 3+ years", LevelMid},
		{"Intermediate Python", LevelMid},
		{"Graduate looking for an internship", LevelJunior},
		{"0-1 years of experience", LevelJunior},
		{"Built things", LevelEstimated},
		{"", LevelEstimated},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExperienceLevel(tc.text), tc.text)
	}
}

func TestImpactFourVerbsOneMetric(t *testing.T) {
	t.Parallel()

	text := "Achieved goals. Developed tools. Designed systems. Implemented features for 300 users."
	im := AnalyzeImpact(text)

	assert.Equal(t, 4, im.Verbs)
	assert.Equal(t, 1, im.Metrics)
	assert.Equal(t, 30, im.Score)
	assert.Contains(t, im.Feedback, FeedbackFewMetrics)
	assert.NotContains(t, im.Feedback, FeedbackFewVerbs)
}

func TestImpactMetricShapes(t *testing.T) {
	t.Parallel()

	im := AnalyzeImpact("cut costs 20% and saved $5000 across 10 users over 3 years")
	assert.Equal(t, 4, im.Metrics)
	assert.Equal(t, 1, im.Verbs)
	assert.Equal(t, 45, im.Score)
	assert.Equal(t, []string{FeedbackFewVerbs}, im.Feedback)
}

func TestImpactCapped(t *testing.T) {
	t.Parallel()

	im := AnalyzeImpact(strings.Repeat("increased revenue 10% ", 20))
	assert.Equal(t, 100, im.Score)
}

func TestImpactEmpty(t *testing.T) {
	t.Parallel()

	im := AnalyzeImpact("")
	assert.Zero(t, im.Score)
	assert.Equal(t, []string{FeedbackFewVerbs, FeedbackFewMetrics}, im.Feedback)
}

func TestAIProficiency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AI Expert", AIProficiency([]string{"Python", "Docker"}).Tier)
	assert.Equal(t, "AI Practitioner", AIProficiency([]string{"PyTorch", "SQL"}).Tier)
	assert.Equal(t, "AI Enthusiast", AIProficiency([]string{"Excel"}).Tier)
	assert.Equal(t, "Aspiring AI Developer", AIProficiency(nil).Tier)
}
