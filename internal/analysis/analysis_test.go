package analysis

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/skillgap/internal/ai"
	"github.com/spigell/skillgap/internal/catalog"
	"github.com/spigell/skillgap/internal/coach"
	"github.com/spigell/skillgap/internal/github"
	"github.com/spigell/skillgap/internal/matching"
	"github.com/spigell/skillgap/internal/recommend"
	"github.com/spigell/skillgap/internal/roadmap"
	"github.com/spigell/skillgap/internal/signals"
	"github.com/spigell/skillgap/internal/skills"
)

type fakeReputation struct {
	stats *github.Stats
	calls atomic.Int32
}

func (f *fakeReputation) Lookup(_ context.Context, _ string) (*github.Stats, github.Outcome) {
	f.calls.Add(1)
	if f.stats == nil {
		return nil, github.Absent
	}
	return f.stats, github.Found
}

func newAnalyzer(t *testing.T, rep ReputationSource, gen ai.Generator) *Analyzer {
	t.Helper()

	cat := catalog.Default()
	matcher, err := matching.NewMatcher(matching.Config{}, nil, nil)
	require.NoError(t, err)

	a, err := New(Deps{
		Catalog:     cat,
		Extractor:   skills.NewExtractor(cat.Vocabulary(), true),
		Matcher:     matcher,
		Reputation:  rep,
		Recommender: recommend.NewEngine(gen, cat, recommend.Config{}, nil),
		Roadmaps:    roadmap.NewValidator(gen, roadmap.VariantSteps, cat, nil),
		Coach:       coach.New(gen, nil),
	})
	require.NoError(t, err)
	return a
}

const devopsResume = `Summary: Senior engineer. Experience: Led a team that developed and optimized
Linux, Python, Docker and Kubernetes platforms on AWS, saved $20000 and increased uptime 15%.
Education: BSc. Skills: Bash, Terraform. Contact: ops@example.com (555) 123-4567`

func TestRunWithoutCollaborators(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, nil, ai.Disabled{})
	report, err := a.Run(context.Background(), Request{Text: devopsResume, Role: "devops engineer", Username: "octo"})
	require.NoError(t, err)

	assert.NotEmpty(t, report.RequestID)
	assert.Equal(t, "DevOps Engineer", report.Role)
	assert.Equal(t, matching.StrategyLexical, report.Strategy)
	assert.Equal(t, []string{"Linux", "Python", "Bash", "Docker", "Kubernetes", "AWS", "Terraform"}, report.MatchedSkills)
	assert.Equal(t, []string{"Azure", "CI/CD", "Jenkins"}, report.MissingSkills)
	assert.Equal(t, 70.0, report.MatchScore)
	assert.Zero(t, report.ReputationScore)
	assert.Equal(t, 42.0, report.ReadinessScore)
	assert.Nil(t, report.ProfileReview)

	assert.Equal(t, signals.LevelSenior, report.ExperienceLevel)
	assert.Equal(t, "AI Expert", report.AIProficiency.Tier)
	assert.NotEmpty(t, report.Salary)

	assert.Equal(t, []string{
		"**Azure**: Cert: Azure AI Engineer Associate.",
		"**CI/CD**: " + recommend.FallbackAdvice,
		"**Jenkins**: " + recommend.FallbackAdvice,
	}, report.Recommendations)

	assert.True(t, report.Roadmap.Synthesized)
	require.NotNil(t, report.Timeline)
	assert.Len(t, report.Timeline.Stages, 6)
	assert.Len(t, report.InterviewQuestions, 3)
	assert.False(t, report.Audit.Generated)
	assert.Nil(t, report.CoverLetter)
}

func TestRunWithReputation(t *testing.T) {
	t.Parallel()

	rep := &fakeReputation{stats: &github.Stats{Username: "octo", Repos: 10, Stars: 20, Languages: map[string]int{"Go": 5, "Python": 5}}}
	a := newAnalyzer(t, rep, ai.Disabled{})

	report, err := a.Run(context.Background(), Request{Text: devopsResume, Role: "DevOps Engineer", Username: "octo"})
	require.NoError(t, err)

	assert.EqualValues(t, 1, rep.calls.Load())
	assert.Equal(t, 80.0, report.ReputationScore)
	assert.Equal(t, 74.0, report.ReadinessScore)
	require.NotNil(t, report.ProfileReview)
	assert.Equal(t, coach.ReviewUnavailable, report.ProfileReview.Body)
}

func TestRunSkipsLookupWithoutUsername(t *testing.T) {
	t.Parallel()

	rep := &fakeReputation{}
	a := newAnalyzer(t, rep, ai.Disabled{})

	_, err := a.Run(context.Background(), Request{Text: devopsResume, Role: "DevOps Engineer", CoverLetter: true, Company: "Acme"})
	require.NoError(t, err)
	assert.Zero(t, rep.calls.Load())
}

func TestRunCoverLetter(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, nil, nil)
	report, err := a.Run(context.Background(), Request{Text: devopsResume, Role: "DevOps Engineer", CoverLetter: true, Company: "Acme", Name: "Ann"})
	require.NoError(t, err)
	require.NotNil(t, report.CoverLetter)
	assert.Contains(t, report.CoverLetter.Body, "DevOps Engineer position at Acme")
}

func TestRunInputErrors(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, nil, ai.Disabled{})

	_, err := a.Run(context.Background(), Request{Text: "  \n ", Role: "DevOps Engineer"})
	assert.True(t, errors.Is(err, ErrEmptyText))

	_, err = a.Run(context.Background(), Request{Text: "Python", Role: "Astronaut"})
	assert.True(t, errors.Is(err, ErrUnsupportedRole))
	assert.Contains(t, err.Error(), `"Astronaut"`)

	_, err = a.Run(context.Background(), Request{Text: "Python", Role: " "})
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	_, err = a.Run(context.Background(), Request{Text: "Python", Role: "DevOps Engineer", Username: "a/b"})
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestRunZeroSkillsIsNotAnError(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, nil, ai.Disabled{})
	report, err := a.Run(context.Background(), Request{Text: "I enjoy gardening.", Role: "Product Manager"})
	require.NoError(t, err)
	assert.Empty(t, report.MatchedSkills)
	assert.Zero(t, report.MatchScore)
	assert.Zero(t, report.ReadinessScore)
	assert.Len(t, report.MissingSkills, 8)
}

func TestRunUsesGeneratedRoadmapWhenValid(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for _, n := range []string{"1", "2", "3", "4", "5", "6"} {
		b.WriteString("### Step " + n + ": Work\n- do\n- **Output:** done\n")
	}
	gen := generatorFunc(func(prompt string) ai.Response {
		if strings.Contains(prompt, "roadmap") {
			return ai.OK(b.String())
		}
		return ai.Unavailable("not scripted")
	})

	a := newAnalyzer(t, nil, gen)
	report, err := a.Run(context.Background(), Request{Text: devopsResume, Role: "DevOps Engineer"})
	require.NoError(t, err)
	assert.False(t, report.Roadmap.Synthesized)
	assert.Equal(t, b.String(), report.Roadmap.Text)
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newAnalyzer(t, nil, ai.Disabled{})
	_, err := a.Run(ctx, Request{Text: devopsResume, Role: "DevOps Engineer"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewRequiresDeps(t *testing.T) {
	t.Parallel()

	_, err := New(Deps{})
	assert.Error(t, err)
}

type generatorFunc func(prompt string) ai.Response

func (f generatorFunc) Generate(_ context.Context, prompt string) ai.Response { return f(prompt) }
