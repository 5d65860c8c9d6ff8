// Package analysis runs one resume analysis end to end: skill extraction, matching, text
// signals, reputation, readiness, recommendations, roadmap and coaching extras.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/skillgap/internal/catalog"
	"github.com/spigell/skillgap/internal/coach"
	"github.com/spigell/skillgap/internal/github"
	"github.com/spigell/skillgap/internal/matching"
	"github.com/spigell/skillgap/internal/readiness"
	"github.com/spigell/skillgap/internal/roadmap"
	"github.com/spigell/skillgap/internal/signals"
	"github.com/spigell/skillgap/internal/skills"
)

var (
	ErrEmptyText       = errors.New("resume text is empty")
	ErrUnsupportedRole = errors.New("unsupported role")
	ErrInvalidRequest  = errors.New("invalid request")
)

type Request struct {
	Text     string `validate:"required"`
	Role     string `validate:"required"`
	Username string `validate:"omitempty,max=39,excludesall=/ "`

	// Cover letter is drafted only when requested.
	CoverLetter bool
	Name        string `validate:"omitempty,max=100"`
	Company     string `validate:"omitempty,max=100"`
}

type SkillMatcher interface {
	Match(ctx context.Context, user, required []string) matching.Result
}

type ReputationSource interface {
	Lookup(ctx context.Context, username string) (*github.Stats, github.Outcome)
}

type Recommender interface {
	Recommend(ctx context.Context, missing []string, role string) []string
}

type RoadmapSource interface {
	Roadmap(ctx context.Context, missing []string, role string) roadmap.Roadmap
}

type Coach interface {
	InterviewQuestions(ctx context.Context, role string, missing []string) []coach.Question
	Audit(ctx context.Context, text, role string) coach.Text
	CoverLetter(ctx context.Context, name, company, role string, matched, missing []string) coach.Text
	ProfileReview(ctx context.Context, stats *github.Stats) coach.Text
}

// Deps are the collaborators of an Analyzer. Reputation may be nil.
type Deps struct {
	Catalog     *catalog.Catalog
	Extractor   *skills.Extractor
	Matcher     SkillMatcher
	Reputation  ReputationSource
	Recommender Recommender
	Roadmaps    RoadmapSource
	Coach       Coach
	Logger      *zap.Logger
}

type Analyzer struct {
	deps     Deps
	validate *validator.Validate
	now      func() time.Time
}

func New(deps Deps) (*Analyzer, error) {
	switch {
	case deps.Catalog == nil:
		return nil, errors.New("catalog is required")
	case deps.Extractor == nil:
		return nil, errors.New("skill extractor is required")
	case deps.Matcher == nil:
		return nil, errors.New("skill matcher is required")
	case deps.Recommender == nil:
		return nil, errors.New("recommender is required")
	case deps.Roadmaps == nil:
		return nil, errors.New("roadmap source is required")
	case deps.Coach == nil:
		return nil, errors.New("coach is required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Analyzer{deps: deps, validate: validator.New(), now: time.Now}, nil
}

// Run analyzes one resume. Input problems are returned as ErrEmptyText, ErrUnsupportedRole or
// ErrInvalidRequest. Collaborator failures never fail the run.
func (a *Analyzer) Run(ctx context.Context, req Request) (*Report, error) {
	req.Role = strings.TrimSpace(req.Role)
	req.Username = strings.TrimSpace(req.Username)

	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	role, ok := a.deps.Catalog.Role(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRole, req.Role)
	}

	report := &Report{
		RequestID:   uuid.NewString(),
		GeneratedAt: a.now().UTC(),
		Role:        role.Name,
	}
	log := a.deps.Logger.With(zap.String("request_id", report.RequestID), zap.String("role", role.Name))

	userSkills := a.deps.Extractor.Extract(req.Text)
	report.ExtractedSkills = []string(userSkills)
	log.Debug("extracted skills", zap.Strings("skills", userSkills))

	match := a.deps.Matcher.Match(ctx, userSkills, role.Skills)
	report.Strategy = match.Strategy
	report.MatchedSkills = match.Matched
	report.MissingSkills = match.Missing
	report.MatchScore = match.Score
	log.Info("matched skills",
		zap.String("strategy", match.Strategy),
		zap.Int("matched", len(match.Matched)),
		zap.Int("required", len(role.Skills)),
		zap.Float64("score", match.Score),
	)

	// Every goroutine writes its own fields of report only.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		quality := signals.AnalyzeQuality(req.Text)
		impact := signals.AnalyzeImpact(req.Text)
		report.QualityScore = quality.Score
		report.QualityFeedback = quality.Feedback
		report.Sections = quality.Sections
		report.WordCount = quality.Words
		report.ImpactScore = impact.Score
		report.ImpactFeedback = impact.Feedback
		report.ExperienceLevel = signals.ExperienceLevel(req.Text)
		report.AIProficiency = signals.AIProficiency(userSkills)
		return nil
	})

	g.Go(func() error {
		if req.Username == "" || a.deps.Reputation == nil {
			return nil
		}
		stats, outcome := a.deps.Reputation.Lookup(gctx, req.Username)
		if outcome != github.Found {
			log.Info("reputation absent, readiness uses match score only", zap.String("username", req.Username))
			return nil
		}
		report.Reputation = stats
		review := a.deps.Coach.ProfileReview(gctx, stats)
		report.ProfileReview = &review
		return nil
	})

	g.Go(func() error {
		report.Recommendations = a.deps.Recommender.Recommend(gctx, match.Missing, role.Name)
		return nil
	})

	g.Go(func() error {
		rm := a.deps.Roadmaps.Roadmap(gctx, match.Missing, role.Name)
		report.Roadmap = rm
		if tl, ok := roadmap.Parse(rm.Text); ok {
			report.Timeline = &tl
		}
		return nil
	})

	g.Go(func() error {
		report.InterviewQuestions = a.deps.Coach.InterviewQuestions(gctx, role.Name, match.Missing)
		return nil
	})

	g.Go(func() error {
		report.Audit = a.deps.Coach.Audit(gctx, req.Text, role.Name)
		return nil
	})

	if req.CoverLetter {
		g.Go(func() error {
			letter := a.deps.Coach.CoverLetter(gctx, req.Name, req.Company, role.Name, match.Matched, match.Missing)
			report.CoverLetter = &letter
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	report.ReputationScore = readiness.ReputationScore(report.Reputation)
	report.ReadinessScore = readiness.Aggregate(report.MatchScore, report.ReputationScore)
	report.Salary = a.deps.Catalog.Salary(role.Name, string(report.ExperienceLevel))

	log.Info("analysis finished",
		zap.Float64("readiness", report.ReadinessScore),
		zap.Int("quality", report.QualityScore),
		zap.Int("impact", report.ImpactScore),
		zap.Bool("roadmap_synthesized", report.Roadmap.Synthesized),
	)

	return report, nil
}
