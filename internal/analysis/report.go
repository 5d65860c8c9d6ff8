package analysis

import (
	"time"

	"github.com/spigell/skillgap/internal/coach"
	"github.com/spigell/skillgap/internal/github"
	"github.com/spigell/skillgap/internal/roadmap"
	"github.com/spigell/skillgap/internal/signals"
)

// Report is the outcome of one analysis.
type Report struct {
	RequestID   string    `json:"request_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Role        string    `json:"role"`
	Strategy    string    `json:"strategy"`

	ExtractedSkills []string `json:"extracted_skills"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchScore      float64  `json:"match_score"`

	Reputation      *github.Stats `json:"reputation,omitempty"`
	ReputationScore float64       `json:"reputation_score"`
	ReadinessScore  float64       `json:"readiness_score"`

	QualityScore    int                 `json:"quality_score"`
	QualityFeedback []string            `json:"quality_feedback"`
	Sections        []string            `json:"sections"`
	WordCount       int                 `json:"word_count"`
	ExperienceLevel signals.Level       `json:"experience_level"`
	ImpactScore     int                 `json:"impact_score"`
	ImpactFeedback  []string            `json:"impact_feedback"`
	AIProficiency   signals.Proficiency `json:"ai_proficiency"`
	Salary          string              `json:"salary"`

	Recommendations    []string          `json:"recommendations"`
	Roadmap            roadmap.Roadmap   `json:"roadmap"`
	Timeline           *roadmap.Timeline `json:"timeline,omitempty"`
	InterviewQuestions []coach.Question  `json:"interview_questions"`
	Audit              coach.Text        `json:"audit"`
	CoverLetter        *coach.Text       `json:"cover_letter,omitempty"`
	ProfileReview      *coach.Text       `json:"profile_review,omitempty"`
}
