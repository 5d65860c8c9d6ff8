// Package coach produces optional generative extras (interview questions, resume audit,
// cover letter and profile review). Every operation has a deterministic fallback.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/spigell/skillgap/internal/ai"
	"github.com/spigell/skillgap/internal/github"
)

const (
	auditExcerptRunes = 1000

	QuestionTechnicalGap = "Technical Gap"
	QuestionBehavioral   = "Behavioral"

	ReviewUnavailable = "Could not generate AI feedback at this time."
)

//go:embed interview_questions.schema.json
var questionsSchema string

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(questionsSchema))
})

// Text is a generated or fallback document.
type Text struct {
	Body      string `json:"body"`
	Generated bool   `json:"generated"`
}

type Question struct {
	Type     string `json:"type"`
	Skill    string `json:"skill,omitempty"`
	Question string `json:"question"`
	Tip      string `json:"tip"`
}

type Coach struct {
	generator ai.Generator
	logger    *zap.Logger
	now       func() time.Time
}

func New(generator ai.Generator, logger *zap.Logger) *Coach {
	if generator == nil {
		generator = ai.Disabled{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coach{generator: generator, logger: logger, now: time.Now}
}

func (c *Coach) generate(ctx context.Context, kind, prompt string) (string, bool) {
	resp := c.generator.Generate(ctx, prompt)
	if resp.Status != ai.StatusOK {
		c.logger.Info("generative coach unavailable, using fallback",
			zap.String("kind", kind),
			zap.String("status", resp.Status.String()),
			zap.String("reason", resp.Reason),
		)
		return "", false
	}
	return resp.Text, true
}

// InterviewQuestions returns three questions focused on the missing skills. A generated
// answer is used only when it is a JSON array matching the question schema.
func (c *Coach) InterviewQuestions(ctx context.Context, role string, missing []string) []Question {
	prompt := fmt.Sprintf(`Generate 3 interview questions for a %s.
Focus on: %s.
Return ONLY a raw JSON array (no markdown) with objects having 'type', 'question', 'tip'.`, role, strings.Join(missing, ", "))

	raw, ok := c.generate(ctx, "interview_questions", prompt)
	if ok {
		questions, err := parseQuestions(raw)
		if err == nil {
			return questions
		}
		c.logger.Info("generated interview questions rejected, using fallback", zap.String("reason", err.Error()))
	}

	return mockQuestions(missing)
}

func parseQuestions(raw string) ([]Question, error) {
	cleaned := ai.ExtractJSON(raw)

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load question schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("questions do not match schema: %s", strings.Join(msgs, "; "))
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	questions := make([]Question, 0, len(items))
	for _, item := range items {
		questions = append(questions, Question{
			Type:     ai.CoerceString(item["type"]),
			Skill:    ai.CoerceString(item["skill"]),
			Question: ai.CoerceString(item["question"]),
			Tip:      ai.CoerceString(item["tip"]),
		})
	}
	return questions, nil
}

func mockQuestions(missing []string) []Question {
	questions := make([]Question, 0, 3)
	for i, skill := range missing {
		if i == 2 {
			break
		}
		questions = append(questions, Question{
			Type:     QuestionTechnicalGap,
			Skill:    skill,
			Question: fmt.Sprintf("Can you explain a basic project where you would use %s?", skill),
			Tip:      fmt.Sprintf("Focus on the 'Why' and 'How' of %s. Even if you haven't used it, explain its purpose.", skill),
		})
	}
	return append(questions, Question{
		Type:     QuestionBehavioral,
		Question: "Tell me about a time you had to learn a new technology quickly.",
		Tip:      "Use the STAR method (Situation, Task, Action, Result) to frame your answer.",
	})
}

const mockAudit = `**Critical Issues:**
1. **Lack of Metrics**: Many bullet points list duties rather than achievements.
2. **Generic Summary**: The professional summary could apply to anyone. Tailor it to the specific role.
3. **Passive Voice**: Use stronger action verbs.

**Rewrite Example:**
[Original] "Responsible for managing the database."
[Improved] "Optimized database performance, reducing query time by 30%."`

// Audit reviews the first part of the resume for the role.
func (c *Coach) Audit(ctx context.Context, text, role string) Text {
	excerpt := []rune(strings.TrimSpace(text))
	if len(excerpt) > auditExcerptRunes {
		excerpt = excerpt[:auditExcerptRunes]
	}

	prompt := fmt.Sprintf(`Audit this resume for a %s.
Resume: "%s..."
Provide 3 critical issues and 1 rewrite.`, role, string(excerpt))

	if body, ok := c.generate(ctx, "audit", prompt); ok {
		return Text{Body: body, Generated: true}
	}
	return Text{Body: mockAudit}
}

// CoverLetter drafts a letter highlighting matched skills.
func (c *Coach) CoverLetter(ctx context.Context, name, company, role string, matched, missing []string) Text {
	prompt := fmt.Sprintf(`Write a professional cover letter for %s applying for %s at %s.
Highlight these skills: %s.
Mention learning these: %s.
Keep it under 300 words.`, name, role, company, strings.Join(matched, ", "), strings.Join(missing, ", "))

	if body, ok := c.generate(ctx, "cover_letter", prompt); ok {
		return Text{Body: body, Generated: true}
	}
	return Text{Body: c.mockCoverLetter(name, company, role, matched)}
}

func (c *Coach) mockCoverLetter(name, company, role string, matched []string) string {
	if strings.TrimSpace(name) == "" {
		name = "[Your Name]"
	}
	if strings.TrimSpace(company) == "" {
		company = "[Company Name]"
	}
	strengths := "relevant technologies"
	if len(matched) > 0 {
		strengths = strings.Join(matched[:min(3, len(matched))], ", ")
	}

	return fmt.Sprintf(`%[1]s
%[2]s

Hiring Manager
%[3]s

Dear Hiring Team,

I am writing to express my enthusiastic application for the %[4]s position at %[3]s. With a strong foundation in %[5]s, I am confident in my ability to contribute effectively to your team.

I have always admired %[3]s's commitment to innovation. Throughout my career, I have focused on building scalable and efficient solutions, a value I know we share.

I am eager to bring my problem-solving skills and technical expertise to this role. Thank you for your time and consideration.

Sincerely,

%[1]s`, name, c.now().Format("January 02, 2006"), company, role, strengths)
}

// ProfileReview asks for a recruiter-style assessment of code-hosting stats.
func (c *Coach) ProfileReview(ctx context.Context, stats *github.Stats) Text {
	if stats == nil {
		return Text{Body: ReviewUnavailable}
	}

	languages, _ := json.Marshal(stats.Languages)
	prompt := fmt.Sprintf(`You are a Senior Technical Recruiter. Review this GitHub profile summary for user '%s':

- Public Repos: %d
- Followers: %d
- Total Stars Earned: %d
- Top Languages: %s

Based ONLY on these stats, provide a honest, 3-sentence assessment of their engineering level (Junior/Mid/Senior/Expert).
Then, give 2 specific tips to improve their profile visibility.

Format:
**Assessment:** [Your text]

**Tips:**
1. [Tip 1]
2. [Tip 2]`, stats.Username, stats.Repos, stats.Followers, stats.Stars, languages)

	if body, ok := c.generate(ctx, "profile_review", prompt); ok {
		return Text{Body: body, Generated: true}
	}
	return Text{Body: ReviewUnavailable}
}
