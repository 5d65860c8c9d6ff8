// Package roadmap requests a structured learning roadmap from a generative backend and
// synthesizes a compliant one whenever the answer is unusable.
package roadmap

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skillgap/internal/ai"
	"github.com/spigell/skillgap/internal/recommend"
)

type Variant string

const (
	// VariantSteps requires "Step 1".."Step 6" and "**Output:**".
	VariantSteps Variant = "steps"
	// VariantWeeks requires "Week 1".."Week 4", "Deliverable" and "Checkpoint".
	VariantWeeks Variant = "weeks"
)

const focusCount = 3

var placeholders = [focusCount]string{"Core Fundamentals", "Advanced Topics", "Real-World Application"}

// Markers returns the literal substrings a roadmap of the variant must contain.
func (v Variant) Markers() []string {
	switch v {
	case VariantWeeks:
		return []string{"Week 1", "Week 2", "Week 3", "Week 4", "Deliverable", "Checkpoint"}
	default:
		return []string{"Step 1", "Step 2", "Step 3", "Step 4", "Step 5", "Step 6", "**Output:**"}
	}
}

func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantSteps:
		return VariantSteps, nil
	case VariantWeeks:
		return VariantWeeks, nil
	default:
		return "", fmt.Errorf("unsupported roadmap variant: %s", s)
	}
}

// Missing returns the markers absent from text, in marker order.
func (v Variant) Missing(text string) []string {
	var absent []string
	for _, marker := range v.Markers() {
		if !strings.Contains(text, marker) {
			absent = append(absent, marker)
		}
	}
	return absent
}

// Validate reports whether text carries every marker of the variant.
func (v Variant) Validate(text string) bool {
	return len(v.Missing(text)) == 0
}

type Config struct {
	Variant string `mapstructure:"variant" validate:"omitempty,oneof=steps weeks"`
}

// Roadmap is the accepted document and how it was obtained.
type Roadmap struct {
	Text        string  `json:"text"`
	Variant     Variant `json:"variant"`
	Synthesized bool    `json:"synthesized"`
	Reason      string  `json:"reason,omitempty"`
}

type Validator struct {
	generator ai.Generator
	variant   Variant
	advice    recommend.AdviceTable
	logger    *zap.Logger
}

func NewValidator(generator ai.Generator, variant Variant, advice recommend.AdviceTable, logger *zap.Logger) *Validator {
	if generator == nil {
		generator = ai.Disabled{}
	}
	if variant == "" {
		variant = VariantSteps
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{generator: generator, variant: variant, advice: advice, logger: logger}
}

// Roadmap asks the generator for a roadmap and accepts it only when it carries every
// marker of the configured variant. Otherwise a deterministic roadmap is synthesized.
func (v *Validator) Roadmap(ctx context.Context, missing []string, role string) Roadmap {
	resp := v.generator.Generate(ctx, Prompt(v.variant, missing, role))

	reason := resp.Reason
	if resp.Status == ai.StatusOK {
		absent := v.variant.Missing(resp.Text)
		if len(absent) == 0 {
			return Roadmap{Text: resp.Text, Variant: v.variant}
		}
		reason = "missing markers: " + strings.Join(absent, ", ")
	}

	v.logger.Info("generated roadmap rejected, synthesizing",
		zap.String("variant", string(v.variant)),
		zap.String("status", resp.Status.String()),
		zap.String("reason", reason),
	)

	return Roadmap{
		Text:        Synthesize(v.variant, missing, role, v.recommendation(missing)),
		Variant:     v.variant,
		Synthesized: true,
		Reason:      reason,
	}
}

func (v *Validator) recommendation(missing []string) string {
	if len(missing) == 0 {
		return "Keep your portfolio current and apply to roles that match your profile."
	}
	rec := recommend.Static(missing[:1], v.advice)[0]
	return strings.TrimSpace(rec)
}

// Prompt builds the generation prompt that enforces the variant's template.
func Prompt(variant Variant, missing []string, role string) string {
	skills := strings.Join(missing, ", ")
	if skills == "" {
		skills = "advanced topics of the role"
	}

	if variant == VariantWeeks {
		return fmt.Sprintf(`Create a 4-week learning roadmap for a %s to learn: %s.
Use exactly this Markdown structure for each of Week 1 to Week 4:
### Week N: <title>
- <action>
- <action>
- **Checkpoint:** <how to self-check progress>
- **Output:** Deliverable: <concrete artifact>`, role, skills)
	}

	return fmt.Sprintf(`Create a 6-step learning roadmap for a %s to learn: %s.
Use exactly this Markdown structure:
### Goal
- <one sentence goal>
### Step N: <title> (<time window>)
- <action>
- <action>
- **Output:** <measurable deliverable>
Repeat the step block for Step 1 to Step 6.`, role, skills)
}
