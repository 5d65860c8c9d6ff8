// Package recommend turns missing skills into actionable suggestions from a generative
// source and a static advice table.
package recommend

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/spigell/skillgap/internal/ai"
)

const (
	DefaultMinItems = 6
	FallbackAdvice  = "Build a small project to demonstrate this skill."
)

const promptTemplate = `You are a Career Coach. The user wants to be a %s but is missing these skills: %s.

Suggest 3 specific, hands-on projects they can build to learn these skills.

Format:
- [Project Name]: [Brief Description]`

var boldLabel = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// AdviceTable maps a skill label to a canned suggestion.
type AdviceTable interface {
	Advice(skill string) (string, bool)
}

type Config struct {
	MinItems int `mapstructure:"min-items" validate:"gte=0"`
}

type Engine struct {
	generator ai.Generator
	table     AdviceTable
	minItems  int
	logger    *zap.Logger
}

func NewEngine(generator ai.Generator, table AdviceTable, cfg Config, logger *zap.Logger) *Engine {
	if generator == nil {
		generator = ai.Disabled{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	minItems := cfg.MinItems
	if minItems <= 0 {
		minItems = DefaultMinItems
	}
	return &Engine{generator: generator, table: table, minItems: minItems, logger: logger}
}

// Recommend merges generative suggestions ahead of static advice. It never fails; an
// unavailable generator leaves the static advice only.
func (e *Engine) Recommend(ctx context.Context, missing []string, role string) []string {
	if len(missing) == 0 {
		return []string{}
	}

	primary := e.Generative(ctx, missing, role)
	merged := Merge(primary, Static(missing, e.table), e.minItems)

	if len(merged) < e.minItems {
		e.logger.Debug("fewer recommendations than requested",
			zap.Int("available", len(merged)),
			zap.Int("min_items", e.minItems),
		)
	}
	return merged
}

// Generative asks the generator for project ideas. Nil means the source was unusable.
func (e *Engine) Generative(ctx context.Context, missing []string, role string) []string {
	if len(missing) == 0 {
		return nil
	}

	resp := e.generator.Generate(ctx, fmt.Sprintf(promptTemplate, role, strings.Join(missing, ", ")))
	if resp.Status != ai.StatusOK {
		e.logger.Info("generative recommendations unavailable, using static advice",
			zap.String("status", resp.Status.String()),
			zap.String("reason", resp.Reason),
		)
		return nil
	}

	return ParseLines(resp.Text)
}

// ParseLines keeps bullet and numbered lines of a generated answer. When no such line
// exists the whole trimmed answer is returned as one item.
func ParseLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first := []rune(line)[0]
		if first == '-' || first == '*' || unicode.IsDigit(first) {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}

// Static renders "**Skill**: advice" for every missing skill, using FallbackAdvice for
// skills absent from the table.
func Static(missing []string, table AdviceTable) []string {
	out := make([]string, 0, len(missing))
	for _, skill := range missing {
		advice, ok := "", false
		if table != nil {
			advice, ok = table.Advice(skill)
		}
		if !ok {
			advice = FallbackAdvice
		}
		out = append(out, fmt.Sprintf("**%s**: %s", skill, advice))
	}
	return out
}

// Merge concatenates primary then fallback and drops duplicates by trimmed, case-insensitive
// text. Items leading with the same bold label ("**Docker**: ...") are duplicates too. The
// first occurrence wins. All unique items are returned, so at least minItems are present
// whenever that many exist; the list is never padded.
func Merge(primary, fallback []string, minItems int) []string {
	merged := make([]string, 0, max(minItems, len(primary)+len(fallback)))
	seen := make(map[string]struct{}, len(primary)+len(fallback))

	for _, group := range [][]string{primary, fallback} {
		for _, rec := range group {
			key := strings.ToLower(strings.TrimSpace(rec))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			label := ""
			if m := boldLabel.FindStringSubmatch(rec); m != nil {
				label = "label:" + strings.ToLower(strings.TrimSpace(m[1]))
				if _, ok := seen[label]; ok {
					continue
				}
			}
			seen[key] = struct{}{}
			if label != "" {
				seen[label] = struct{}{}
			}
			merged = append(merged, rec)
		}
	}

	return merged
}
