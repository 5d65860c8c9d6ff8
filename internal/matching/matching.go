// Package matching compares a candidate's skills with the skills a role requires.
package matching

import (
	"context"
	"math"
)

const (
	StrategyLexical  = "lexical"
	StrategySemantic = "semantic"
)

// Result is the outcome of matching user skills against a required skill list.
// Matched and Missing partition Required and keep its order.
type Result struct {
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
	Score    float64  `json:"score"`
	Strategy string   `json:"strategy"`
}

// Strategy decides which required skills are covered by user skills.
type Strategy interface {
	Name() string
	Match(ctx context.Context, user, required []string) (Result, error)
}

// newResult partitions required by the covered flags.
func newResult(strategy string, required []string, covered []bool) Result {
	res := Result{
		Matched:  make([]string, 0, len(required)),
		Missing:  make([]string, 0, len(required)),
		Strategy: strategy,
	}
	for i, skill := range required {
		if covered[i] {
			res.Matched = append(res.Matched, skill)
		} else {
			res.Missing = append(res.Missing, skill)
		}
	}
	res.Score = Score(len(res.Matched), len(required))
	return res
}

// Score is 100 * matched / required, 0 for an empty required list.
func Score(matched, required int) float64 {
	if required <= 0 {
		return 0
	}
	score := 100 * float64(matched) / float64(required)
	return math.Max(0, math.Min(100, score))
}
