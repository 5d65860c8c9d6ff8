// Package readiness blends skill coverage with public code-hosting reputation.
package readiness

import (
	"math"

	"github.com/spigell/skillgap/internal/github"
)

const (
	matchWeight      = 0.6
	reputationWeight = 0.4
)

// Aggregate returns round2(match*0.6 + reputation*0.4), both inputs clamped to [0, 100].
func Aggregate(match, reputation float64) float64 {
	v := clamp(match)*matchWeight + clamp(reputation)*reputationWeight
	return math.Round(v*100) / 100
}

// ReputationScore maps stats onto [0, 100]. Nil stats score zero.
func ReputationScore(stats *github.Stats) float64 {
	if stats == nil {
		return 0
	}

	score := math.Min(float64(stats.Repos)*5, 40) +
		math.Min(float64(stats.Stars)*2, 30) +
		math.Min(float64(len(stats.Languages))*5, 30)

	return clamp(score)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
