package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/skillgap/internal/github"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, Aggregate(100, 100))
	assert.Equal(t, 0.0, Aggregate(0, 0))
	assert.Equal(t, 30.0, Aggregate(50, 0))
	assert.Equal(t, 40.0, Aggregate(0, 100))
	assert.Equal(t, 100.0, Aggregate(250, 400), "inputs are clamped")
	assert.Equal(t, 0.0, Aggregate(-5, -5))
}

func TestAggregateMonotonic(t *testing.T) {
	t.Parallel()

	prev := Aggregate(0, 50)
	for m := 1.0; m <= 100; m++ {
		cur := Aggregate(m, 50)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}

	prev = Aggregate(50, 0)
	for r := 1.0; r <= 100; r++ {
		cur := Aggregate(50, r)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestReputationScore(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ReputationScore(nil))
	assert.Equal(t, 0.0, ReputationScore(&github.Stats{}))

	stats := &github.Stats{Repos: 2, Stars: 3, Languages: map[string]int{"Go": 2}}
	assert.Equal(t, 10.0+6+5, ReputationScore(stats))

	big := &github.Stats{
		Repos: 50, Stars: 1000,
		Languages: map[string]int{"Go": 1, "Rust": 1, "Python": 1, "C": 1, "Java": 1, "Zig": 1, "Lua": 1},
	}
	assert.Equal(t, 100.0, ReputationScore(big))
}
