package matching

import (
	"context"
	"fmt"

	"github.com/spigell/skillgap/internal/embedding"
)

// DefaultThreshold is the cosine similarity a required skill must exceed to count as matched.
const DefaultThreshold = 0.70

// Semantic matches skills by embedding similarity, so near-synonyms like "NLP" and
// "Natural Language Processing" can match.
type Semantic struct {
	embedder  embedding.Embedder
	threshold float64
}

// NewSemantic returns a semantic strategy. A non-positive threshold selects DefaultThreshold.
func NewSemantic(embedder embedding.Embedder, threshold float64) *Semantic {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Semantic{embedder: embedder, threshold: threshold}
}

func (s *Semantic) Name() string { return StrategySemantic }

// Match covers a required skill when its best cosine similarity against any user skill is
// strictly greater than the threshold.
func (s *Semantic) Match(ctx context.Context, user, required []string) (Result, error) {
	covered := make([]bool, len(required))
	if len(user) == 0 || len(required) == 0 {
		return newResult(StrategySemantic, required, covered), nil
	}
	if s.embedder == nil {
		return Result{}, fmt.Errorf("embedding backend is not configured")
	}

	userVecs, err := s.embedder.EmbedTexts(ctx, user)
	if err != nil {
		return Result{}, fmt.Errorf("embed user skills: %w", err)
	}
	requiredVecs, err := s.embedder.EmbedTexts(ctx, required)
	if err != nil {
		return Result{}, fmt.Errorf("embed required skills: %w", err)
	}

	for i, rv := range requiredVecs {
		best := -1.0
		for _, uv := range userVecs {
			if sim := embedding.Cosine(rv, uv); sim > best {
				best = sim
			}
		}
		covered[i] = best > s.threshold
	}

	return newResult(StrategySemantic, required, covered), nil
}
