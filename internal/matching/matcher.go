package matching

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Config selects the matching strategy.
type Config struct {
	Strategy  string  `mapstructure:"strategy" validate:"omitempty,oneof=lexical semantic"`
	Threshold float64 `mapstructure:"threshold" validate:"gte=0,lte=1"`
}

// Matcher runs the configured strategy and degrades to Lexical whenever the semantic
// backend cannot serve a call.
type Matcher struct {
	strategy  string
	threshold float64
	backend   *Backend
	lexical   Lexical
	logger    *zap.Logger
}

// NewMatcher builds a matcher. backend is only consulted for the semantic strategy.
func NewMatcher(cfg Config, backend *Backend, logger *zap.Logger) (*Matcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	strategy := strings.ToLower(strings.TrimSpace(cfg.Strategy))
	switch strategy {
	case "":
		strategy = StrategyLexical
	case StrategyLexical, StrategySemantic:
	default:
		return nil, fmt.Errorf("unsupported matching strategy: %s", cfg.Strategy)
	}

	return &Matcher{
		strategy:  strategy,
		threshold: cfg.Threshold,
		backend:   backend,
		logger:    logger.With(zap.String("strategy", strategy)),
	}, nil
}

// Match never fails: semantic errors fall back to the lexical rule for this call.
func (m *Matcher) Match(ctx context.Context, user, required []string) Result {
	if m.strategy != StrategySemantic {
		return m.lexical.match(user, required)
	}

	emb, err := m.backend.Embedder()
	if err != nil {
		m.logger.Debug("semantic matching unavailable", zap.String("reason", err.Error()))
		return m.lexical.match(user, required)
	}

	res, err := NewSemantic(emb, m.threshold).Match(ctx, user, required)
	if err != nil {
		m.logger.Warn("semantic matching failed, falling back to lexical", zap.Error(err))
		return m.lexical.match(user, required)
	}

	return res
}
