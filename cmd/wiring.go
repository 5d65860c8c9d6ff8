package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spigell/skillgap/internal/ai"
	"github.com/spigell/skillgap/internal/ai/gemini"
	"github.com/spigell/skillgap/internal/ai/ollama"
	"github.com/spigell/skillgap/internal/analysis"
	"github.com/spigell/skillgap/internal/catalog"
	"github.com/spigell/skillgap/internal/coach"
	"github.com/spigell/skillgap/internal/document"
	"github.com/spigell/skillgap/internal/embedding"
	"github.com/spigell/skillgap/internal/github"
	"github.com/spigell/skillgap/internal/logger"
	"github.com/spigell/skillgap/internal/matching"
	"github.com/spigell/skillgap/internal/recommend"
	"github.com/spigell/skillgap/internal/roadmap"
	"github.com/spigell/skillgap/internal/secrets"
	"github.com/spigell/skillgap/internal/skills"
)

const (
	geminiKeyEnv   = "GEMINI_API_KEY"
	githubTokenEnv = "GITHUB_TOKEN"
)

// runtime holds the collaborators of one analysis run.
type runtime struct {
	config   *Config
	logger   *zap.Logger
	catalog  *catalog.Catalog
	backend  *matching.Backend
	analyzer *analysis.Analyzer
}

func loadCatalog(cfg *Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogFile)
}

func newRuntime(ctx context.Context, cfg *Config, log *zap.Logger) (*runtime, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	variant, err := roadmap.ParseVariant(cfg.Roadmap.Variant)
	if err != nil {
		return nil, err
	}

	embeddingCfg := cfg.Matcher.Embedding
	backend := matching.NewBackend(func() (embedding.Embedder, error) {
		emb, err := embedding.NewONNX(embeddingCfg)
		if err != nil {
			return nil, err
		}
		return emb, nil
	}, log)

	matcher, err := matching.NewMatcher(cfg.Matcher.Config, backend, log)
	if err != nil {
		return nil, err
	}

	generator := newGenerator(ctx, cfg.AI, log)

	token, err := secrets.Optional(secrets.Source{
		Name: "github token",
		File: cfg.GitHub.TokenFile,
		Env:  githubTokenEnv,
	})
	if err != nil {
		log.Warn("github token is not usable, continuing unauthenticated", zap.Error(err))
		token = ""
	}
	gh := github.New(log, token, cfg.GitHub.Timeout)
	if cfg.GitHub.APIURL != "" {
		gh.APIURL = cfg.GitHub.APIURL
	}

	analyzer, err := analysis.New(analysis.Deps{
		Catalog:     cat,
		Extractor:   skills.NewExtractor(cat.Vocabulary(), cfg.Skills.StrictShortLabels),
		Matcher:     matcher,
		Reputation:  gh,
		Recommender: recommend.NewEngine(generator, cat, cfg.Recommendations, log),
		Roadmaps:    roadmap.NewValidator(generator, variant, cat, log),
		Coach:       coach.New(generator, log),
		Logger:      log,
	})
	if err != nil {
		return nil, err
	}

	return &runtime{
		config:   cfg,
		logger:   log,
		catalog:  cat,
		backend:  backend,
		analyzer: analyzer,
	}, nil
}

func (r *runtime) Close() {
	if err := r.backend.Reset(); err != nil {
		r.logger.Warn("closing embedding backend", zap.Error(err))
	}
}

// newGenerator never fails: a provider that cannot be built leaves the run on deterministic fallbacks.
func newGenerator(ctx context.Context, cfg AIConfig, log *zap.Logger) ai.Generator {
	if !cfg.Enabled {
		log.Debug("ai generation disabled")
		return ai.Disabled{}
	}

	var backend ai.Backend
	maxLogLength := 0

	switch cfg.Provider {
	case ai.ProviderGemini:
		key, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
			Env:  geminiKeyEnv,
		})
		if err != nil {
			log.Warn("gemini is not configured, ai generation disabled", zap.Error(err))
			return ai.Disabled{}
		}
		g, err := gemini.NewGenerator(ctx, key, cfg.Gemini.Model)
		if err != nil {
			log.Warn("creating gemini client failed, ai generation disabled", zap.Error(err))
			return ai.Disabled{}
		}
		backend = g
		maxLogLength = cfg.Gemini.MaxLogLength
	default:
		backend = ollama.NewGenerator(cfg.Ollama, log)
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ai.ProviderOllama
	}

	log.Info("ai generation enabled", logger.CommonFields(provider, backend.Model())...)
	return ai.NewBounded(provider, backend, cfg.Timeout, log, maxLogLength)
}

func readResume(cfg document.Config, path string) (document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Document{}, fmt.Errorf("read resume: %w", err)
	}
	return document.NewExtractor(cfg).Extract(filepath.Base(path), data)
}
