// Package ollama talks to a local Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultURL   = "http://localhost:11434"
	DefaultModel = "llama3.2:3b"

	defaultHealthTimeout = time.Second
	maxBodyBytes         = 4 << 20
)

type Config struct {
	URL           string        `mapstructure:"url" validate:"omitempty,url"`
	Model         string        `mapstructure:"model"`
	HealthTimeout time.Duration `mapstructure:"health-timeout"`
}

// Generator sends non-streaming generate requests. Each call first probes /api/tags
// with a short timeout so an absent server fails fast.
type Generator struct {
	baseURL       string
	model         string
	healthTimeout time.Duration
	logger        *zap.Logger
	HTTPClient    *http.Client
}

func NewGenerator(cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	url := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if url == "" {
		url = DefaultURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	health := cfg.HealthTimeout
	if health <= 0 {
		health = defaultHealthTimeout
	}

	return &Generator{
		baseURL:       url,
		model:         model,
		healthTimeout: health,
		logger:        logger,
		HTTPClient:    &http.Client{},
	}
}

func (g *Generator) Model() string { return g.model }

// Healthy reports whether the server answers /api/tags with 200 within the health timeout.
func (g *Generator) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, g.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		g.logger.Debug("ollama health probe failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	return resp.StatusCode == http.StatusOK
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !g.Healthy(ctx) {
		return "", errors.New("ollama server is not reachable")
	}

	body, err := json.Marshal(generateRequest{Model: g.model, Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate: bad status: %s", resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("generate: %s", out.Error)
	}

	return out.Response, nil
}
