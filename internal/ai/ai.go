// Package ai wraps generative-text backends behind a tagged result so callers branch on
// availability instead of inspecting errors.
package ai

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/skillgap/internal/logger"
	"github.com/spigell/skillgap/internal/utils"
)

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"

	DefaultTimeout      = 60 * time.Second
	defaultMaxLogLength = 200
)

type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Response is the outcome of one generation call. Text is set only for StatusOK.
type Response struct {
	Status Status
	Text   string
	Reason string
}

func OK(text string) Response { return Response{Status: StatusOK, Text: text} }

func Unavailable(reason string) Response {
	return Response{Status: StatusUnavailable, Reason: reason}
}

func Malformed(reason string) Response {
	return Response{Status: StatusMalformed, Reason: reason}
}

// Generator produces text for a prompt. Implementations never block past their own timeout.
type Generator interface {
	Generate(ctx context.Context, prompt string) Response
}

// Backend is a raw client of a generative service.
type Backend interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Bounded applies a per-call timeout to a backend and converts its failures to StatusUnavailable.
type Bounded struct {
	backend   Backend
	timeout   time.Duration
	logger    *zap.Logger
	maxLogLen int
}

func NewBounded(provider string, backend Backend, timeout time.Duration, log *zap.Logger, maxLogLength int) *Bounded {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	model := ""
	if backend != nil {
		model = backend.Model()
	}

	return &Bounded{
		backend:   backend,
		timeout:   timeout,
		logger:    logger.WithCommonFields(log, provider, model),
		maxLogLen: maxLogLength,
	}
}

func (b *Bounded) Generate(ctx context.Context, prompt string) Response {
	if b == nil || b.backend == nil {
		return Unavailable("generative backend is not configured")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Malformed("prompt must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	b.logger.Debug("generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, b.maxLogLen)),
	)

	raw, err := b.backend.GenerateContent(ctx, prompt)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			reason = "timed out after " + b.timeout.String()
		}
		b.logger.Info("generative backend unavailable", zap.String("reason", reason))
		return Unavailable(reason)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		b.logger.Info("generative backend returned empty response")
		return Unavailable("empty response")
	}

	b.logger.Debug("generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, b.maxLogLen)),
	)

	return OK(raw)
}

// Disabled always reports the backend as unavailable.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) Response {
	return Unavailable("generative backend disabled")
}
