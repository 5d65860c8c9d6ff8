// Package embedding turns short skill labels into fixed-length vectors.
package embedding

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"math"
	"sync"
)

// Embedder exposes the minimal surface required by the semantic matcher.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	ModelID() string
	Close() error
}

// Cosine returns the cosine similarity of two vectors, 0 when either is empty or zero.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		af, bf := float64(a[i]), float64(b[i])
		dot += af * bf
		na += af * af
		nb += bf * bf
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// vectorCache is a model-scoped in-memory cache of computed vectors.
type vectorCache struct {
	mu    sync.RWMutex
	model string
	items map[string][]float32
}

func newVectorCache(model string) *vectorCache {
	return &vectorCache{model: model, items: make(map[string][]float32)}
}

func (c *vectorCache) key(text string) string {
	h := sha1.New()
	_, _ = io.WriteString(h, c.model)
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, text)
	return hex.EncodeToString(h.Sum(nil))
}

func (c *vectorCache) get(text string) ([]float32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vec, ok := c.items[c.key(text)]
	if !ok {
		return nil, false
	}
	return cloneVector(vec), true
}

func (c *vectorCache) put(text string, vec []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[c.key(text)] = cloneVector(vec)
}

func cloneVector(vec []float32) []float32 {
	out := make([]float32, len(vec))
	copy(out, vec)
	return out
}
