package matching

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/skillgap/internal/embedding"
)

// Loader constructs an embedding backend.
type Loader func() (embedding.Embedder, error)

// Backend owns a lazily initialized embedder. The loader runs at most once until Reset;
// a failed load is remembered and every later call reports the backend as unavailable.
type Backend struct {
	load   Loader
	logger *zap.Logger

	mu       sync.Mutex
	loaded   bool
	embedder embedding.Embedder
	err      error
}

// NewBackend wraps loader. A nil loader yields a backend that is always unavailable.
func NewBackend(loader Loader, logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{load: loader, logger: logger}
}

// Embedder returns the shared embedder, initializing it on first use.
func (b *Backend) Embedder() (embedding.Embedder, error) {
	if b == nil {
		return nil, errors.New("embedding backend is not configured")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loaded {
		return b.embedder, b.err
	}
	b.loaded = true

	if b.load == nil {
		b.err = errors.New("embedding backend is not configured")
		return nil, b.err
	}

	emb, err := b.load()
	if err == nil && emb == nil {
		err = errors.New("embedding loader returned no embedder")
	}
	if err != nil {
		b.err = err
		b.logger.Warn("embedding backend unavailable, lexical matching will be used",
			zap.Error(err),
		)
		return nil, err
	}

	b.embedder = emb
	b.logger.Info("embedding backend ready", zap.String("model", emb.ModelID()))
	return emb, nil
}

// Available reports whether the embedder is (or can be) initialized.
func (b *Backend) Available() bool {
	_, err := b.Embedder()
	return err == nil
}

// Reset closes the current embedder and allows the next call to load again.
func (b *Backend) Reset() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.embedder != nil {
		err = b.embedder.Close()
	}
	b.loaded = false
	b.embedder = nil
	b.err = nil
	return err
}
