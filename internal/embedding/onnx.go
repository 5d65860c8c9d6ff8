package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/spigell/skillgap/internal/skills"
)

const (
	defaultMaxSeqLen  = 64
	defaultHiddenSize = 384
)

// ONNXConfig describes a sentence-transformer model exported to ONNX
// (for example all-MiniLM-L6-v2) and its tokenizer.json.
type ONNXConfig struct {
	LibraryPath   string `mapstructure:"library-path"`
	ModelPath     string `mapstructure:"model-path"`
	TokenizerPath string `mapstructure:"tokenizer-path"`
	MaxSeqLen     int    `mapstructure:"max-seq-len" validate:"gte=0"`
	HiddenSize    int    `mapstructure:"hidden-size" validate:"gte=0"`
}

// ONNX embeds texts with onnxruntime: tokenize, run the model, mean-pool the last hidden
// state over the attention mask and L2-normalize.
type ONNX struct {
	cfg       ONNXConfig
	tokenizer *tokenizer.Tokenizer
	session   *ort.DynamicAdvancedSession
	cache     *vectorCache

	// onnxruntime sessions are not safe for concurrent Run calls.
	mu sync.Mutex
}

var ortInit sync.Mutex

// NewONNX loads the tokenizer and model. It fails when any file is missing locally; there
// is no download at runtime.
func NewONNX(cfg ONNXConfig) (*ONNX, error) {
	if cfg.MaxSeqLen <= 0 {
		cfg.MaxSeqLen = defaultMaxSeqLen
	}
	if cfg.HiddenSize <= 0 {
		cfg.HiddenSize = defaultHiddenSize
	}
	for _, path := range []string{cfg.ModelPath, cfg.TokenizerPath} {
		if strings.TrimSpace(path) == "" {
			return nil, errors.New("model and tokenizer paths are required")
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("embedding asset: %w", err)
		}
	}

	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}

	ortInit.Lock()
	if !ort.IsInitialized() {
		if cfg.LibraryPath != "" {
			ort.SetSharedLibraryPath(cfg.LibraryPath)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			ortInit.Unlock()
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}
	ortInit.Unlock()

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{"input_ids", "attention_mask", "token_type_ids"},
		[]string{"last_hidden_state"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ONNX{
		cfg:       cfg,
		tokenizer: tk,
		session:   session,
		cache:     newVectorCache(filepath.Base(cfg.ModelPath)),
	}, nil
}

// ModelID returns the model file name.
func (o *ONNX) ModelID() string {
	return filepath.Base(o.cfg.ModelPath)
}

// Close releases the onnxruntime session.
func (o *ONNX) Close() error {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session != nil {
		err := o.session.Destroy()
		o.session = nil
		return err
	}
	return nil
}

// EmbedTexts embeds each text, reusing cached vectors.
func (o *ONNX) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		normalized := skills.Normalize(text)
		if vec, ok := o.cache.get(normalized); ok {
			out[i] = vec
			continue
		}
		vec, err := o.embed(normalized)
		if err != nil {
			return nil, fmt.Errorf("embed %q: %w", text, err)
		}
		o.cache.put(normalized, vec)
		out[i] = vec
	}
	return out, nil
}

func (o *ONNX) embed(text string) ([]float32, error) {
	enc, err := o.tokenizer.EncodeSingle(text, true)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	n := len(enc.Ids)
	if n > o.cfg.MaxSeqLen {
		n = o.cfg.MaxSeqLen
	}
	if n == 0 {
		return nil, errors.New("empty token sequence")
	}

	ids := make([]int64, n)
	mask := make([]int64, n)
	types := make([]int64, n)
	for i := 0; i < n; i++ {
		ids[i] = int64(enc.Ids[i])
		mask[i] = 1
		if i < len(enc.AttentionMask) {
			mask[i] = int64(enc.AttentionMask[i])
		}
		if i < len(enc.TypeIds) {
			types[i] = int64(enc.TypeIds[i])
		}
	}

	shape := ort.NewShape(1, int64(n))
	idsTensor, err := ort.NewTensor(shape, ids)
	if err != nil {
		return nil, err
	}
	defer idsTensor.Destroy()
	maskTensor, err := ort.NewTensor(shape, mask)
	if err != nil {
		return nil, err
	}
	defer maskTensor.Destroy()
	typesTensor, err := ort.NewTensor(shape, types)
	if err != nil {
		return nil, err
	}
	defer typesTensor.Destroy()

	hidden := o.cfg.HiddenSize
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(n), int64(hidden)))
	if err != nil {
		return nil, err
	}
	defer output.Destroy()

	o.mu.Lock()
	if o.session == nil {
		o.mu.Unlock()
		return nil, errors.New("embedder is closed")
	}
	err = o.session.Run([]ort.Value{idsTensor, maskTensor, typesTensor}, []ort.Value{output})
	o.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("run model: %w", err)
	}

	return meanPool(output.GetData(), mask, hidden), nil
}

// meanPool averages token vectors where mask is set and L2-normalizes the result.
func meanPool(states []float32, mask []int64, hidden int) []float32 {
	vec := make([]float32, hidden)
	var count float32
	for t, m := range mask {
		if m == 0 {
			continue
		}
		count++
		row := states[t*hidden : (t+1)*hidden]
		for i, v := range row {
			vec[i] += v
		}
	}
	if count == 0 {
		return vec
	}

	var norm float64
	for i := range vec {
		vec[i] /= count
		norm += float64(vec[i]) * float64(vec[i])
	}
	if norm == 0 {
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}
