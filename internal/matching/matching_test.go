package matching

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/skillgap/internal/embedding"
)

// fakeEmbedder maps labels to fixed vectors; unknown labels get a zero vector.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	closed  bool
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, ok := f.vectors[strings.ToLower(text)]
		if !ok {
			vec = []float32{0, 0, 0}
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) ModelID() string { return "fake" }

func (f *fakeEmbedder) Close() error {
	f.closed = true
	return nil
}

var _ embedding.Embedder = (*fakeEmbedder)(nil)

func synonymEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vectors: map[string][]float32{
		"ml":                          {1, 0, 0},
		"machine learning":            {0.95, 0.1, 0},
		"nlp":                         {0, 1, 0},
		"natural language processing": {0.05, 0.97, 0},
		"docker":                      {0, 0, 1},
		"kubernetes":                  {0.5, 0.5, 0.5},
	}}
}

func TestLexicalCaseInsensitiveExactMatch(t *testing.T) {
	t.Parallel()

	res, err := Lexical{}.Match(context.Background(), []string{"Machine Learning"}, []string{"machine learning", "Deep Learning"})
	require.NoError(t, err)

	assert.Equal(t, []string{"machine learning"}, res.Matched)
	assert.Equal(t, []string{"Deep Learning"}, res.Missing)
	assert.Equal(t, 50.0, res.Score)
	assert.Equal(t, StrategyLexical, res.Strategy)
}

func TestLexicalRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		user     []string
		required []string
		matched  []string
	}{
		{name: "required inside user", user: []string{"React Native"}, required: []string{"React"}, matched: []string{"React"}},
		{name: "user inside required", user: []string{"SQL"}, required: []string{"NoSQL"}, matched: []string{"NoSQL"}},
		{name: "shared distinctive word", user: []string{"Spring Boot"}, required: []string{"Boot Camp Spring"}, matched: []string{"Boot Camp Spring"}},
		{name: "generic word only", user: []string{"Data Visualization"}, required: []string{"Data Analysis"}, matched: []string{}},
		{name: "whitespace trimmed", user: []string{"  docker "}, required: []string{"Docker"}, matched: []string{"Docker"}},
		{name: "blank user skill ignored", user: []string{"   "}, required: []string{"Go"}, matched: []string{}},
		{name: "no user skills", user: nil, required: []string{"Go", "Rust"}, matched: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Lexical{}.Match(context.Background(), tc.user, tc.required)
			require.NoError(t, err)
			assert.Equal(t, tc.matched, res.Matched)
		})
	}
}

func TestResultPartitionsRequiredInOrder(t *testing.T) {
	t.Parallel()

	required := []string{"Python", "Docker", "Kubernetes", "SQL", "Go"}
	users := [][]string{
		nil,
		{"sql", "python"},
		{"Go", "Kubernetes", "Docker", "Python", "SQL"},
		{"Rust"},
	}

	for _, user := range users {
		res := Lexical{}.match(user, required)

		merged := append(append([]string{}, res.Matched...), res.Missing...)
		assert.ElementsMatch(t, required, merged)
		assertSubsequence(t, required, res.Matched)
		assertSubsequence(t, required, res.Missing)
		assert.InDelta(t, 100*float64(len(res.Matched))/float64(len(required)), res.Score, 1e-9)
	}
}

func TestEmptyRequiredScoresZero(t *testing.T) {
	t.Parallel()

	res := Lexical{}.match([]string{"Python"}, nil)
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Missing)

	sem, err := NewSemantic(synonymEmbedder(), 0).Match(context.Background(), []string{"ML"}, []string{})
	require.NoError(t, err)
	assert.Zero(t, sem.Score)
}

func TestSemanticMatchesSynonyms(t *testing.T) {
	t.Parallel()

	s := NewSemantic(synonymEmbedder(), 0)
	res, err := s.Match(context.Background(),
		[]string{"ML", "NLP", "Docker"},
		[]string{"Machine Learning", "Natural Language Processing", "Kubernetes"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Machine Learning", "Natural Language Processing"}, res.Matched)
	assert.Equal(t, []string{"Kubernetes"}, res.Missing)
	assert.InDelta(t, 66.666, res.Score, 0.01)
	assert.Equal(t, StrategySemantic, res.Strategy)
}

func TestSemanticThresholdIsStrict(t *testing.T) {
	t.Parallel()

	emb := &fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {2, 0},
	}}
	// cos(a, b) == 1 exactly, which does not exceed a threshold of 1.
	res, err := NewSemantic(emb, 1).Match(context.Background(), []string{"a"}, []string{"b"})
	require.NoError(t, err)
	assert.Empty(t, res.Matched)

	res, err = NewSemantic(emb, 0.99).Match(context.Background(), []string{"a"}, []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, res.Matched)
}

func TestSemanticPropagatesEmbedderError(t *testing.T) {
	t.Parallel()

	s := NewSemantic(&fakeEmbedder{err: errors.New("boom")}, 0)
	_, err := s.Match(context.Background(), []string{"Go"}, []string{"Go"})
	assert.Error(t, err)
}

func TestBackendLoadsOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	emb := synonymEmbedder()
	b := NewBackend(func() (embedding.Embedder, error) {
		calls.Add(1)
		return emb, nil
	}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := b.Embedder()
			assert.NoError(t, err)
			assert.Same(t, emb, got)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestBackendFailureIsPermanentUntilReset(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	fail := true
	b := NewBackend(func() (embedding.Embedder, error) {
		calls.Add(1)
		if fail {
			return nil, errors.New("model not cached")
		}
		return synonymEmbedder(), nil
	}, nil)

	assert.False(t, b.Available())
	assert.False(t, b.Available())
	_, err := b.Embedder()
	assert.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())

	fail = false
	require.NoError(t, b.Reset())
	assert.True(t, b.Available())
	assert.EqualValues(t, 2, calls.Load())
}

func TestBackendResetClosesEmbedder(t *testing.T) {
	t.Parallel()

	emb := synonymEmbedder()
	b := NewBackend(func() (embedding.Embedder, error) { return emb, nil }, nil)
	require.True(t, b.Available())
	require.NoError(t, b.Reset())
	assert.True(t, emb.closed)
}

func TestMatcherDefaultsToLexical(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher(Config{}, nil, nil)
	require.NoError(t, err)

	res := m.Match(context.Background(), []string{"ML"}, []string{"Machine Learning"})
	assert.Equal(t, StrategyLexical, res.Strategy)
	assert.Empty(t, res.Matched)
}

func TestMatcherUsesSemanticWhenAvailable(t *testing.T) {
	t.Parallel()

	b := NewBackend(func() (embedding.Embedder, error) { return synonymEmbedder(), nil }, nil)
	m, err := NewMatcher(Config{Strategy: "Semantic"}, b, nil)
	require.NoError(t, err)

	res := m.Match(context.Background(), []string{"ML"}, []string{"Machine Learning"})
	assert.Equal(t, StrategySemantic, res.Strategy)
	assert.Equal(t, []string{"Machine Learning"}, res.Matched)
}

func TestMatcherFallsBackWhenBackendUnavailable(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	var calls atomic.Int32
	b := NewBackend(func() (embedding.Embedder, error) {
		calls.Add(1)
		return nil, errors.New("offline")
	}, logger)
	m, err := NewMatcher(Config{Strategy: StrategySemantic}, b, logger)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		res := m.Match(context.Background(), []string{"Machine Learning"}, []string{"machine learning", "Deep Learning"})
		assert.Equal(t, StrategyLexical, res.Strategy)
		assert.Equal(t, 50.0, res.Score)
	}

	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, 1, logs.FilterMessage("embedding backend unavailable, lexical matching will be used").Len())
}

func TestMatcherFallsBackOnEmbeddingError(t *testing.T) {
	t.Parallel()

	b := NewBackend(func() (embedding.Embedder, error) {
		return &fakeEmbedder{err: errors.New("session crashed")}, nil
	}, nil)
	m, err := NewMatcher(Config{Strategy: StrategySemantic}, b, nil)
	require.NoError(t, err)

	res := m.Match(context.Background(), []string{"Docker"}, []string{"docker"})
	assert.Equal(t, StrategyLexical, res.Strategy)
	assert.Equal(t, []string{"docker"}, res.Matched)
}

func TestNewMatcherRejectsUnknownStrategy(t *testing.T) {
	t.Parallel()

	_, err := NewMatcher(Config{Strategy: "fuzzy"}, nil, nil)
	assert.Error(t, err)
}

func assertSubsequence(t *testing.T, seq, sub []string) {
	t.Helper()
	j := 0
	for _, v := range seq {
		if j < len(sub) && sub[j] == v {
			j++
		}
	}
	assert.Equal(t, len(sub), j, "%v is not an ordered subsequence of %v", sub, seq)
}
