package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var vocabulary = []string{"Python", "Go", "Machine Learning", "C++", "SQL", "R", "Node.js"}

func TestExtractSubstring(t *testing.T) {
	t.Parallel()

	e := NewExtractor(vocabulary, false)

	got := e.Extract("Built MACHINE learning pipelines in python and PostgreSQL.")
	assert.Equal(t, Set{"Python", "Machine Learning", "SQL", "R"}, got)
}

func TestExtractLooseMatchesInsideWords(t *testing.T) {
	t.Parallel()

	e := NewExtractor([]string{"Go"}, false)
	assert.Equal(t, Set{"Go"}, e.Extract("Designed a sorting algorithm"))
}

func TestExtractStrictShortLabels(t *testing.T) {
	t.Parallel()

	e := NewExtractor(vocabulary, true)

	assert.Equal(t, Set{}, e.Extract("Designed a sorting algorithm for rare records"))
	assert.Equal(t, Set{"Go", "C++", "R"}, e.Extract("Services in Go, tooling in C++ and stats in R."))
	assert.Equal(t, Set{"Node.js"}, e.Extract("node.js backends"))
}

func TestExtractEmpty(t *testing.T) {
	t.Parallel()

	e := NewExtractor(vocabulary, false)
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t"))

	var nilExtractor *Extractor
	assert.Empty(t, nilExtractor.Extract("python"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Machine Learning", Normalize("  Machine \t Learning\n"))
	assert.Equal(t, "Python", Normalize("Ｐｙｔｈｏｎ"))
}

func TestSetContains(t *testing.T) {
	t.Parallel()

	s := Set{"Python", "SQL"}
	assert.True(t, s.Contains("python"))
	assert.False(t, s.Contains("Go"))
}
