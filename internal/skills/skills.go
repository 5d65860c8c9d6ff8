// Package skills extracts canonical skill labels from free-form resume text.
package skills

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// shortLabelLen is the longest label that gets word-boundary matching in strict mode.
const shortLabelLen = 2

// Set is a unique set of skill labels in vocabulary order.
type Set []string

// Contains reports whether the set holds label, ignoring case.
func (s Set) Contains(label string) bool {
	for _, v := range s {
		if strings.EqualFold(v, label) {
			return true
		}
	}
	return false
}

// Extractor finds vocabulary labels inside text.
type Extractor struct {
	vocabulary []string
	lowered    []string
	strict     bool
}

// NewExtractor builds an extractor for the vocabulary. With strictShort enabled labels of two
// characters or fewer ("Go", "R", "C#") only match as whole words.
func NewExtractor(vocabulary []string, strictShort bool) *Extractor {
	e := &Extractor{
		vocabulary: make([]string, 0, len(vocabulary)),
		lowered:    make([]string, 0, len(vocabulary)),
		strict:     strictShort,
	}
	for _, label := range vocabulary {
		label = Normalize(label)
		if label == "" {
			continue
		}
		e.vocabulary = append(e.vocabulary, label)
		e.lowered = append(e.lowered, strings.ToLower(label))
	}
	return e
}

// Extract returns every vocabulary label that occurs in text as a case-insensitive substring.
// It never fails; text without known labels yields an empty set.
func (e *Extractor) Extract(text string) Set {
	if e == nil || strings.TrimSpace(text) == "" {
		return Set{}
	}

	lowered := strings.ToLower(norm.NFKC.String(text))
	found := make(Set, 0)
	for i, label := range e.lowered {
		var present bool
		if e.strict && len([]rune(label)) <= shortLabelLen {
			present = containsWord(lowered, label)
		} else {
			present = strings.Contains(lowered, label)
		}
		if present {
			found = append(found, e.vocabulary[i])
		}
	}
	return found
}

// Normalize applies NFKC normalization, drops control characters and collapses whitespace.
func Normalize(label string) string {
	normed := norm.NFKC.String(label)
	normed = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, normed)
	return strings.Join(strings.Fields(normed), " ")
}

func containsWord(text, word string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(word)
		if isBoundary(text, idx-1) && isBoundary(text, end) {
			return true
		}
		start = idx + 1
		if start >= len(text) {
			return false
		}
	}
}

func isBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	r := rune(text[i])
	if r >= 0x80 {
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
}
