package matching

import (
	"context"
	"strings"
)

// genericTokens never establish a match on their own: "Machine Learning" and "Deep Learning"
// share a word but are different skills.
var genericTokens = map[string]struct{}{
	"and": {}, "of": {}, "the": {}, "with": {}, "for": {}, "in": {}, "&": {}, "/": {},
	"learning": {}, "data": {}, "development": {}, "developer": {}, "engineering": {},
	"analysis": {}, "design": {}, "management": {}, "security": {}, "science": {},
	"cloud": {}, "web": {}, "testing": {}, "skills": {}, "basics": {},
}

// Lexical is the deterministic strategy used when no embedding backend is available.
// A required skill r is covered by a user skill u (compared case-insensitively, trimmed) when
// they are equal, one contains the other, or they share a non-generic word.
type Lexical struct{}

func (Lexical) Name() string { return StrategyLexical }

// Match never fails.
func (l Lexical) Match(_ context.Context, user, required []string) (Result, error) {
	return l.match(user, required), nil
}

func (Lexical) match(user, required []string) Result {
	users := make([]string, 0, len(user))
	for _, u := range user {
		if u = normalizeForMatch(u); u != "" {
			users = append(users, u)
		}
	}

	covered := make([]bool, len(required))
	for i, r := range required {
		r = normalizeForMatch(r)
		if r == "" {
			continue
		}
		for _, u := range users {
			if lexicalMatch(r, u) {
				covered[i] = true
				break
			}
		}
	}

	return newResult(StrategyLexical, required, covered)
}

func lexicalMatch(r, u string) bool {
	if r == u || strings.Contains(u, r) || strings.Contains(r, u) {
		return true
	}

	words := make(map[string]struct{})
	for _, w := range strings.Fields(u) {
		if _, generic := genericTokens[w]; !generic {
			words[w] = struct{}{}
		}
	}
	for _, w := range strings.Fields(r) {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

func normalizeForMatch(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
