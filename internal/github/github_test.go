package github

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestServer(t *testing.T, gzipped bool) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, body string) {
		if gzipped {
			w.Header().Set("Content-Encoding", "gzip")
			gz := gzip.NewWriter(w)
			defer gz.Close()
			_, _ = gz.Write([]byte(body))
			return
		}
		_, _ = w.Write([]byte(body))
	}

	mux.HandleFunc("/users/octo", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		write(w, `{"login":"octo","public_repos":4,"followers":12}`)
	})
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("per_page") != perPage {
			t.Errorf("expected per_page=%s, got %q", perPage, r.URL.RawQuery)
		}
		write(w, `[
			{"name":"a","language":"Go","stargazers_count":5},
			{"name":"b","language":"Go","stargazers_count":1},
			{"name":"c","language":"Python","stargazers_count":0},
			{"name":"d","language":null,"stargazers_count":2}
		]`)
	})
	mux.HandleFunc("/users/broken", func(w http.ResponseWriter, r *http.Request) {
		write(w, `{"login":"broken","public_repos":1}`)
	})
	mux.HandleFunc("/users/broken/repos", func(w http.ResponseWriter, r *http.Request) {
		write(w, `not json`)
	})
	mux.HandleFunc("/users/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupAggregatesRepos(t *testing.T) {
	t.Parallel()

	for _, gzipped := range []bool{false, true} {
		srv := newTestServer(t, gzipped)
		c := New(zap.NewNop(), "secret", time.Second)
		c.APIURL = srv.URL

		stats, outcome := c.Lookup(context.Background(), " octo ")
		if outcome != Found {
			t.Fatalf("expected found outcome, got %s", outcome)
		}
		if stats.Repos != 4 || stats.Followers != 12 {
			t.Fatalf("unexpected profile counters: %+v", stats)
		}
		if stats.Stars != 8 {
			t.Fatalf("expected 8 stars, got %d", stats.Stars)
		}
		if len(stats.Languages) != 2 || stats.Languages["Go"] != 2 || stats.Languages["Python"] != 1 {
			t.Fatalf("unexpected language histogram: %v", stats.Languages)
		}
	}
}

func TestLookupAbsentCases(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, false)

	cases := []struct {
		name     string
		username string
		timeout  time.Duration
	}{
		{name: "empty username", username: "   "},
		{name: "not found", username: "ghost"},
		{name: "malformed repos", username: "broken"},
		{name: "timeout", username: "slow", timeout: 50 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := New(zap.NewNop(), "", tc.timeout)
			c.APIURL = srv.URL

			stats, outcome := c.Lookup(context.Background(), tc.username)
			if outcome != Absent {
				t.Fatalf("expected absent outcome, got %s", outcome)
			}
			if stats != nil {
				t.Fatalf("expected nil stats, got %+v", stats)
			}
		})
	}
}

func TestLookupNetworkFailure(t *testing.T) {
	t.Parallel()

	c := New(nil, "", 100*time.Millisecond)
	c.APIURL = "http://127.0.0.1:1"

	if _, outcome := c.Lookup(context.Background(), "octo"); outcome != Absent {
		t.Fatalf("expected absent outcome on network failure")
	}
}
