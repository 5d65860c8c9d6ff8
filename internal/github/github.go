package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	apiURL         = "https://api.github.com"
	userAgent      = "spigell/skillgap"
	defaultTimeout = 10 * time.Second
	// Max value for repositories per page.
	perPage = "100"
)

// Outcome tells the caller whether stats were obtained.
type Outcome int

const (
	Found Outcome = iota
	Absent
)

func (o Outcome) String() string {
	if o == Found {
		return "found"
	}
	return "absent"
}

// Stats are public activity metrics of a code-hosting account.
type Stats struct {
	Username  string         `json:"username"`
	Repos     int            `json:"total_repos"`
	Followers int            `json:"followers"`
	Languages map[string]int `json:"languages"`
	Stars     int            `json:"total_stars"`
}

type Client struct {
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

type Config struct {
	APIURL    string        `mapstructure:"api-url" validate:"omitempty,url"`
	TokenFile string        `mapstructure:"token-file"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

func New(logger *zap.Logger, token string, timeout time.Duration) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

type user struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

type repo struct {
	Name     string `mapstructure:"name"`
	Language string `mapstructure:"language"`
	Stars    int    `mapstructure:"stargazers_count"`
	Fork     bool   `mapstructure:"fork"`
}

// Lookup fetches profile and repository stats. Any failure (empty username, network error,
// non-2xx response, undecodable body) yields Absent and is only logged.
func (c *Client) Lookup(ctx context.Context, username string) (*Stats, Outcome) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, Absent
	}

	stats, err := c.lookup(ctx, username)
	if err != nil {
		c.logger.Warn("code hosting lookup failed, reputation treated as absent",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, Absent
	}

	c.logger.Debug("code hosting stats",
		zap.String("username", username),
		zap.Int("repos", stats.Repos),
		zap.Int("stars", stats.Stars),
		zap.Int("languages", len(stats.Languages)),
	)
	return stats, Found
}

func (c *Client) lookup(ctx context.Context, username string) (*Stats, error) {
	userURL := fmt.Sprintf("%s/users/%s", strings.TrimRight(c.APIURL, "/"), url.PathEscape(username))

	var u user
	if err := c.getJSON(ctx, userURL, nil, &u); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var items []any
	q := url.Values{}
	q.Set("per_page", perPage)
	if err := c.getJSON(ctx, userURL+"/repos", q, &items); err != nil {
		return nil, fmt.Errorf("get repos: %w", err)
	}

	var repos []repo
	if err := mapstructure.WeakDecode(items, &repos); err != nil {
		return nil, fmt.Errorf("decode repos: %w", err)
	}

	stats := &Stats{
		Username:  username,
		Repos:     u.PublicRepos,
		Followers: u.Followers,
		Languages: make(map[string]int),
	}
	for _, r := range repos {
		stats.Stars += r.Stars
		if r.Language != "" {
			stats.Languages[r.Language]++
		}
	}

	if stats.Repos < 0 || stats.Followers < 0 || stats.Stars < 0 {
		return nil, errors.New("negative counters in response")
	}

	return stats, nil
}
