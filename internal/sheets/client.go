// Package sheets fetches the published project spreadsheet and turns it into
// project records, falling back to the built-in list when that fails.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/devluplabs/socterm/internal/config"
	"github.com/devluplabs/socterm/internal/project"
	"github.com/devluplabs/socterm/internal/utils"
	"go.uber.org/zap"
)

var (
	// ErrNoSheetURL is returned when no export URL is configured.
	ErrNoSheetURL = errors.New("sheet url not configured")
	// ErrNoProjectData is returned when the export parses to zero rows.
	ErrNoProjectData = errors.New("no project data found")
)

// StatusError is a non-2xx response from the export endpoint.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheet export returned %s", e.Status)
}

const maxBodyBytes = 8 << 20

var (
	sharedHTTPClient *http.Client
	httpClientOnce   sync.Once
)

func getSharedHTTPClient() *http.Client {
	httpClientOnce.Do(func() {
		sharedHTTPClient = &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
			},
		}
	})
	return sharedHTTPClient
}

type Client struct {
	url     string
	doer    utils.Doer
	retry   *utils.RetryConfig
	timeout time.Duration
	logger  *zap.Logger
}

type Option func(*Client)

// WithDoer replaces the underlying HTTP client.
func WithDoer(d utils.Doer) Option {
	return func(c *Client) { c.doer = d }
}

func WithRetryConfig(rc *utils.RetryConfig) Option {
	return func(c *Client) { c.retry = rc }
}

// WithTimeout bounds a whole fetch, retries included. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a client for the export at url.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:     strings.TrimSpace(url),
		doer:    getSharedHTTPClient(),
		retry:   utils.DefaultRetryConfig(),
		timeout: 15 * time.Second,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.retry == nil {
		c.retry = utils.DefaultRetryConfig()
	}
	return c
}

// NewClientFromConfig builds a client with the fetch settings of cfg.
func NewClientFromConfig(cfg *config.Config, logger *zap.Logger) *Client {
	retry := utils.DefaultRetryConfig()
	retry.MaxRetries = cfg.Fetch.MaxRetries
	return NewClient(cfg.SheetURL,
		WithTimeout(cfg.FetchTimeout()),
		WithRetryConfig(retry),
		WithLogger(logger),
	)
}

// FetchProjects downloads and parses the export.
func (c *Client) FetchProjects(ctx context.Context) ([]project.Project, error) {
	if c.url == "" {
		return nil, ErrNoSheetURL
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	retry := *c.retry
	retry.OnRetry = func(attempt int, err error) {
		c.logger.Warn("retrying sheet fetch", zap.Int("attempt", attempt), zap.Error(err))
	}

	resp, err := utils.NewRetryableHTTPClient(c.doer, &retry).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	rows, err := ParseTable(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoProjectData
	}

	projects := RowsToProjects(rows)
	c.logger.Info("sheet loaded", zap.Int("projects", len(projects)))
	return projects, nil
}

// LoadResult is the outcome of Load. Projects is never empty; Fallback
// reports that the mock list replaced the sheet, with Err as the reason.
type LoadResult struct {
	Projects []project.Project
	Fallback bool
	Err      error
}

// Load fetches the sheet, substituting the mock projects on any failure.
func (c *Client) Load(ctx context.Context) LoadResult {
	projects, err := c.FetchProjects(ctx)
	if err != nil {
		c.logger.Warn("using mock projects", zap.Error(err))
		return LoadResult{Projects: project.MockProjects(), Fallback: true, Err: err}
	}
	return LoadResult{Projects: projects}
}
