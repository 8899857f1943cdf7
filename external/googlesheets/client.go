// Package googlesheets reads spreadsheet ranges through the Sheets v4 values API.
package googlesheets

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/nhl-sheet-sync/internal/domain/sheetimport"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/logging"
	"github.com/riskibarqy/nhl-sheet-sync/internal/platform/resilience"
	"golang.org/x/sync/singleflight"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

const (
	defaultTimeout  = 20 * time.Second
	maxErrorBodyLen = 240
)

var apiKeyParamRegex = regexp.MustCompile(`key=[^&\s"']+`)
var errSheetsTransient = crerr.New("google sheets transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	svc            *sheets.Service
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group
}

func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("googlesheets")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := &http.Client{Timeout: timeout}
	if cfg.HTTPClient != nil {
		// Work on a copy so the caller's client keeps its own settings.
		clone := *cfg.HTTPClient
		if clone.Timeout <= 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimRight(baseURL, "/")+"/"))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	breakerCfg := cfg.CircuitBreaker.Normalize()
	breaker := resilience.NewCircuitBreaker("googlesheets", breakerCfg)
	breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	})

	return &Client{
		svc:            svc,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// FetchRange returns the cells of rng (e.g. "Sheet1!A:I") as raw strings.
// An absent values array yields an empty grid.
func (c *Client) FetchRange(ctx context.Context, spreadsheetID, rng string) (sheetimport.Grid, error) {
	if !c.Configured() {
		return nil, crerr.New("google sheets api key is not configured")
	}

	key := spreadsheetID + "|" + rng
	out, err, _ := c.flight.Do(key, func() (any, error) {
		if !c.circuitEnabled {
			return c.fetchWithRetry(ctx, spreadsheetID, rng)
		}

		var grid sheetimport.Grid
		execErr := c.breaker.Execute(func() error {
			var fetchErr error
			grid, fetchErr = c.fetchWithRetry(ctx, spreadsheetID, rng)
			return fetchErr
		}, isCircuitFailure)
		if stderrors.Is(execErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "google sheets circuit breaker rejected request", "state", string(c.breaker.State()))
		}
		return grid, execErr
	})
	if err != nil {
		return nil, err
	}

	grid, ok := out.(sheetimport.Grid)
	if !ok {
		return nil, crerr.Newf("unexpected grid type %T", out)
	}
	return grid, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, spreadsheetID, rng string) (sheetimport.Grid, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rng).
			Context(ctx).
			Do(googleapi.QueryParameter("key", c.apiKey))
		if err == nil {
			return toGrid(resp.Values), nil
		}

		lastErr = c.classify(err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !crerr.Is(lastErr, errSheetsTransient) {
			return nil, lastErr
		}
		if attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "google sheets request failed", "range", rng, "error", lastErr)
	return nil, lastErr
}

func (c *Client) classify(err error) error {
	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		msg := c.redact(abbreviate(apiErr.Message))
		if isRetryableStatus(apiErr.Code) {
			return crerr.Wrapf(errSheetsTransient, "status=%d message=%s", apiErr.Code, msg)
		}
		return crerr.Newf("google sheets status=%d message=%s", apiErr.Code, msg)
	}
	return crerr.Wrapf(errSheetsTransient, "send request: %s", c.redact(err.Error()))
}

func (c *Client) redact(value string) string {
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
		value = strings.ReplaceAll(value, url.QueryEscape(c.apiKey), "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "key=REDACTED")
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errSheetsTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func toGrid(values [][]any) sheetimport.Grid {
	grid := make(sheetimport.Grid, 0, len(values))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		grid = append(grid, cells)
	}
	return grid
}

func abbreviate(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxErrorBodyLen {
		return text
	}
	cut := maxErrorBodyLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
