package tcgapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/tcg-tracker/internal/config"
	"github.com/Kamar-Folarin/tcg-tracker/internal/metrics"
)

// Client talks to the external card catalog API
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *logrus.Logger
	// backoff configuration
	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	sleep          func(ctx context.Context, d time.Duration) error
}

// ClientOption allows configuring the catalog client
type ClientOption func(*Client)

// WithRetryConfig configures retry behavior
func WithRetryConfig(maxRetries int, initialBackoff, maxBackoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.initialBackoff = initialBackoff
		c.maxBackoff = maxBackoff
	}
}

// WithBaseURL points the client at a different API root
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithAPIKey sets the key sent in the X-Api-Key header
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new catalog API client with the given options
func NewClient(logger *logrus.Logger, opts ...ClientOption) *Client {
	defaults := config.DefaultCatalogAPIConfig()
	client := &Client{
		client:         &http.Client{Timeout: defaults.Timeout},
		baseURL:        defaults.BaseURL,
		logger:         logger,
		maxRetries:     defaults.RateLimit.MaxRetries,
		initialBackoff: defaults.RateLimit.InitialBackoff,
		maxBackoff:     defaults.RateLimit.MaxBackoff,
		sleep:          sleepCtx,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// NewClientFromConfig builds a client from loaded configuration
func NewClientFromConfig(cfg *config.CatalogAPIConfig, logger *logrus.Logger) *Client {
	return NewClient(logger,
		WithBaseURL(cfg.BaseURL),
		WithAPIKey(cfg.APIKey),
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		WithRetryConfig(cfg.RateLimit.MaxRetries, cfg.RateLimit.InitialBackoff, cfg.RateLimit.MaxBackoff),
	)
}

func (c *Client) nextBackoff(backoff time.Duration) time.Duration {
	return time.Duration(math.Min(float64(backoff*2), float64(c.maxBackoff)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryAfter reads a Retry-After header expressed in seconds
func retryAfter(resp *http.Response, fallback time.Duration) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

// doRequestWithBackoff performs a GET with exponential backoff on transport
// errors, 429 and 5xx responses
func (c *Client) doRequestWithBackoff(ctx context.Context, path string, query url.Values, result interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	attempts := c.maxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	backoff := c.initialBackoff
	// set when a 429 already waited out its Retry-After
	waited := false

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if !waited {
				if err := c.sleep(ctx, backoff); err != nil {
					return err
				}
			}
			waited = false
			backoff = c.nextBackoff(backoff)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("X-Api-Key", c.apiKey)
		}

		start := time.Now()
		resp, err := c.client.Do(req)
		if err != nil {
			metrics.ObserveAPIRequest(0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = NewAPIError(0, "request failed", err)
			c.logger.Warnf("Request attempt %d to %s failed: %v", attempt+1, path, err)
			continue
		}
		metrics.ObserveAPIRequest(resp.StatusCode, time.Since(start))

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = NewAPIError(resp.StatusCode, "failed to read response body", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			wait := retryAfter(resp, backoff)
			if wait > c.maxBackoff {
				wait = c.maxBackoff
			}
			lastErr = NewAPIError(resp.StatusCode, "rate limit exceeded", nil)
			if attempt == attempts-1 {
				break
			}
			c.logger.Warnf("Rate limit exceeded. Waiting %v before retry", wait)
			if err := c.sleep(ctx, wait); err != nil {
				return err
			}
			waited = true
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), nil)
			if resp.StatusCode >= 500 {
				c.logger.Warnf("Request attempt %d to %s returned %d", attempt+1, path, resp.StatusCode)
				continue
			}
			return lastErr
		}

		if result != nil {
			if err := json.Unmarshal(body, result); err != nil {
				return NewAPIError(resp.StatusCode, "failed to decode response", err)
			}
		}

		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// GetCardsPage fetches one page of the card listing for query
func (c *Client) GetCardsPage(ctx context.Context, query string, page, pageSize int) (*CardsPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("invalid page %d", page)
	}
	if pageSize < 1 || pageSize > config.MaxPageSize {
		return nil, fmt.Errorf("invalid page size %d", pageSize)
	}

	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	c.logger.WithFields(logrus.Fields{
		"page":      page,
		"page_size": pageSize,
	}).Debug("Requesting cards page from catalog API")

	var result CardsPage
	if err := c.doRequestWithBackoff(ctx, "/cards", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TotalCount asks the API how many records match query
func (c *Client) TotalCount(ctx context.Context, query string) (int, error) {
	page, err := c.GetCardsPage(ctx, query, 1, 1)
	if err != nil {
		return 0, err
	}
	return page.TotalCount, nil
}

// SearchCards runs a raw card search with already encoded parameters
func (c *Client) SearchCards(ctx context.Context, params url.Values) (*SearchResult, error) {
	var result SearchResult
	if err := c.doRequestWithBackoff(ctx, "/cards", params, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		result.Data = []Card{}
	}
	return &result, nil
}

// GetCard fetches a single card by its catalog id
func (c *Client) GetCard(ctx context.Context, id string) (*Card, error) {
	if id == "" {
		return nil, fmt.Errorf("card id cannot be empty")
	}

	var envelope cardEnvelope
	if err := c.doRequestWithBackoff(ctx, "/cards/"+url.PathEscape(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// SearchURL renders the request URL for params, used as a cache key
func (c *Client) SearchURL(params url.Values) string {
	return c.baseURL + "/cards?" + params.Encode()
}
