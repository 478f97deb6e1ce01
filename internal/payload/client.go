// Package payload reads the site content from the CMS REST API
package payload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/drivers/rdb"
	"github.com/vlatan/block-site/internal/metrics"
	"github.com/vlatan/block-site/internal/models"
)

// Page size used when walking a whole collection
const allPageSize = 100

type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	rdb          *rdb.Service
	cacheEnabled bool
	cacheTimeout time.Duration
}

// New creates the content API client.
// The Redis service is optional, without it nothing is cached.
func New(cfg *config.Config, httpClient *http.Client, rdb *rdb.Service) *Client {

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &Client{
		baseURL:      strings.TrimSuffix(cfg.PayloadURL, "/"),
		apiKey:       cfg.PayloadAPIKey,
		httpClient:   httpClient,
		rdb:          rdb,
		cacheEnabled: cfg.CacheEnabled && rdb != nil,
		cacheTimeout: cfg.CacheTimeout,
	}
}

// BaseURL is the CMS origin, without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// MediaURL gets the full URL of a media item.
// Absolute URLs pass through, relative ones are prefixed with the CMS origin.
func (c *Client) MediaURL(media *models.Media) string {
	if media == nil || media.URL == "" {
		return ""
	}

	if strings.HasPrefix(media.URL, "http") {
		return media.URL
	}

	return c.baseURL + media.URL
}

// find reads a collection and returns the whole envelope.
// Only non-preview reads go through the cache.
func find[T any](
	ctx context.Context,
	c *Client,
	endpoint string,
	query url.Values,
	preview bool,
) (*models.Response[T], error) {

	cacheKey := "payload:" + endpoint + "?" + query.Encode()

	resp, err := rdb.GetItems(
		c.cacheEnabled && !preview,
		ctx,
		c.rdb,
		cacheKey,
		c.cacheTimeout,
		func() (models.Response[T], error) {
			var resp models.Response[T]
			err := c.get(ctx, endpoint, query, preview, &resp)
			return resp, err
		},
	)

	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// findAll walks the pages of a collection until the last one
func findAll[T any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]T, error) {

	var docs []T
	for page := 1; ; page++ {

		q := cloneValues(query)
		q.Set("limit", strconv.Itoa(allPageSize))
		q.Set("page", strconv.Itoa(page))

		resp, err := find[T](ctx, c, endpoint, q, false)
		if err != nil {
			return nil, err
		}

		docs = append(docs, resp.Docs...)
		if !resp.HasNextPage || len(resp.Docs) == 0 {
			return docs, nil
		}
	}
}

func cloneValues(v url.Values) url.Values {
	clone := make(url.Values, len(v))
	for k, vals := range v {
		clone[k] = append([]string(nil), vals...)
	}
	return clone
}

// get issues a single GET request to /api/<endpoint> and decodes the JSON body
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, preview bool, dst any) error {

	u := c.baseURL + "/api/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("could not create a request to '%s': %w", endpoint, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if preview && c.apiKey != "" {
		req.Header.Set("Authorization", "users API-Key "+c.apiKey)
	}

	collection := endpoint
	timer := metrics.NewTimer()
	resp, err := c.httpClient.Do(req)
	timer.ObserveDuration(metrics.PayloadRequestDuration.WithLabelValues(collection))

	if err != nil {
		metrics.PayloadRequestsTotal.WithLabelValues(collection, "error").Inc()
		return fmt.Errorf("request to '%s' failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	metrics.PayloadRequestsTotal.WithLabelValues(collection, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Endpoint:   endpoint,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("could not decode the '%s' response: %w", endpoint, err)
	}

	return nil
}

// Health checks whether the CMS answers
func (c *Client) Health(ctx context.Context) map[string]any {

	start := time.Now()

	query := url.Values{}
	query.Set("limit", "1")
	query.Set("depth", "0")

	var resp models.Response[json.RawMessage]
	if err := c.get(ctx, "pages", query, false, &resp); err != nil {
		return map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}

	return map[string]any{
		"status":      "healthy",
		"response_ms": time.Since(start).Milliseconds(),
		"total_pages": resp.TotalDocs,
	}
}

// statusText is the reason phrase of the response
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// published is the base query of every public read
func published() url.Values {
	query := url.Values{}
	query.Set("where[status][equals]", "published")
	return query
}

// draft is the base query of every preview read
func draft() url.Values {
	query := url.Values{}
	query.Set("draft", "true")
	return query
}
