package ratesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/core/ports/gateways"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrMissingAPIKey is returned without any network call when no API key is configured.
var ErrMissingAPIKey = errors.New("exchange rate api key not configured")

// maxBodyBytes bounds the response body read from the provider.
const maxBodyBytes = 1 << 20

// latestResponse is the subset of the provider's "latest" payload we use.
type latestResponse struct {
	Result             string                     `json:"result"`
	ErrorType          string                     `json:"error-type"`
	BaseCode           string                     `json:"base_code"`
	TimeLastUpdateUnix int64                      `json:"time_last_update_unix"`
	ConversionRates    map[string]decimal.Decimal `json:"conversion_rates"`
}

// Client fetches EUR-based quotes from an exchangerate-api compatible endpoint:
// GET <baseURL>/v6/<apiKey>/latest/EUR.
type Client struct {
	baseURL    string
	apiKey     string
	base       string
	httpClient *http.Client
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock overrides the time recorded as FetchedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a rate API client. timeout bounds each request.
func NewClient(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		base:       domain.CurrencyEUR,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ gateways.RateFetcher = (*Client)(nil)

// FetchLatest performs one request and returns the quotes for the supported currencies.
func (c *Client) FetchLatest(ctx context.Context) (*domain.RateSnapshot, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := fmt.Sprintf("%s/v6/%s/latest/%s", c.baseURL, url.PathEscape(c.apiKey), c.base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the URL embeds the key, so do not surface *url.Error verbatim
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload latestResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed rate response: %w", err)
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("rate provider returned result %q (%s)", payload.Result, payload.ErrorType)
	}
	if payload.BaseCode != "" && domain.NormalizeCurrencyCode(payload.BaseCode) != c.base {
		return nil, fmt.Errorf("rate provider returned base %q, want %s", payload.BaseCode, c.base)
	}

	quotes := make(map[string]decimal.Decimal, len(domain.SupportedCurrencyCodes()))
	for _, code := range domain.SupportedCurrencyCodes() {
		if code == c.base {
			continue
		}
		if q, ok := payload.ConversionRates[code]; ok && q.IsPositive() {
			quotes[code] = q
		}
	}
	if len(quotes) == 0 {
		return nil, errors.New("malformed rate response: no usable conversion_rates")
	}

	return &domain.RateSnapshot{
		SnapshotID: uuid.NewString(),
		Base:       c.base,
		Quotes:     quotes,
		FetchedAt:  c.now().UTC(),
	}, nil
}
