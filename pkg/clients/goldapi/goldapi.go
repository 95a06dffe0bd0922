// Package goldapi wraps the goldapi.io precious metals quote endpoint.
package goldapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://www.goldapi.io/api"
	defaultTimeout = 5 * time.Second

	// silverSymbol is the only pair the tracker quotes.
	silverSymbol = "XAG/USD"

	// pricePath locates the spot price inside the quote payload.
	pricePath = "$.price"
)

// ErrNoPrice reports a well-formed response that lacks the price field.
var ErrNoPrice = errors.New("quote response has no price field")

// Client defines the interface for spot price retrieval.
type Client interface {
	SpotPrice(ctx context.Context) (float64, error)
}

type goldClient struct {
	httpClient *resty.Client
}

// NewClient creates a configured goldapi.io client. The API key travels in
// the x-access-token header on every request.
func NewClient(apiKey, baseURL string, timeout time.Duration) Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("x-access-token", apiKey).
		SetHeader("content-type", "application/json").
		SetTimeout(timeout)

	return &goldClient{httpClient: client}
}

// SpotPrice fetches the current silver quote in USD per troy ounce. The
// response carries many fields; only price matters, extracted by path so
// payload drift elsewhere cannot break the call.
func (c *goldClient) SpotPrice(ctx context.Context) (float64, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get("/" + silverSymbol)

	if err != nil {
		return 0, fmt.Errorf("goldapi call: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("goldapi error: %s", resp.Status())
	}

	var payload any
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return 0, fmt.Errorf("decode quote payload: %w", err)
	}

	raw, err := jsonpath.Get(pricePath, payload)
	if err != nil {
		return 0, ErrNoPrice
	}
	return toPrice(raw)
}

// toPrice converts the extracted JSON value to a float. goldapi serves plain
// numbers, but quoted numerics are tolerated.
func toPrice(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("quote price %q is not numeric: %w", v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("quote price has unexpected type %T", raw)
	}
}
