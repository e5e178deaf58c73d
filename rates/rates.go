// Package rates fetches the USD-BRL reference quote and supplies benchmark
// return series. It lives outside the analytics core: a fetch failure never
// affects engine correctness.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultURL is the public quote endpoint for the USD-BRL pair.
const DefaultURL = "https://economia.awesomeapi.com.br/json/last/USD-BRL"

const cacheKey = "USD-BRL"

// Client fetches quotes with a short-lived cache so a dashboard refreshing
// every minute does not hammer the upstream API.
type Client struct {
	url   string
	http  *http.Client
	cache *gocache.Cache
}

// NewClient returns a quote client with a 5-minute cache.
func NewClient() *Client {
	return NewClientURL(DefaultURL)
}

// NewClientURL is NewClient against a custom endpoint, used in tests.
func NewClientURL(url string) *Client {
	return &Client{
		url:   url,
		http:  &http.Client{Timeout: 10 * time.Second},
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

type quoteResponse struct {
	USDBRL struct {
		Bid string `json:"bid"`
	} `json:"USDBRL"`
}

// USDBRL returns the current USD-BRL bid, served from cache when fresh.
func (c *Client) USDBRL(ctx context.Context) (float64, error) {
	if v, ok := c.cache.Get(cacheKey); ok {
		return v.(float64), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch exchange rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch exchange rate: unexpected status %s", resp.Status)
	}

	var qr quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return 0, fmt.Errorf("decode exchange rate: %w", err)
	}
	if qr.USDBRL.Bid == "" {
		return 0, fmt.Errorf("decode exchange rate: missing bid")
	}

	rate, err := strconv.ParseFloat(qr.USDBRL.Bid, 64)
	if err != nil {
		return 0, fmt.Errorf("decode exchange rate: bid %q: %w", qr.USDBRL.Bid, err)
	}

	c.cache.Set(cacheKey, rate, gocache.DefaultExpiration)
	return rate, nil
}

// SimulatedMarketReturns generates n benchmark returns uniformly in
// [-1%, +1%], for beta when no real benchmark series is configured.
func SimulatedMarketReturns(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rand.Float64()*0.02 - 0.01
	}
	return out
}
