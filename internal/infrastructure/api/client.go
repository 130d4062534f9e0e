// Package api implements the transport gateway to the remote booking API:
// a thin JSON-over-HTTP client with a shared base address, bearer credential
// attachment, and a single normalized error shape for non-2xx responses.
// The gateway never retries; retry and surface policy belong to callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/salonova/booking-client/internal/core/ports"
	"github.com/salonova/booking-client/internal/pkg/metrics"
)

// Error is the normalized failure for any non-2xx response. The client does
// not distinguish 4xx from 5xx beyond the message.
type Error struct {
	Status     int
	StatusText string
}

func (e *Error) Error() string {
	return fmt.Sprintf("API Error: %d %s", e.Status, e.StatusText)
}

// Config captures the settings for constructing a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit caps outbound requests per second; Burst allows short spikes.
	RateLimit float64
	Burst     int
}

const (
	defaultTimeout = 15 * time.Second
	defaultRate    = 10
	defaultBurst   = 20
)

// Client is the HTTP implementation of all gateway ports. The credential is
// read through a ports.CredentialSource; the client never writes it.
type Client struct {
	baseURL string
	http    *http.Client
	cred    ports.CredentialSource
	limiter *rate.Limiter
	log     zerolog.Logger
}

func NewClient(cfg Config, cred ports.CredentialSource, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = defaultRate
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		cred:    cred,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		log:     log.With().Str("component", "api").Logger(),
	}
}

// request performs one round trip. A non-nil body is JSON-encoded; a non-nil
// out receives the decoded JSON response. A "no content" success yields an
// empty result with no deserialization attempt.
func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.cred.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, endpoint, "network").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, endpoint, err)
	}
	return nil
}
