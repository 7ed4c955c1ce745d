package github

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultBaseDelay = 500 * time.Millisecond
	defaultMaxDelay  = 10 * time.Second
)

// RetryConfig defines retry behavior for GitHub API requests.
type RetryConfig struct {
	MaxRetries int           // Retries after the first attempt; 0 disables retrying.
	BaseDelay  time.Duration // Delay before the first retry, doubled each time.
	MaxDelay   time.Duration // Upper bound for a single delay.
	RetryOn    []int         // HTTP status codes worth retrying.
}

// DefaultRetryConfig returns the default retry configuration with the given
// number of retries.
func DefaultRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  defaultBaseDelay,
		MaxDelay:   defaultMaxDelay,
		RetryOn: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// checkRetry retries transport errors the way retryablehttp does by default
// and status codes only when listed in RetryOn.
func (rc RetryConfig) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	return slices.Contains(rc.RetryOn, resp.StatusCode), nil
}

// idempotentTransport sends comment, label, status and token POSTs through
// exactly once and everything else through the retrying transport.
type idempotentTransport struct {
	base     http.RoundTripper
	retrying http.RoundTripper
}

func (t *idempotentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !isIdempotent(req) {
		return t.base.RoundTrip(req)
	}
	return t.retrying.RoundTrip(req)
}

// NewRetryTransport wraps base (http.DefaultTransport when nil) so idempotent
// requests are retried on transport errors and on cfg.RetryOn, with
// exponential backoff that honors Retry-After. logger may be nil.
func NewRetryTransport(base http.RoundTripper, cfg RetryConfig, logger *slog.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if cfg.MaxRetries <= 0 {
		return base
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{
		Transport: base,
		// Redirects stay with the caller's client, as for any RoundTripper.
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	client.RetryMax = cfg.MaxRetries
	client.RetryWaitMin = cfg.BaseDelay
	client.RetryWaitMax = cfg.MaxDelay
	client.CheckRetry = cfg.checkRetry
	client.Backoff = retryablehttp.DefaultBackoff
	// The last response goes back to go-github so it can build its ErrorResponse.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}

	return &idempotentTransport{
		base:     base,
		retrying: &retryablehttp.RoundTripper{Client: client},
	}
}

func isIdempotent(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}
