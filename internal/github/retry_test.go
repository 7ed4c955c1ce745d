package github

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// fastRetryConfig keeps backoff short enough for unit tests.
func fastRetryConfig(maxRetries int) RetryConfig {
	cfg := DefaultRetryConfig(maxRetries)
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return cfg
}

func TestRetryTransport(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		statuses   []int
		maxRetries int
		wantCalls  int32
		wantStatus int
	}{
		{name: "GET recovers after 502", method: http.MethodGet, statuses: []int{502, 200}, maxRetries: 3, wantCalls: 2, wantStatus: 200},
		{name: "GET gives up after max retries", method: http.MethodGet, statuses: []int{503, 503, 503}, maxRetries: 2, wantCalls: 3, wantStatus: 503},
		{name: "DELETE retried", method: http.MethodDelete, statuses: []int{500, 204}, maxRetries: 1, wantCalls: 2, wantStatus: 204},
		{name: "PUT body replayed", method: http.MethodPut, body: `{"labels":["x"]}`, statuses: []int{502, 200}, maxRetries: 1, wantCalls: 2, wantStatus: 200},
		{name: "POST never retried", method: http.MethodPost, body: `{"body":"hi"}`, statuses: []int{502, 201}, maxRetries: 3, wantCalls: 1, wantStatus: 502},
		{name: "404 not retried", method: http.MethodGet, statuses: []int{404, 200}, maxRetries: 3, wantCalls: 1, wantStatus: 404},
		{name: "501 not in retry list", method: http.MethodGet, statuses: []int{501, 200}, maxRetries: 3, wantCalls: 1, wantStatus: 501},
		{name: "retries disabled", method: http.MethodGet, statuses: []int{502, 200}, maxRetries: 0, wantCalls: 1, wantStatus: 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				if tt.body != "" {
					buf := new(strings.Builder)
					_, _ = io.Copy(buf, r.Body)
					assert.Equal(t, tt.body, buf.String())
				}
				w.WriteHeader(tt.statuses[min(int(n)-1, len(tt.statuses)-1)])
			}))
			defer srv.Close()

			rt := NewRetryTransport(nil, fastRetryConfig(tt.maxRetries), testLogger())

			req, err := http.NewRequest(tt.method, srv.URL, strings.NewReader(tt.body))
			require.NoError(t, err)

			resp, err := rt.RoundTrip(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestRetryTransport_TransportError(t *testing.T) {
	var calls atomic.Int32
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if calls.Add(1) < 3 {
			return nil, errors.New("connection reset by peer")
		}
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	})
	rt := NewRetryTransport(base, fastRetryConfig(3), nil)

	req, err := http.NewRequest(http.MethodGet, "https://api.github.com/repos/acme/widgets", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryTransport_PostTransportErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	base := roundTripFunc(func(*http.Request) (*http.Response, error) {
		calls.Add(1)
		return nil, errors.New("connection reset by peer")
	})
	rt := NewRetryTransport(base, fastRetryConfig(3), nil)

	req, err := http.NewRequest(http.MethodPost, "https://api.github.com/repos/acme/widgets/issues/1/comments", strings.NewReader(`{}`))
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryTransport_StopsOnCancelledContext(t *testing.T) {
	var calls atomic.Int32
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return &http.Response{StatusCode: http.StatusBadGateway, Body: http.NoBody, Request: r}, nil
	})
	rt := NewRetryTransport(base, fastRetryConfig(5), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.github.com/", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	if resp != nil {
		_ = resp.Body.Close()
	}
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.LessOrEqual(t, calls.Load(), int32(1))
}

func TestRetryConfig_CheckRetry(t *testing.T) {
	rc := DefaultRetryConfig(3)
	ctx := context.Background()

	for _, code := range []int{429, 500, 502, 503, 504} {
		retry, err := rc.checkRetry(ctx, &http.Response{StatusCode: code}, nil)
		require.NoError(t, err)
		assert.True(t, retry, "status %d", code)
	}
	for _, code := range []int{200, 201, 204, 401, 403, 404, 422} {
		retry, err := rc.checkRetry(ctx, &http.Response{StatusCode: code}, nil)
		require.NoError(t, err)
		assert.False(t, retry, "status %d", code)
	}
}
