package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/triage-warden/internal/config"
	"github.com/sevigo/triage-warden/internal/core"
)

func TestNewAppTokenProvider_InvalidKey(t *testing.T) {
	creds := config.AppCredentials{AppID: 1, PrivateKey: []byte("not a key")}
	_, err := NewAppTokenProvider(creds, ProviderOptions{}, testLogger())
	assert.True(t, errors.Is(err, core.ErrAuth))
}

func TestAppTokenProvider_InstallationToken(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	tests := []struct {
		name        string
		inst        core.Installation
		installed   bool
		tokenStatus int
		wantErr     bool
		wantLookups int32
	}{
		{
			name:        "resolves installation from repository",
			inst:        core.Installation{Owner: "acme", Repo: "widgets"},
			installed:   true,
			tokenStatus: http.StatusCreated,
			wantLookups: 1,
		},
		{
			name:        "uses installation id from payload",
			inst:        core.Installation{Owner: "acme", Repo: "widgets", ID: 99},
			installed:   true,
			tokenStatus: http.StatusCreated,
			wantLookups: 0,
		},
		{
			name:        "app not installed",
			inst:        core.Installation{Owner: "acme", Repo: "private"},
			installed:   false,
			wantErr:     true,
			wantLookups: 1,
		},
		{
			name:        "token endpoint fails",
			inst:        core.Installation{Owner: "acme", Repo: "widgets", ID: 99},
			installed:   true,
			tokenStatus: http.StatusForbidden,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lookups atomic.Int32
			mux := http.NewServeMux()
			mux.HandleFunc("GET /repos/{owner}/{repo}/installation", func(w http.ResponseWriter, r *http.Request) {
				lookups.Add(1)
				assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))
				if !tt.installed {
					w.WriteHeader(http.StatusNotFound)
					_, _ = fmt.Fprint(w, `{"message":"Not Found"}`)
					return
				}
				_, _ = fmt.Fprint(w, `{"id":99}`)
			})
			mux.HandleFunc("POST /app/installations/99/access_tokens", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.tokenStatus)
				if tt.tokenStatus != http.StatusCreated {
					_, _ = fmt.Fprint(w, `{"message":"Resource not accessible by integration"}`)
					return
				}
				_, _ = fmt.Fprintf(w, `{"token":"ghs_test","expires_at":%q}`, expires.Format(time.RFC3339))
			})
			srv := newAPIServer(t, mux)

			creds := config.AppCredentials{AppID: 311895, PrivateKey: testPrivateKey(t)}
			p, err := NewAppTokenProvider(creds, ProviderOptions{APIURL: srv.URL}, testLogger())
			require.NoError(t, err)

			tok, err := p.InstallationToken(context.Background(), tt.inst)
			assert.Equal(t, tt.wantLookups, lookups.Load())
			if tt.wantErr {
				assert.True(t, errors.Is(err, core.ErrAuth), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ghs_test", tok.Token)
			assert.Equal(t, int64(99), tok.InstallationID)
			assert.True(t, expires.Equal(tok.ExpiresAt))
		})
	}
}

func TestTokenCache(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	var mints atomic.Int32
	mint := func(_ context.Context, id int64) (*core.InstallationToken, error) {
		n := mints.Add(1)
		return &core.InstallationToken{
			Token:          fmt.Sprintf("tok-%d-%d", id, n),
			InstallationID: id,
			ExpiresAt:      now.Add(time.Hour),
		}, nil
	}

	c := newTokenCache(func() time.Time { return now })

	first, err := c.get(context.Background(), 1, mint)
	require.NoError(t, err)
	second, err := c.get(context.Background(), 1, mint)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), mints.Load())

	_, err = c.get(context.Background(), 2, mint)
	require.NoError(t, err)
	assert.Equal(t, int32(2), mints.Load(), "installations are cached separately")

	// Inside the leeway window the cached token is no longer served.
	now = now.Add(time.Hour - 30*time.Second)
	third, err := c.get(context.Background(), 1, mint)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, third.Token)
	assert.Equal(t, int32(3), mints.Load())
}

func TestTokenCache_ConcurrentMissesShareOneMint(t *testing.T) {
	release := make(chan struct{})
	var mints atomic.Int32
	mint := func(_ context.Context, id int64) (*core.InstallationToken, error) {
		mints.Add(1)
		<-release
		return &core.InstallationToken{Token: "tok", InstallationID: id, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	c := newTokenCache(time.Now)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := c.get(context.Background(), 7, mint)
			assert.NoError(t, err)
			assert.Equal(t, "tok", tok.Token)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), mints.Load())
}

func TestTokenCache_CancelledCallerDoesNotFailOthers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	mint := func(ctx context.Context, id int64) (*core.InstallationToken, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return &core.InstallationToken{Token: "tok", InstallationID: id, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	c := newTokenCache(time.Now)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.get(firstCtx, 7, mint)
		firstErr <- err
	}()
	<-started

	secondTok := make(chan *core.InstallationToken, 1)
	secondErr := make(chan error, 1)
	go func() {
		tok, err := c.get(context.Background(), 7, mint)
		secondTok <- tok
		secondErr <- err
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	close(release)

	require.NoError(t, <-secondErr)
	assert.Equal(t, "tok", (<-secondTok).Token)
	assert.NoError(t, <-firstErr)
}

func TestTokenCache_FailureIsNotCached(t *testing.T) {
	calls := 0
	mint := func(_ context.Context, id int64) (*core.InstallationToken, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("%w: boom", core.ErrAuth)
		}
		return &core.InstallationToken{Token: "ok", InstallationID: id}, nil
	}
	c := newTokenCache(time.Now)

	_, err := c.get(context.Background(), 3, mint)
	assert.True(t, errors.Is(err, core.ErrAuth))

	tok, err := c.get(context.Background(), 3, mint)
	require.NoError(t, err)
	assert.Equal(t, "ok", tok.Token)
}
