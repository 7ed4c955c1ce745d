// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/sync/singleflight"

	"github.com/sevigo/triage-warden/internal/config"
	"github.com/sevigo/triage-warden/internal/core"
)

// tokenLeeway keeps a cached token from being handed out right before it expires.
const tokenLeeway = time.Minute

// mintTimeout bounds a shared token request once it no longer follows any
// single caller's context.
const mintTimeout = 30 * time.Second

// ProviderOptions tune AppTokenProvider.
type ProviderOptions struct {
	// APIURL points at a GitHub Enterprise API; empty means github.com.
	APIURL string
	// Transport carries the app's JWT-signed requests. Defaults to http.DefaultTransport.
	Transport http.RoundTripper
	// Cache reuses installation tokens until shortly before they expire.
	Cache bool
}

// AppTokenProvider implements core.TokenProvider for a GitHub App.
type AppTokenProvider struct {
	appClient *github.Client
	cache     *tokenCache
	logger    *slog.Logger
}

// NewAppTokenProvider builds a provider from the app's immutable credentials.
// An unparsable private key is reported here, at startup, as core.ErrAuth.
func NewAppTokenProvider(creds config.AppCredentials, opts ProviderOptions, logger *slog.Logger) (*AppTokenProvider, error) {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	// The apps transport signs a short-lived JWT for every request made as the app.
	appTransport, err := ghinstallation.NewAppsTransport(base, creds.AppID, creds.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GitHub App transport: %w", core.ErrAuth, err)
	}

	appClient, err := newGitHubClient(&http.Client{Transport: appTransport}, opts.APIURL)
	if err != nil {
		return nil, err
	}

	p := &AppTokenProvider{appClient: appClient, logger: logger}
	if opts.Cache {
		p.cache = newTokenCache(time.Now)
	}
	return p, nil
}

// InstallationToken resolves the installation for inst (unless its ID is
// already known) and returns a token scoped to it. Every failure wraps core.ErrAuth.
func (p *AppTokenProvider) InstallationToken(ctx context.Context, inst core.Installation) (*core.InstallationToken, error) {
	id := inst.ID
	if id == 0 {
		installation, _, err := p.appClient.Apps.FindRepositoryInstallation(ctx, inst.Owner, inst.Repo)
		if err != nil {
			return nil, fmt.Errorf("%w: app is not installed on %s/%s: %w", core.ErrAuth, inst.Owner, inst.Repo, err)
		}
		id = installation.GetID()
		if id == 0 {
			return nil, fmt.Errorf("%w: no installation id returned for %s/%s", core.ErrAuth, inst.Owner, inst.Repo)
		}
	}

	if p.cache != nil {
		return p.cache.get(ctx, id, p.mint)
	}
	return p.mint(ctx, id)
}

func (p *AppTokenProvider) mint(ctx context.Context, installationID int64) (*core.InstallationToken, error) {
	token, _, err := p.appClient.Apps.CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create installation token for installation ID %d: %w", core.ErrAuth, installationID, err)
	}
	if token.GetToken() == "" {
		return nil, fmt.Errorf("%w: received an empty installation token", core.ErrAuth)
	}
	p.logger.Debug("created installation token", "installation_id", installationID, "expires_at", token.GetExpiresAt())

	return &core.InstallationToken{
		Token:          token.GetToken(),
		InstallationID: installationID,
		ExpiresAt:      token.GetExpiresAt().Time,
	}, nil
}

type mintFunc func(ctx context.Context, installationID int64) (*core.InstallationToken, error)

// tokenCache holds one token per installation. Concurrent misses for the same
// installation share a single mint.
type tokenCache struct {
	mu     sync.Mutex
	tokens map[int64]*core.InstallationToken
	group  singleflight.Group
	now    func() time.Time
}

func newTokenCache(now func() time.Time) *tokenCache {
	return &tokenCache{tokens: make(map[int64]*core.InstallationToken), now: now}
}

func (c *tokenCache) get(ctx context.Context, id int64, mint mintFunc) (*core.InstallationToken, error) {
	c.mu.Lock()
	tok, ok := c.tokens[id]
	c.mu.Unlock()
	if ok && !tok.Expired(c.now(), tokenLeeway) {
		return tok, nil
	}

	// The mint is shared with concurrent callers, so one caller going away
	// must not cancel it for the rest.
	mintCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mintTimeout)
	defer cancel()
	v, err, _ := c.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		fresh, err := mint(mintCtx, id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.tokens[id] = fresh
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		c.mu.Lock()
		delete(c.tokens, id)
		c.mu.Unlock()
		return nil, err
	}
	return v.(*core.InstallationToken), nil
}
