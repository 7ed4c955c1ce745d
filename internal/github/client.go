// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/triage-warden/internal/core"
)

// newGitHubClient builds a go-github client, pointed at apiURL when set.
func newGitHubClient(httpClient *http.Client, apiURL string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if apiURL == "" {
		return client, nil
	}
	client, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
	}
	return client, nil
}

// ClientFactory implements core.RepositoryClientFactory on go-github.
type ClientFactory struct {
	baseURL   *url.URL
	transport http.RoundTripper
	logger    *slog.Logger
}

// NewClientFactory validates apiURL once so ForRepository cannot fail.
// transport sits under the token transport; use NewRetryTransport for retries.
func NewClientFactory(apiURL string, transport http.RoundTripper, logger *slog.Logger) (*ClientFactory, error) {
	base, err := newGitHubClient(nil, apiURL)
	if err != nil {
		return nil, err
	}
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &ClientFactory{baseURL: base.BaseURL, transport: transport, logger: logger}, nil
}

// ForRepository returns a client authenticated with token and bound to owner/repo.
func (f *ClientFactory) ForRepository(_ context.Context, owner, repo string, token *core.InstallationToken) core.RepositoryClient {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.Token})
	httpClient := &http.Client{Transport: &oauth2.Transport{Source: ts, Base: f.transport}}

	client := github.NewClient(httpClient)
	baseURL := *f.baseURL
	client.BaseURL = &baseURL

	return &repoClient{
		client: client,
		owner:  owner,
		repo:   repo,
		logger: f.logger.With("repo", owner+"/"+repo),
	}
}

type repoClient struct {
	client *github.Client
	owner  string
	repo   string
	logger *slog.Logger
}

// GetIssue retrieves a single issue by its number.
func (g *repoClient) GetIssue(ctx context.Context, number int) (*core.Issue, error) {
	issue, _, err := g.client.Issues.Get(ctx, g.owner, g.repo, number)
	if err != nil {
		return nil, g.fail("get issue", "number", number, err)
	}
	return &core.Issue{
		Number: issue.GetNumber(),
		Author: issue.GetUser().GetLogin(),
	}, nil
}

// GetPullRequest retrieves a single pull request by its number.
func (g *repoClient) GetPullRequest(ctx context.Context, number int) (*core.PullRequest, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, g.owner, g.repo, number)
	if err != nil {
		return nil, g.fail("get pull request", "number", number, err)
	}
	return &core.PullRequest{
		Number:  pr.GetNumber(),
		Author:  pr.GetUser().GetLogin(),
		Title:   pr.GetTitle(),
		HeadRef: pr.GetHead().GetRef(),
		HeadSHA: pr.GetHead().GetSHA(),
		Merged:  pr.GetMerged(),
	}, nil
}

// AddLabel adds label to an issue or pull request. GitHub ignores labels that
// are already present.
func (g *repoClient) AddLabel(ctx context.Context, number int, label string) error {
	_, _, err := g.client.Issues.AddLabelsToIssue(ctx, g.owner, g.repo, number, []string{label})
	return g.fail("add label", "number", number, err)
}

// CreateIssueComment creates a new comment on an issue or pull request.
func (g *repoClient) CreateIssueComment(ctx context.Context, number int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}
	_, _, err := g.client.Issues.CreateComment(ctx, g.owner, g.repo, number, comment)
	return g.fail("create comment", "number", number, err)
}

// GetRef looks up the head of branch.
func (g *repoClient) GetRef(ctx context.Context, branch string) (*core.Ref, error) {
	ref, _, err := g.client.Git.GetRef(ctx, g.owner, g.repo, "heads/"+branch)
	if err != nil {
		return nil, g.fail("get ref", "branch", branch, err)
	}
	return &core.Ref{Name: ref.GetRef(), SHA: ref.GetObject().GetSHA()}, nil
}

// DeleteRef deletes branch. A branch that is already gone yields core.ErrNotFound.
func (g *repoClient) DeleteRef(ctx context.Context, branch string) error {
	_, err := g.client.Git.DeleteRef(ctx, g.owner, g.repo, "heads/"+branch)
	return g.fail("delete ref", "branch", branch, err)
}

// CreateCommitStatus posts status against sha.
func (g *repoClient) CreateCommitStatus(ctx context.Context, sha string, status core.CommitStatus) error {
	repoStatus := &github.RepoStatus{
		State:       github.Ptr(string(status.State)),
		Description: github.Ptr(status.Description),
		Context:     github.Ptr(status.Context),
	}
	_, _, err := g.client.Repositories.CreateStatus(ctx, g.owner, g.repo, sha, repoStatus)
	return g.fail("create commit status", "sha", sha, err)
}

// fail classifies err and wraps it with op. Logging at error level is left to
// the caller that decides whether the failure matters.
func (g *repoClient) fail(op, key string, value any, err error) error {
	if err == nil {
		return nil
	}
	err = classifyError(err)
	g.logger.Debug("github request failed", "op", op, key, value, "error", err)
	return fmt.Errorf("failed to %s: %w", op, err)
}
