// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"context"
	"time"
)

// Case names one independently matched reaction to a delivery.
type Case string

const (
	CaseIssueOpened               Case = "IssueOpened"
	CasePullRequestClosed         Case = "PullRequestClosed"
	CaseDeleteMergedBranch        Case = "DeleteMergedBranch"
	CasePullRequestOpenedWipCheck Case = "PullRequestOpenedWipCheck"
	CasePullRequestEditedWipCheck Case = "PullRequestEditedWipCheck"
)

// HandlerOutcome records how one matched case ended. Err is nil on success.
type HandlerOutcome struct {
	Case Case
	Err  error
}

// DispatchResult is returned for every acknowledged delivery, whether or not
// any case matched. Handler failures show up here and nowhere else.
type DispatchResult struct {
	DeliveryID string
	Repo       string
	Ignored    bool
	Cases      []Case
	Outcomes   []HandlerOutcome
}

// Failed returns the outcomes whose handler returned an error.
func (r *DispatchResult) Failed() []HandlerOutcome {
	var failed []HandlerOutcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// DeliveryDispatcher defines the contract for processing one webhook delivery
// end to end. It returns an error only when the delivery must be rejected;
// handler-level failures are reported in the result.
//
//go:generate mockgen -destination=../../mocks/mock_delivery_dispatcher.go -package=mocks . DeliveryDispatcher
type DeliveryDispatcher interface {
	Dispatch(ctx context.Context, deliveryID string, payload []byte) (*DispatchResult, error)
}

// Installation identifies where the app must authenticate. ID may be zero, in
// which case it is resolved from Owner and Repo.
type Installation struct {
	Owner string
	Repo  string
	ID    int64
}

// InstallationToken is a short-lived credential scoped to one installation.
type InstallationToken struct {
	Token          string
	InstallationID int64
	ExpiresAt      time.Time
}

// Expired reports whether the token is unusable at now, keeping leeway in hand
// for requests already in flight.
func (t *InstallationToken) Expired(now time.Time, leeway time.Duration) bool {
	if t == nil || t.Token == "" {
		return true
	}
	if t.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(leeway).Before(t.ExpiresAt)
}

// TokenProvider exchanges the app identity for an installation token.
//
//go:generate mockgen -destination=../../mocks/mock_token_provider.go -package=mocks . TokenProvider
type TokenProvider interface {
	InstallationToken(ctx context.Context, inst Installation) (*InstallationToken, error)
}

// RepositoryClientFactory binds a RepositoryClient to one repository and token.
//
//go:generate mockgen -destination=../../mocks/mock_repository_client_factory.go -package=mocks . RepositoryClientFactory
type RepositoryClientFactory interface {
	ForRepository(ctx context.Context, owner, repo string, token *InstallationToken) RepositoryClient
}

// RepositoryClient is the narrow set of GitHub operations handlers may use, all
// scoped to the repository it was created for.
//
//go:generate mockgen -destination=../../mocks/mock_repository_client.go -package=mocks . RepositoryClient
type RepositoryClient interface {
	GetIssue(ctx context.Context, number int) (*Issue, error)
	GetPullRequest(ctx context.Context, number int) (*PullRequest, error)
	AddLabel(ctx context.Context, number int, label string) error
	CreateIssueComment(ctx context.Context, number int, body string) error
	GetRef(ctx context.Context, branch string) (*Ref, error)
	DeleteRef(ctx context.Context, branch string) error
	CreateCommitStatus(ctx context.Context, sha string, status CommitStatus) error
}
