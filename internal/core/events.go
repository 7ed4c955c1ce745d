// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-github/v73/github"
)

// Webhook actions the bot reacts to.
const (
	ActionOpened = "opened"
	ActionClosed = "closed"
	ActionEdited = "edited"
)

// SubjectKind tags which entity a delivery is about.
type SubjectKind int

const (
	SubjectNone SubjectKind = iota
	SubjectIssue
	SubjectPullRequest
)

func (k SubjectKind) String() string {
	switch k {
	case SubjectIssue:
		return "issue"
	case SubjectPullRequest:
		return "pull_request"
	default:
		return "none"
	}
}

// Subject identifies the issue or pull request a delivery refers to. Only the
// number is trusted from the payload; everything else is re-read from GitHub.
type Subject struct {
	Kind   SubjectKind
	Number int
}

// Delivery is the validated, internal view of one webhook delivery.
type Delivery struct {
	ID             string
	Action         string
	HasAction      bool
	Owner          string
	Repo           string
	InstallationID int64
	Subject        Subject
}

// FullName returns "owner/repo".
func (d *Delivery) FullName() string {
	return d.Owner + "/" + d.Repo
}

// IsIssue reports whether the delivery carries an issue.
func (d *Delivery) IsIssue() bool {
	return d.Subject.Kind == SubjectIssue
}

// IsPullRequest reports whether the delivery carries a pull request.
func (d *Delivery) IsPullRequest() bool {
	return d.Subject.Kind == SubjectPullRequest
}

// deliveryPayload mirrors only the top-level keys that decide routing. A key
// that is absent or null decodes to nil.
type deliveryPayload struct {
	Action       *string              `json:"action"`
	Repository   *github.Repository   `json:"repository"`
	Installation *github.Installation `json:"installation"`
	Issue        *github.Issue        `json:"issue"`
	PullRequest  *github.PullRequest  `json:"pull_request"`
}

// DeliveryFromPayload decodes a raw webhook body into a Delivery. It acts as an
// anti-corruption layer: handlers downstream receive typed, already-checked fields.
// A body that is not JSON returns ErrMalformedPayload; a body without a usable
// repository returns ErrNotActionable.
//
// A delivery has at most one subject. If a body carries both an issue and a
// pull_request key, the issue wins and only issue rules can match. GitHub
// never sends that shape: pull request events carry no issue key, and issue
// events for pull requests carry the link inside issue.pull_request instead.
func DeliveryFromPayload(id string, payload []byte) (*Delivery, error) {
	var p deliveryPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	repo := p.Repository
	if repo == nil {
		return nil, fmt.Errorf("%w: repository is missing", ErrNotActionable)
	}
	if repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("%w: repository owner or name is missing", ErrNotActionable)
	}

	d := &Delivery{
		ID:             id,
		Owner:          repo.GetOwner().GetLogin(),
		Repo:           repo.GetName(),
		InstallationID: p.Installation.GetID(),
	}
	if p.Action != nil {
		d.Action = *p.Action
		d.HasAction = true
	}

	switch {
	case p.Issue != nil:
		d.Subject = Subject{Kind: SubjectIssue, Number: p.Issue.GetNumber()}
	case p.PullRequest != nil:
		d.Subject = Subject{Kind: SubjectPullRequest, Number: p.PullRequest.GetNumber()}
	}
	if d.Subject.Kind != SubjectNone && d.Subject.Number <= 0 {
		return nil, fmt.Errorf("%w: invalid %s number %d", ErrNotActionable, d.Subject.Kind, d.Subject.Number)
	}

	return d, nil
}
