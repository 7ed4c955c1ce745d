// Package jobs turns webhook deliveries into repository automation: labeling
// new issues, thanking contributors, deleting merged branches and gating
// work-in-progress pull requests with a commit status.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/triage-warden/internal/core"
)

// Dispatcher implements core.DeliveryDispatcher. It holds no per-delivery
// state, so one instance serves concurrent requests.
type Dispatcher struct {
	tokens  core.TokenProvider
	clients core.RepositoryClientFactory
	rules   []Rule
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher running DefaultRules.
func NewDispatcher(tokens core.TokenProvider, clients core.RepositoryClientFactory, logger *slog.Logger) *Dispatcher {
	if tokens == nil {
		panic("token provider cannot be nil")
	}
	if clients == nil {
		panic("repository client factory cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Dispatcher{tokens: tokens, clients: clients, rules: DefaultRules, logger: logger}
}

// Dispatch validates, authenticates, classifies and runs every matching
// handler for one delivery. Any delivery naming a repository is authenticated,
// even when no handler matches it. It returns an error only when the delivery
// must be rejected: the body is not JSON or no installation token could be
// obtained.
func (d *Dispatcher) Dispatch(ctx context.Context, deliveryID string, payload []byte) (*core.DispatchResult, error) {
	logger := d.logger.With("delivery", deliveryID)

	delivery, err := core.DeliveryFromPayload(deliveryID, payload)
	if err != nil {
		if errors.Is(err, core.ErrNotActionable) {
			logger.Debug("ignoring delivery", "reason", err.Error())
			return &core.DispatchResult{DeliveryID: deliveryID, Ignored: true}, nil
		}
		return nil, err
	}

	logger = logger.With("repo", delivery.FullName(), "action", delivery.Action)

	token, err := d.tokens.InstallationToken(ctx, core.Installation{
		Owner: delivery.Owner,
		Repo:  delivery.Repo,
		ID:    delivery.InstallationID,
	})
	if err != nil {
		logger.Error("failed to authenticate installation", "error", err)
		return nil, fmt.Errorf("failed to authenticate for %s: %w", delivery.FullName(), err)
	}

	result := &core.DispatchResult{DeliveryID: deliveryID, Repo: delivery.FullName()}
	matched := match(d.rules, delivery)
	result.Cases = casesOf(matched)
	if len(matched) == 0 {
		logger.Debug("no handler matched delivery", "subject", delivery.Subject.Kind)
		return result, nil
	}

	client := d.clients.ForRepository(ctx, delivery.Owner, delivery.Repo, token)

	for _, rule := range matched {
		err := d.run(ctx, rule, client, delivery, logger.With("case", rule.Case, "number", delivery.Subject.Number))
		result.Outcomes = append(result.Outcomes, core.HandlerOutcome{Case: rule.Case, Err: err})
	}

	logger.Info("delivery processed", "cases", len(result.Cases), "failed", len(result.Failed()))
	return result, nil
}

// run executes one handler, containing its errors and panics so sibling
// handlers still get their turn.
func (d *Dispatcher) run(ctx context.Context, rule Rule, client core.RepositoryClient, delivery *core.Delivery, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler %s panicked: %v", rule.Case, r)
			logger.Error("handler panicked", "panic", r)
		}
	}()

	err = rule.Handle(ctx, client, delivery, logger)
	switch {
	case err == nil:
		logger.Debug("handler finished")
	case errors.Is(err, core.ErrNotFound):
		logger.Info("handler target no longer exists", "error", err)
	default:
		logger.Error("handler failed", "error", err)
	}
	return err
}
