package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/triage-warden/internal/core"
)

const (
	triageLabel = "needs triage"

	msgIssueOpened     = "Thanks for opening this issue, @%s! The repository maintainers will look into it ASAP! :speech_balloon:"
	msgPullRequestDone = "Thanks for your contribution, @%s! Your pull request has been merged! :tada:"
	msgWorkInProgress  = "Your pull request is currently marked as a work in progress @%s!"
	msgReadyForReview  = "Your pull request is ready for review @%s!"
)

// handleIssueOpened labels a new issue for triage and thanks its author.
func handleIssueOpened(ctx context.Context, client core.RepositoryClient, d *core.Delivery, _ *slog.Logger) error {
	issue, err := client.GetIssue(ctx, d.Subject.Number)
	if err != nil {
		return err
	}
	if err := client.AddLabel(ctx, issue.Number, triageLabel); err != nil {
		return err
	}
	return client.CreateIssueComment(ctx, issue.Number, fmt.Sprintf(msgIssueOpened, issue.Author))
}

// handlePullRequestClosed thanks the author. It runs for every closed pull
// request, merged or not; the merged flag is only logged.
func handlePullRequestClosed(ctx context.Context, client core.RepositoryClient, d *core.Delivery, logger *slog.Logger) error {
	pr, err := client.GetPullRequest(ctx, d.Subject.Number)
	if err != nil {
		return err
	}
	logger.Debug("pull request closed", "number", pr.Number, "merged", pr.Merged)
	return client.CreateIssueComment(ctx, pr.Number, fmt.Sprintf(msgPullRequestDone, pr.Author))
}

// handleDeleteMergedBranch removes the pull request's head branch. A branch
// that is already gone surfaces as core.ErrNotFound.
func handleDeleteMergedBranch(ctx context.Context, client core.RepositoryClient, d *core.Delivery, logger *slog.Logger) error {
	pr, err := client.GetPullRequest(ctx, d.Subject.Number)
	if err != nil {
		return err
	}
	if pr.HeadRef == "" {
		return fmt.Errorf("pull request #%d has no head branch", pr.Number)
	}

	if _, err := client.GetRef(ctx, pr.HeadRef); err != nil {
		return err
	}
	if err := client.DeleteRef(ctx, pr.HeadRef); err != nil {
		return err
	}
	logger.Info("deleted head branch", "number", pr.Number, "branch", pr.HeadRef)
	return nil
}
