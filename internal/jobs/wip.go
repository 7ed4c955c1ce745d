package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sevigo/triage-warden/internal/core"
)

// wipMarkers flag a pull request title as not ready for review. Matching is
// case-insensitive on substrings, so "Fix WIP bug" counts.
var wipMarkers = []string{"wip", "work in progress", "do not merge"}

// IsWorkInProgress reports whether title contains any WIP marker.
func IsWorkInProgress(title string) bool {
	lower := strings.ToLower(title)
	for _, marker := range wipMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

type wipMode int

const (
	wipOnOpened wipMode = iota
	wipOnEdited
)

var (
	wipStatus = core.CommitStatus{
		State:       core.StatusPending,
		Description: "Work in progress",
		Context:     core.StatusContext,
	}
	readyStatus = core.CommitStatus{
		State:       core.StatusSuccess,
		Description: "Ready for review",
		Context:     core.StatusContext,
	}
)

// wipCheck gates a pull request on its current title. A clean title on an
// opened pull request leaves everything untouched; on an edit it flips the
// review status back to success.
func wipCheck(mode wipMode) HandlerFunc {
	return func(ctx context.Context, client core.RepositoryClient, d *core.Delivery, logger *slog.Logger) error {
		pr, err := client.GetPullRequest(ctx, d.Subject.Number)
		if err != nil {
			return err
		}

		status, body := wipStatus, fmt.Sprintf(msgWorkInProgress, pr.Author)
		if !IsWorkInProgress(pr.Title) {
			if mode == wipOnOpened {
				logger.Debug("pull request opened without WIP marker", "number", pr.Number)
				return nil
			}
			status, body = readyStatus, fmt.Sprintf(msgReadyForReview, pr.Author)
		}

		if pr.HeadSHA == "" {
			return fmt.Errorf("pull request #%d has no head SHA", pr.Number)
		}
		if err := client.CreateCommitStatus(ctx, pr.HeadSHA, status); err != nil {
			return err
		}
		logger.Info("review status set", "number", pr.Number, "sha", pr.HeadSHA, "state", status.State)

		return client.CreateIssueComment(ctx, pr.Number, body)
	}
}
