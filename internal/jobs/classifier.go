package jobs

import (
	"context"
	"log/slog"

	"github.com/sevigo/triage-warden/internal/core"
)

// HandlerFunc performs the side effects for one matched case. It must re-read
// whatever it decides on through client instead of trusting the payload.
type HandlerFunc func(ctx context.Context, client core.RepositoryClient, d *core.Delivery, logger *slog.Logger) error

// Rule pairs a predicate with the handler it triggers. Rules are evaluated
// independently, so one delivery can match several of them.
type Rule struct {
	Case    core.Case
	Matches func(d *core.Delivery) bool
	Handle  HandlerFunc
}

// DefaultRules lists every case in the order its handler runs. The closed
// comment runs before the branch is deleted.
var DefaultRules = []Rule{
	{Case: core.CaseIssueOpened, Matches: issueAction(core.ActionOpened), Handle: handleIssueOpened},
	{Case: core.CasePullRequestClosed, Matches: pullRequestAction(core.ActionClosed), Handle: handlePullRequestClosed},
	{Case: core.CaseDeleteMergedBranch, Matches: pullRequestAction(core.ActionClosed), Handle: handleDeleteMergedBranch},
	{Case: core.CasePullRequestOpenedWipCheck, Matches: pullRequestAction(core.ActionOpened), Handle: wipCheck(wipOnOpened)},
	{Case: core.CasePullRequestEditedWipCheck, Matches: pullRequestAction(core.ActionEdited), Handle: wipCheck(wipOnEdited)},
}

func issueAction(action string) func(*core.Delivery) bool {
	return func(d *core.Delivery) bool {
		return d.HasAction && d.IsIssue() && d.Action == action
	}
}

func pullRequestAction(action string) func(*core.Delivery) bool {
	return func(d *core.Delivery) bool {
		return d.HasAction && d.IsPullRequest() && d.Action == action
	}
}

// Classify returns the cases DefaultRules select for d, in run order.
func Classify(d *core.Delivery) []core.Case {
	return casesOf(match(DefaultRules, d))
}

func match(rules []Rule, d *core.Delivery) []Rule {
	var matched []Rule
	for _, r := range rules {
		if r.Matches(d) {
			matched = append(matched, r)
		}
	}
	return matched
}

func casesOf(rules []Rule) []core.Case {
	cases := make([]core.Case, 0, len(rules))
	for _, r := range rules {
		cases = append(cases, r.Case)
	}
	return cases
}
