package core

// StatusContext scopes the bot's commit statuses apart from other checks.
const StatusContext = "review"

// StatusState is the state of a commit status.
type StatusState string

const (
	StatusPending StatusState = "pending"
	StatusSuccess StatusState = "success"
	StatusFailure StatusState = "failure"
	StatusError   StatusState = "error"
)

// Issue is the server-side view of an issue at read time.
type Issue struct {
	Number int
	Author string
}

// PullRequest is the server-side view of a pull request at read time. Title and
// HeadSHA change between deliveries, so callers always re-fetch.
type PullRequest struct {
	Number  int
	Author  string
	Title   string
	HeadRef string
	HeadSHA string
	Merged  bool
}

// Ref is a git reference such as a branch head.
type Ref struct {
	Name string
	SHA  string
}

// CommitStatus is one entry posted against a commit. A newer entry with the same
// Context supersedes older ones on GitHub.
type CommitStatus struct {
	State       StatusState
	Description string
	Context     string
}
