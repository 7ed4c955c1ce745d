package core

import "errors"

var (
	// ErrAuth means an installation token could not be obtained. It is fatal
	// for the delivery: no handler runs.
	ErrAuth = errors.New("installation authentication failed")

	// ErrNotFound means the referenced issue, pull request or branch does not
	// exist on GitHub at the time of the call.
	ErrNotFound = errors.New("not found")

	// ErrTransient wraps transport failures that survived the client's retries.
	ErrTransient = errors.New("transient network error")

	// ErrNotActionable marks a delivery that carries nothing to act on, such as
	// one without a repository. It is acknowledged, not rejected.
	ErrNotActionable = errors.New("delivery is not actionable")

	// ErrMalformedPayload means the delivery body could not be decoded at all.
	ErrMalformedPayload = errors.New("malformed webhook payload")
)
