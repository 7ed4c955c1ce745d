package jobs

import (
	"fmt"
	"io"
	"log/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func issuePayload(action string, number int) []byte {
	return fmt.Appendf(nil, `{"action":%q,"issue":{"number":%d,"user":{"login":"payload-user"}},
		"repository":{"name":"widgets","owner":{"login":"acme"}},"installation":{"id":99}}`, action, number)
}

// pullRequestPayload embeds a stale title and sha on purpose: handlers must
// use what the API returns, not these.
func pullRequestPayload(action string, number int) []byte {
	return fmt.Appendf(nil, `{"action":%q,"pull_request":{"number":%d,"title":"stale title","merged":false,
		"head":{"ref":"stale-branch","sha":"stale-sha"}},
		"repository":{"name":"widgets","owner":{"login":"acme"}},"installation":{"id":99}}`, action, number)
}
