package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/triage-warden/internal/core"
	"github.com/sevigo/triage-warden/internal/jobs"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [payload.json]",
	Short: "Show which rules a webhook payload would trigger",
	Long: `Show which rules a webhook payload would trigger.

Nothing is sent to GitHub. Use "-" to read the payload from stdin.

Examples:
  triage-cli classify testdata/pull_request_closed.json
  triage-cli classify -o yaml - < delivery.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readPayload(args[0])
		if err != nil {
			return err
		}
		return classify(cmd.OutOrStdout(), viper.GetString("OUTPUT"), payload)
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(classifyCmd)
}

func classify(w io.Writer, format string, payload []byte) error {
	const id = "local"
	d, err := core.DeliveryFromPayload(id, payload)
	if err != nil {
		if errors.Is(err, core.ErrNotActionable) {
			r := newReport(id, nil, nil)
			r.Ignored = true
			return printReport(w, format, r)
		}
		return err
	}
	return printReport(w, format, newReport(id, d, jobs.Classify(d)))
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		return payload, nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return payload, nil
}
