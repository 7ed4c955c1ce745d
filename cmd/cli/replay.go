package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/triage-warden/internal/core"
	"github.com/sevigo/triage-warden/internal/wire"
)

var deliveryID string

var replayCmd = &cobra.Command{
	Use:   "replay [payload.json]",
	Short: "Dispatch a saved webhook payload against GitHub",
	Long: `Dispatch a saved webhook payload against GitHub.

The payload is processed exactly as the server would process a delivery, using
the GitHub App configured through the environment. Handlers make real changes:
labels, comments, commit statuses and branch deletions.

Examples:
  triage-cli replay delivery.json
  triage-cli replay --delivery-id 8f3c0d2e -o yaml delivery.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	replayCmd.Flags().StringVar(&deliveryID, "delivery-id", "cli-replay", "Delivery ID attached to logs")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	payload, err := readPayload(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dispatcher, cleanup, err := wire.InitializeDispatcher()
	if err != nil {
		return fmt.Errorf("failed to initialize dispatcher: %w", err)
	}
	defer cleanup()

	result, err := dispatcher.Dispatch(ctx, deliveryID, payload)
	if err != nil {
		return fmt.Errorf("delivery rejected: %w", err)
	}

	return printReport(cmd.OutOrStdout(), viper.GetString("OUTPUT"), resultReport(payload, result))
}

// resultReport re-parses payload for the subject details, which the
// dispatch result does not carry.
func resultReport(payload []byte, result *core.DispatchResult) report {
	d, _ := core.DeliveryFromPayload(result.DeliveryID, payload)
	r := newReport(result.DeliveryID, d, result.Cases)
	r.Ignored = result.Ignored
	r.addOutcomes(result.Outcomes)
	return r
}
