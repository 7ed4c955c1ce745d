package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "triage-cli",
	Short: "triage-cli is the command-line interface for Triage Warden.",
	Long: `A CLI for inspecting and replaying GitHub webhook deliveries against the
Triage Warden rules, without running the webhook server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		switch viper.GetString("OUTPUT") {
		case formatText, formatYAML:
			return nil
		default:
			return fmt.Errorf("unsupported output format %q", viper.GetString("OUTPUT"))
		}
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatText, "Output format: text or yaml")

	if err := viper.BindPFlag("OUTPUT", rootCmd.PersistentFlags().Lookup("output")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("TW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
