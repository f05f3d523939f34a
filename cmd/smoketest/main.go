package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shenikar/safeguard_backend/internal/smoketest"
)

var (
	baseURL string
	apiKey  string
	timeout time.Duration

	rootCmd = &cobra.Command{
		Use:   "smoketest",
		Short: "Runs HTTP checks against a running SafeGuard backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := smoketest.NewRunner(baseURL, apiKey, timeout, cmd.OutOrStdout())
			summary := runner.Run(cmd.Context())
			if summary.Passed != summary.Total {
				return fmt.Errorf("%d of %d checks failed", summary.Total-summary.Passed, summary.Total)
			}
			return nil
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "backend base URL")
	rootCmd.Flags().StringVar(&apiKey, "api-key", os.Getenv("SAFEGUARD_API_KEY"), "API key for protected endpoints")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "per-request timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
