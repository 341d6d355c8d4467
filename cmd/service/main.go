// Package main is the entry point of the studio site backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

// options are the command line flags.
type options struct {
	profile  string
	envFile  string
	seedOnly bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "studio-site",
		Short:         "Serve the design studio site API",
		Long:          "Serves the studio's services, portfolio and testimonials and accepts quote requests.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv("APP_ENVIRONMENT"),
		"config profile loaded from configs/<profile>.yaml (default $APP_ENVIRONMENT or local)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before configuration")
	cmd.Flags().BoolVar(&opts.seedOnly, "seed-only", false, "seed the default content and exit")

	cmd.AddCommand(newQuotesCommand(&opts))

	return cmd
}
