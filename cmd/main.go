package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

var rootCmd = &cobra.Command{
	Use:           "identity-server",
	Short:         "FoodyGo identity server",
	Long:          "Accounts, sessions and tokens for the FoodyGo platform.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       buildVersion,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	rootCmd.SetVersionTemplate(versionString())
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func versionString() string {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	return fmt.Sprintf(tmpl, buildVersion, buildDate, buildCommit)
}
