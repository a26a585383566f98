package cmd

import (
	"os"

	"seed-manager/core/ingest"
	"seed-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "seed-manager",
	Short: "Seed Manager",
	Long: `Seed Manager loads JSON, CSV and XLSX sources into normalized records
and seeds them into database tables. Sources can be local files or objects
in S3-compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console logger on stderr: stdout may carry command output
		l := logger.NewConsole()
		fields := []zap.Field{zap.Error(err)}
		if kind := ingest.KindOf(err); kind != ingest.KindUnknown {
			fields = append(fields, zap.String("kind", kind.String()))
		}
		l.Error("command failed", fields...)
		_ = l.Sync()
		os.Exit(1)
	}
}
