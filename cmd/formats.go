package cmd

import (
	"fmt"

	"seed-manager/core/ingest/builtin"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// formatsCmd represents the formats command
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered source formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := builtin.NewRegistry(builtin.Config{}, zap.NewNop())
		out := cmd.OutOrStdout()
		for _, f := range reg.Formats() {
			h, err := reg.Resolve(f)
			if err != nil {
				return err
			}
			multi := ""
			if h.MultipleCollections() {
				multi = " (multiple collections)"
			}
			fmt.Fprintf(out, "%s%s\n", f, multi)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(formatsCmd)
}
