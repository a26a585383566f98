package cmd

import (
	"errors"
	"fmt"

	"seed-manager/core/database"
	"seed-manager/feature/seed"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedFlags  sourceFlags
	seedTable  string
	seedDryRun bool
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed <source>",
	Short: "Load a source and insert its records into a table",
	Long: `Loads a JSON, CSV or XLSX source and inserts every record into the given
table inside one transaction. Record keys must match table columns unless
SEED_ALLOW_UNKNOWN_COLUMNS is set. --dry-run only prints the plan.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedTable == "" {
			return errors.New("--table is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		records, err := a.load(cmd.Context(), args[0], seedFlags, cmd.InOrStdin())
		if err != nil {
			return err
		}

		db, err := database.Connect(a.cfg.Database)
		if err != nil {
			return err
		}
		svc := seed.NewService(db, a.cfg.Seed, a.logger)
		out := cmd.OutOrStdout()

		if seedDryRun {
			plan, err := svc.Plan(cmd.Context(), seedTable, records)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Table:    %s\n", plan.Table)
			fmt.Fprintf(out, "Rows:     %d\n", plan.Rows)
			fmt.Fprintf(out, "Batches:  %d\n", plan.Batches)
			fmt.Fprintf(out, "Columns:  %v\n", plan.Columns)
			if len(plan.Unknown) > 0 {
				fmt.Fprintf(out, "Unknown:  %v\n", plan.Unknown)
			}
			return nil
		}

		bar := progressbar.NewOptions(len(records),
			progressbar.OptionSetDescription("Seeding "+seedTable),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		)
		n, err := svc.Seed(cmd.Context(), seedTable, records, func(inserted int) {
			_ = bar.Set(inserted)
		})
		_ = bar.Finish()
		if err != nil {
			return err
		}

		a.logger.Info("Seed complete", zap.String("table", seedTable), zap.Int("rows", n))
		fmt.Fprintf(out, "\nInserted %d rows into %s\n", n, seedTable)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFlags.format, "format", "f", "", "source format (json, csv, xlsx)")
	seedCmd.Flags().BoolVar(&seedFlags.object, "object", false, "treat source as an object key in the configured bucket")
	seedCmd.Flags().StringVarP(&seedTable, "table", "t", "", "target table")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "print the plan without inserting")
	RootCmd.AddCommand(seedCmd)
}
