package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-shape-utils/pivot"
)

func newTransposeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpose FILE",
		Short: "Spread field values into columns, one row per group",
		Long: `The transpose command groups records by --group and turns every distinct
value of each --merge spread field into a column holding the paired value
field. Groups that never saw a value get an empty cell.

FILE may be - to read standard input; --input then names its format.`,
		Example: "  shape transpose --group decade --merge character=appearances films.csv",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateTranspose(); err != nil {
				return err
			}
			log := a.logger(cmd, cfg)
			defer func() { _ = log.Sync() }()

			records, err := a.load(cmd, cfg, args[0], log)
			if err != nil {
				return err
			}
			merge, err := cfg.MergeMap()
			if err != nil {
				return err
			}
			rows, err := pivot.Transpose(records, cfg.Group, merge)
			if err != nil {
				return err
			}
			log.Info("rows emitted",
				zap.Int("records", len(records)),
				zap.Int("rows", len(rows)),
				zap.Int("columns", len(pivot.Columns(rows))))

			return writeRows(cmd.OutOrStdout(), cfg.Format, rows)
		},
	}

	cmd.Flags().StringVar(&a.flags.Group, "group", "", "field to group rows by")
	cmd.Flags().StringArrayVar(&a.flags.Merge, "merge", nil, "spread=value pair; repeat for several")
	return cmd
}
