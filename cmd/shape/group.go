package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-shape-utils/pivot"
)

func newGroupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group FILE",
		Short: "Partition records into a nested tree of buckets",
		Long: `The group command partitions consecutive records by each --keys field in
turn and prints the resulting tree. Records whose key is empty (null,
false, 0, "" or "0") are dropped unless --keep-empty is set.

Input that is not sorted by the key path produces one bucket per run; pass
--sort to group across runs.`,
		Example: "  shape group --keys decade,character --sort decade,character films.json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateGroup(); err != nil {
				return err
			}
			log := a.logger(cmd, cfg)
			defer func() { _ = log.Sync() }()

			records, err := a.load(cmd, cfg, args[0], log)
			if err != nil {
				return err
			}
			tree, err := pivot.GroupBy(records, cfg.Keys, cfg.KeepEmpty)
			if err != nil {
				return err
			}
			log.Info("groups formed",
				zap.Strings("keys", cfg.Keys),
				zap.Int("buckets", tree.Len()),
				zap.Int("records", tree.Count()))

			return writeTree(cmd.OutOrStdout(), cfg.Format, tree)
		},
	}

	cmd.Flags().StringSliceVar(&a.flags.Keys, "keys", nil, "comma-separated grouping path")
	cmd.Flags().BoolVar(&a.flags.KeepEmpty, "keep-empty", false, "keep records whose key is empty")
	return cmd
}
