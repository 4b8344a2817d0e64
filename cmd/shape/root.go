package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-shape-utils/internal/config"
	"github.com/hasbyte1/go-shape-utils/internal/logging"
	"github.com/hasbyte1/go-shape-utils/internal/source"
	"github.com/hasbyte1/go-shape-utils/pivot"
)

// app holds the flag values shared by every subcommand.
type app struct {
	configPath string
	flags      config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.DefaultConfig()}

	root := &cobra.Command{
		Use:           "shape",
		Short:         "Group and transpose tabular records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML or JSON settings file")
	pf.StringVar(&a.flags.Format, "format", a.flags.Format, "output format: table, json or yaml")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&a.flags.Input, "input", "", "input format: csv, json or yaml (default from the file extension)")
	pf.StringSliceVar(&a.flags.Sort, "sort", nil, "sort records by these fields first; prefix a field with - for descending")

	root.AddCommand(newTransposeCmd(a), newGroupCmd(a))
	return root
}

// settings returns the config file values overlaid with every flag set on
// the command line.
func (a *app) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("format", func() { cfg.Format = a.flags.Format })
	set("log-level", func() { cfg.LogLevel = a.flags.LogLevel })
	set("input", func() { cfg.Input = a.flags.Input })
	set("sort", func() { cfg.Sort = a.flags.Sort })
	set("group", func() { cfg.Group = a.flags.Group })
	set("merge", func() { cfg.Merge = a.flags.Merge })
	set("keys", func() { cfg.Keys = a.flags.Keys })
	set("keep-empty", func() { cfg.KeepEmpty = a.flags.KeepEmpty })
	return cfg, nil
}

func (a *app) logger(cmd *cobra.Command, cfg config.Config) *zap.Logger {
	lvl, err := cfg.Level()
	if err != nil {
		return logging.Nop()
	}
	return logging.New(cmd.ErrOrStderr(), lvl)
}

// load reads the records at path and applies the configured sort.
func (a *app) load(cmd *cobra.Command, cfg config.Config, path string, log *zap.Logger) ([]pivot.Record, error) {
	var (
		records []pivot.Record
		err     error
	)
	format := source.Format(cfg.Input)
	if path == source.Stdin {
		if format == "" {
			return nil, fmt.Errorf("%w: --input is required when reading stdin", config.ErrInvalidConfig)
		}
		records, err = source.Load(cmd.InOrStdin(), format)
	} else {
		records, err = source.Open(path, format)
	}
	if err != nil {
		return nil, err
	}
	log.Debug("input loaded", zap.String("path", path), zap.Int("records", len(records)))

	if len(cfg.Sort) > 0 {
		records = sortRecords(records, cfg.Sort)
		log.Debug("records sorted", zap.Strings("by", cfg.Sort))
	}
	return records, nil
}

// sortRecords applies one stable sort per field, last field first, so the
// first field has the highest priority.
func sortRecords(records []pivot.Record, fields []string) []pivot.Record {
	for i := len(fields) - 1; i >= 0; i-- {
		if name, desc := strings.CutPrefix(fields[i], "-"); desc {
			records = pivot.SortByDesc(records, name)
		} else {
			records = pivot.SortBy(records, name)
		}
	}
	return records
}
