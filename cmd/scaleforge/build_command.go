package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"scaleforge/internal/config"
	"scaleforge/internal/index"
	"scaleforge/internal/library"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var only []string
	var skipIndex bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the scale library from the configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(only) > 0 {
				for _, name := range only {
					if !slices.Contains(config.KnownSources, name) {
						return fmt.Errorf("unknown source %q (known: %s)", name, strings.Join(config.KnownSources, ", "))
					}
				}
				cfg.Build.Sources = only
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			assembler := library.NewAssembler(cfg, logger, allSources())
			summary, err := assembler.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderStatusLine("Run", statusInfo, summary.RunID, colorize))
			for _, name := range sortedSourceNames(summary.PerSource) {
				message := fmt.Sprintf("%d scales", summary.PerSource[name])
				fmt.Fprintln(out, renderStatusLine(name, statusOK, message, colorize))
			}
			fmt.Fprintln(out, renderStatusLine("Total", statusOK, fmt.Sprintf("%d scales", summary.Total), colorize))

			if skipIndex {
				return nil
			}
			rows, err := index.Build(cmd.Context(), cfg.Paths.IndexPath, cfg.Paths.ScalesDir, summary.References, logger)
			if err != nil {
				return err
			}
			store, err := index.Open(cfg.Paths.IndexPath)
			if err != nil {
				return err
			}
			defer store.Close()

			csvPath := filepath.Join(cfg.Paths.ScalesDir, "scale-index.csv")
			if _, err := store.ExportCSV(cmd.Context(), csvPath); err != nil {
				return err
			}
			readmePath := filepath.Join(cfg.Paths.ScalesDir, "README.md")
			if err := index.WriteReadme(readmePath, summary.PerSource, summary.Total); err != nil {
				return err
			}
			fmt.Fprintln(out, renderStatusLine("Index", statusOK, fmt.Sprintf("%d rows in %s", rows, cfg.Paths.IndexPath), colorize))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "source", nil, "Run only the named sources (repeatable)")
	cmd.Flags().BoolVar(&skipIndex, "skip-index", false, "Skip the index rebuild, CSV export, and README report")
	return cmd
}

func sortedSourceNames(perSource map[string]int) []string {
	names := make([]string, 0, len(perSource))
	for name := range perSource {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
