package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scaleforge/internal/library"
	"scaleforge/internal/validate"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate every scl file in the scales tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dir := cfg.Paths.ScalesDir
			if len(args) == 1 {
				dir = args[0]
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			count, err := validate.CheckDir(dir, library.PolicyFrom(cfg), logger)
			if err != nil {
				return err
			}
			perDir, err := countPerDirectory(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dirs := make([]string, 0, len(perDir))
			for d := range perDir {
				dirs = append(dirs, d)
			}
			sort.Strings(dirs)
			rows := make([][]string, 0, len(dirs))
			for _, d := range dirs {
				rows = append(rows, []string{d, strconv.Itoa(perDir[d])})
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable([]string{"Directory", "Scales"}, rows, []columnAlignment{alignLeft, alignRight}))
			}
			message := fmt.Sprintf("%d scl files valid in %s", count, dir)
			fmt.Fprintln(out, renderStatusLine("Check", statusOK, message, shouldColorize(out)))
			return nil
		},
	}
}

// countPerDirectory tallies scl files by directory relative to root.
func countPerDirectory(root string) (map[string]int, error) {
	perDir := map[string]int{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".scl") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		dir := filepath.ToSlash(filepath.Dir(rel))
		perDir[dir]++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return perDir, nil
}
