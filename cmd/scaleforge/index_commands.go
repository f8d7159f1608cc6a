package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scaleforge/internal/index"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Inspect and export the scale index",
	}

	indexCmd.AddCommand(newIndexShowCommand(ctx))
	indexCmd.AddCommand(newIndexExportCommand(ctx))

	return indexCmd
}

func newIndexShowCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the indexed scales as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := index.Open(cfg.Paths.IndexPath)
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := store.Rows(cmd.Context())
			if err != nil {
				return err
			}
			total := len(rows)
			if limit > 0 && limit < len(rows) {
				rows = rows[:limit]
			}

			headers := []string{"Directory", "File", "Notes", "Period", "Just", "Prime limit", "Description"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignRight, alignLeft}
			cells := make([][]string, 0, len(rows))
			for _, row := range rows {
				primeLimit := ""
				if row.Just {
					primeLimit = strconv.FormatInt(row.PrimeLimit, 10)
				}
				cells = append(cells, []string{
					row.Directory,
					row.File,
					strconv.Itoa(row.Notes),
					strconv.FormatFloat(row.PeriodCents, 'f', 2, 64),
					yesNo(row.Just),
					primeLimit,
					row.Description,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(headers, cells, aligns))
			fmt.Fprintf(out, "%d of %d scales\n", len(rows), total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many rows (0 for all)")
	return cmd
}

func newIndexExportCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the scale index as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := index.Open(cfg.Paths.IndexPath)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.ExportCSV(cmd.Context(), output)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			message := fmt.Sprintf("%d rows to %s", count, output)
			fmt.Fprintln(out, renderStatusLine("Export", statusOK, message, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "scale-index.csv", "Destination CSV path")
	return cmd
}
