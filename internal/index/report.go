package index

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteReadme writes the batch report: a markdown table of per-source
// scale counts plus the grand total. Output depends only on the counts,
// so rebuilding an unchanged library rewrites an identical report.
func WriteReadme(path string, perSource map[string]int, total int) error {
	names := make([]string, 0, len(perSource))
	for name := range perSource {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Source", "Scales"})
	for _, name := range names {
		tw.AppendRow(table.Row{name, perSource[name]})
	}
	tw.AppendFooter(table.Row{"Total", total})

	var b strings.Builder
	b.WriteString("# Scale Library\n\n")
	b.WriteString("A library of musical scales in Scala scl format, assembled from\n")
	b.WriteString("historical catalogs, measured-instrument databases, and tuning\n")
	b.WriteString("mailing-list archives. Every file passed strict validation and\n")
	b.WriteString("fingerprint deduplication before inclusion.\n\n")
	b.WriteString(tw.RenderMarkdown())
	b.WriteString("\n\nSee scale-index.csv for the full per-scale index.\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write readme: %w", err)
	}
	return nil
}
