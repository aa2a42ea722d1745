package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render formats a run as human-readable text: a per-file status table,
// every error and warning itemized underneath, and an aggregate line last.
func Render(run RunSummary) string {
	var b strings.Builder

	b.WriteString(renderTable(run))
	b.WriteByte('\n')

	for _, f := range run.Files {
		if len(f.Errors) == 0 && len(f.Warnings) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", f.Path)
		for _, e := range f.Errors {
			fmt.Fprintf(&b, "  error:   %s\n", e)
		}
		for _, w := range f.Warnings {
			fmt.Fprintf(&b, "  warning: %s\n", w)
		}
	}

	verdict := "PASS"
	if !run.Valid() {
		verdict = "FAIL"
	}
	fmt.Fprintf(&b, "\n%s: %d files checked, %d invalid, %d errors, %d warnings\n",
		verdict, len(run.Files), run.InvalidFiles(), run.TotalErrors(), run.TotalWarnings())

	return b.String()
}

func renderTable(run RunSummary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Kind", "Status", "Errors", "Warnings"})

	for _, f := range run.Files {
		status := "valid"
		if !f.Valid() {
			status = "INVALID"
		}
		tw.AppendRow(table.Row{
			f.Path,
			f.Kind,
			status,
			strconv.Itoa(len(f.Errors)),
			strconv.Itoa(len(f.Warnings)),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
