package report

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

// renderMarkdown builds the report document: run metadata plus the two
// ranked tables.
func renderMarkdown(res pipeline.Result) string {
	var b strings.Builder

	b.WriteString("# Storm Impact Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", res.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "Dataset rows: %d, of which %d fall in the analysis window (years after %d).\n\n",
		res.RowsRead, res.RowsKept, res.StartYear)

	b.WriteString("## Population health\n\n")
	if len(res.Health) == 0 {
		b.WriteString("No event types with recorded casualties in the window.\n\n")
	} else {
		b.WriteString("| Type of event | Fatalities | Injuries | Total casualties |\n")
		b.WriteString("| --- | ---: | ---: | ---: |\n")
		for _, row := range res.Health {
			fmt.Fprintf(&b, "| %s | %d | %d | %d |\n",
				escapeCell(row.EventType), row.Fatalities, row.Injuries, row.TotalAffected)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Economic consequences\n\n")
	if len(res.Economy) == 0 {
		b.WriteString("No event types with recorded damage in the window.\n\n")
	} else {
		b.WriteString("| Type of event | Property damage [USD] | Crop damage [USD] | Total damage [USD] |\n")
		b.WriteString("| --- | ---: | ---: | ---: |\n")
		for _, row := range res.Economy {
			fmt.Fprintf(&b, "| %s | %.0f | %.0f | %.0f |\n",
				escapeCell(row.EventType), row.PropertyDamage, row.CropDamage, row.TotalDamage)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// escapeCell keeps free-text event types from breaking table markup.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "/")
}
