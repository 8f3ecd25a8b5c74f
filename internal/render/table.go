package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/roundtable/discussion"
	"github.com/roundtable/persona"
)

// Summary writes a per-turn status table followed by a one-line tally.
func Summary(w io.Writer, tr *discussion.Transcript, registry *persona.Registry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Round", "Persona", "Status", "Chars"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, t := range tr.Turns {
		name := t.Persona
		if registry != nil {
			if p, err := registry.Get(t.Persona); err == nil {
				name = p.Name
			}
		}

		status := "ok"
		if t.Failed() {
			status = "failed"
		}
		table.Append([]string{
			fmt.Sprintf("%d", t.Round),
			name,
			status,
			fmt.Sprintf("%d", len(t.Text)),
		})
	}
	table.Render()

	failed := lo.CountBy(tr.Turns, func(t discussion.Turn) bool { return t.Failed() })
	fmt.Fprintf(w, "%d turns over %d rounds, %d failed\n", tr.Len(), tr.Rounds(), failed)
}
