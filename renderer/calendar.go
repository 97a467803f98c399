package renderer

import (
	"bytes"

	"github.com/etnz/rsu"
	md "github.com/nao1215/markdown"
)

// CalendarMarkdown renders the vesting calendar, one section per month.
func CalendarMarkdown(title string, sections []rsu.CalendarSection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(sections) == 0 {
		doc.PlainText("No vesting events.")
		return doc.String()
	}
	for _, s := range sections {
		doc.H2(s.Title)
		table := eventsTable(s.Events, true)
		table.Rows = append(table.Rows, []string{md.Bold("Total"), "", "", md.Bold(s.Total.String())})
		doc.Table(table)
	}
	return doc.String()
}
