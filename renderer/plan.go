package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rsu"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders a vesting plan and the result of its validation.
func PlanMarkdown(plan rsu.VestingPlan, check rsu.PlanCheck) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Vesting Plan")
	doc.Table(planTable(plan))
	if check.OK {
		doc.PlainText(fmt.Sprintf("Total = %s (Valid)", check.Total.StringFixed(3)))
	} else {
		doc.PlainText(md.Bold(fmt.Sprintf("Total = %s (Must equal 100%%)", check.Total.StringFixed(3))))
	}
	return doc.String()
}
