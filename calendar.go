package rsu

import (
	"fmt"

	"github.com/etnz/rsu/date"
)

// CalendarSection groups the vesting events of a calendar month.
type CalendarSection struct {
	Title  string // e.g. "2024 Jan"
	Events []VestEvent
	Total  Money
}

// GroupByMonth groups events by the year and month of their date.
//
// Sections come in the order their month first appears in events, so sorted
// events give chronological sections.
func GroupByMonth(events []VestEvent) []CalendarSection {
	var sections []CalendarSection
	index := make(map[string]int)
	for _, e := range events {
		title := fmt.Sprintf("%d %s", e.Date.Year(), e.Date.Month().String()[:3])
		i, ok := index[title]
		if !ok {
			i = len(sections)
			index[title] = i
			sections = append(sections, CalendarSection{Title: title})
		}
		sections[i].Events = append(sections[i].Events, e)
		sections[i].Total = sections[i].Total.Add(e.Value)
	}
	return sections
}

// EventsIn returns the events dated within r.
func EventsIn(events []VestEvent, r date.Range) []VestEvent {
	if r.IsOpen() {
		return events
	}
	var in []VestEvent
	for _, e := range events {
		if r.Contains(e.Date) {
			in = append(in, e)
		}
	}
	return in
}
