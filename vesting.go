package rsu

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/rsu/date"
)

// Frequency is how often a YearRule releases shares.
type Frequency string

const (
	Annual        Frequency = "annual"
	Monthly       Frequency = "monthly"
	Quarterly     Frequency = "quarterly"
	Every3Months  Frequency = "every_3_months"
	CustomNMonths Frequency = "custom_n_months"
)

// Frequencies lists the known frequencies, in display order.
var Frequencies = []Frequency{Annual, Monthly, Quarterly, Every3Months, CustomNMonths}

// Known reports whether f is one of the defined frequencies.
func (f Frequency) Known() bool { return slices.Contains(Frequencies, f) }

// ParseFrequency parses a frequency name, "every 3 months" is accepted as well as "every_3_months".
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_"))
	if !f.Known() {
		return "", fmt.Errorf("unknown frequency %q, want one of %v", s, Frequencies)
	}
	return f, nil
}

// YearRule is the vesting policy of one year of the plan.
type YearRule struct {
	Year      int       `json:"year"` // 1 to 4
	Frequency Frequency `json:"frequency"`
	// Percentage is released once for Annual, and per period for the other frequencies.
	// nil means the percentage has not been provided.
	Percentage *Percent `json:"percentage,omitempty"`
	NMonths    int      `json:"nMonths,omitempty"` // only for CustomNMonths
}

// PlanYears is the number of YearRules in a plan.
const PlanYears = 4

// VestingPlan describes how a grant vests over PlanYears years.
type VestingPlan struct {
	Rules []YearRule `json:"rules"`
}

// PeriodsInYear returns the number of vesting events the rule produces in its year.
func PeriodsInYear(rule YearRule) int {
	switch rule.Frequency {
	case Monthly:
		return 12
	case Quarterly, Every3Months:
		return 4
	case CustomNMonths:
		n := rule.NMonths
		if n == 0 {
			n = 1
		}
		return max(1, 12/n)
	default:
		return 1
	}
}

// monthStep returns the number of months between two events of the rule.
func monthStep(rule YearRule) int {
	switch rule.Frequency {
	case Quarterly, Every3Months:
		return 3
	case CustomNMonths:
		if rule.NMonths <= 0 {
			return 2
		}
		return rule.NMonths
	default:
		return 1
	}
}

// missing reports whether the rule lacks information to be part of a valid plan.
func (r YearRule) missing() bool {
	if r.Percentage == nil || !r.Frequency.Known() {
		return true
	}
	return r.Frequency == CustomNMonths && r.NMonths <= 0
}

// contribution returns the share of the whole grant the rule vests.
func (r YearRule) contribution() Percent {
	if r.Percentage == nil {
		return Percent{}
	}
	if r.Frequency == Annual {
		return *r.Percentage
	}
	return r.Percentage.Times(PeriodsInYear(r))
}

// PlanCheck is the result of CheckPlan.
type PlanCheck struct {
	OK    bool    `json:"ok"`
	Total Percent `json:"total"` // rounded to 3 decimals
}

// CheckPlan validates that rules vest exactly 100% of a grant.
//
// Total is computed even when the plan is not acceptable, so that it can be
// reported back to the user.
func CheckPlan(rules []YearRule) PlanCheck {
	var total Percent
	missing := len(rules) != PlanYears
	for i, r := range rules {
		if r.missing() || r.Year != i+1 {
			missing = true
		}
		total = total.Add(r.contribution())
	}
	return PlanCheck{
		OK:    !missing && total.Near(P(100), 0.001),
		Total: total.Round(3),
	}
}

// DefaultPlan vests 25% after the first year then quarterly over the next three.
func DefaultPlan() VestingPlan {
	rule := func(year int, f Frequency, pct float64) YearRule {
		p := P(pct)
		return YearRule{Year: year, Frequency: f, Percentage: &p}
	}
	return VestingPlan{Rules: []YearRule{
		rule(1, Annual, 25),
		rule(2, Quarterly, 6.25),
		rule(3, Quarterly, 6.25),
		rule(4, Quarterly, 6.25),
	}}
}

// ParsePlan parses a plan from its compact form, one "frequency:percent[:months]"
// per year, separated by commas:
//
//	annual:25,monthly:2.083333,quarterly:6.25,custom_n_months:12.5:6
//
// An empty percent is kept as a missing percentage, so that CheckPlan can report it.
func ParsePlan(s string) (VestingPlan, error) {
	items := strings.Split(s, ",")
	if len(items) != PlanYears {
		return VestingPlan{}, fmt.Errorf("invalid plan %q: want %d rules, got %d", s, PlanYears, len(items))
	}
	plan := VestingPlan{Rules: make([]YearRule, 0, PlanYears)}
	for i, item := range items {
		parts := strings.Split(strings.TrimSpace(item), ":")
		if len(parts) < 2 || len(parts) > 3 {
			return VestingPlan{}, fmt.Errorf("invalid rule %q for year %d: want frequency:percent[:months]", item, i+1)
		}
		f, err := ParseFrequency(parts[0])
		if err != nil {
			return VestingPlan{}, fmt.Errorf("invalid rule for year %d: %w", i+1, err)
		}
		rule := YearRule{Year: i + 1, Frequency: f}
		if v, err := ParseDecimal(SanitizeDecimal(parts[1], 6)); err == nil {
			p := P(v)
			rule.Percentage = &p
		}
		if len(parts) == 3 {
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return VestingPlan{}, fmt.Errorf("invalid month interval %q for year %d: %w", parts[2], i+1, err)
			}
			rule.NMonths = n
		}
		plan.Rules = append(plan.Rules, rule)
	}
	return plan, nil
}

// String returns the compact form of the plan, as read by ParsePlan.
func (p VestingPlan) String() string {
	items := make([]string, 0, len(p.Rules))
	for _, r := range p.Rules {
		pct := ""
		if r.Percentage != nil {
			pct = r.Percentage.value.String()
		}
		item := string(r.Frequency) + ":" + pct
		if r.Frequency == CustomNMonths {
			item += ":" + strconv.Itoa(r.NMonths)
		}
		items = append(items, item)
	}
	return strings.Join(items, ",")
}

// VestEvent is a single release of shares.
type VestEvent struct {
	Date   date.Date `json:"date"`
	Symbol string    `json:"symbol"`
	Shares Quantity  `json:"shares"`              // rounded to 4 decimals
	Value  Money     `json:"valueAtCurrentPrice"` // rounded to 2 decimals
	Year   int       `json:"year"`
}

// eventDates returns the dates on which the rule releases shares for a grant made on 'on'.
func eventDates(on date.Date, rule YearRule) []date.Date {
	yearStart := on.AddYears(rule.Year - 1)
	if rule.Frequency != Monthly && rule.Frequency != Quarterly &&
		rule.Frequency != Every3Months && rule.Frequency != CustomNMonths {
		// Annual, and unknown frequencies read from older files.
		return []date.Date{yearStart}
	}
	count := PeriodsInYear(rule)
	step := monthStep(rule)
	dates := make([]date.Date, 0, count)
	for m := 0; m < 12 && len(dates) < count; m += step {
		dates = append(dates, yearStart.AddMonths(m))
	}
	return dates
}

// Expand returns all the vesting events of the grant, sorted by date.
//
// Event values use the grant's symbol price in prices, zero if absent. The
// result only depends on its arguments.
func Expand(g Grant, prices PriceMap) []VestEvent {
	price := prices.Price(g.Symbol)
	var events []VestEvent
	for _, rule := range g.Plan.Rules {
		var pct Percent
		if rule.Percentage != nil {
			pct = *rule.Percentage
		}
		shares := g.Shares.Percent(pct)
		value := price.Mul(shares).Round(2)
		shares = shares.Round(4)
		for _, on := range eventDates(g.GrantDate, rule) {
			events = append(events, VestEvent{
				Date:   on,
				Symbol: g.Symbol,
				Shares: shares,
				Value:  value,
				Year:   rule.Year,
			})
		}
	}
	slices.SortStableFunc(events, func(a, b VestEvent) int { return a.Date.Compare(b.Date) })
	return events
}

// ExpandAll returns the vesting events of all grants, sorted by date.
func ExpandAll(grants []Grant, prices PriceMap) []VestEvent {
	var events []VestEvent
	for _, g := range grants {
		events = append(events, Expand(g, prices)...)
	}
	slices.SortStableFunc(events, func(a, b VestEvent) int { return a.Date.Compare(b.Date) })
	return events
}

// NextEvents returns the first n events on or after 'from'. events must be sorted.
//
// A non positive n returns no events.
func NextEvents(events []VestEvent, from date.Date, n int) []VestEvent {
	if n <= 0 {
		return []VestEvent{}
	}
	next := make([]VestEvent, 0, n)
	for _, e := range events {
		if len(next) == n {
			break
		}
		if !e.Date.Before(from) {
			next = append(next, e)
		}
	}
	return next
}

// Upcoming returns the next n events from today, today included.
//
// Today is the local wall clock date, no timezone normalization is done.
func Upcoming(events []VestEvent, n int) []VestEvent {
	return NextEvents(events, date.Today(), n)
}
