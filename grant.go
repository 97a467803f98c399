package rsu

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/rsu/date"
	"github.com/google/uuid"
)

// Grant is an equity award.
type Grant struct {
	ID         string      `json:"id"`
	Company    string      `json:"company"`
	Symbol     string      `json:"symbol"`
	GrantDate  date.Date   `json:"grantDate"`
	Shares     Quantity    `json:"shares"`
	GrantPrice Money       `json:"grantPrice"` // per share, at grant date
	Plan       VestingPlan `json:"vestingPlan"`
}

// Value returns the grant's current value at price.
func (g Grant) Value(price Money) Money { return price.Mul(g.Shares) }

// Basis returns the grant's value at grant date.
func (g Grant) Basis() Money { return g.GrantPrice.Mul(g.Shares) }

// Draft is a grant as entered by the user, before validation.
//
// Shares and Price are free text, they are sanitized before being parsed.
type Draft struct {
	Symbol    string
	Company   string // defaults to the catalog name of Symbol
	GrantDate date.Date
	Shares    string
	Price     string
	Plan      VestingPlan
}

// Draft fields flagged by a ValidationError.
const (
	FieldCompany   = "company"
	FieldGrantDate = "grantDate"
	FieldShares    = "shares"
	FieldPrice     = "grantPrice"
	FieldPlan      = "plan"
)

// ValidationError lists the fields of a Draft that prevent creating a Grant.
type ValidationError struct {
	Fields    []string
	PlanTotal Percent // total of the plan, reported when FieldPlan is flagged
}

func (e *ValidationError) Error() string {
	msg := "invalid grant: " + strings.Join(e.Fields, ", ")
	if e.Has(FieldPlan) {
		msg += fmt.Sprintf(" (vesting plan totals %s, want 100%%)", e.PlanTotal.StringFixed(3))
	}
	return msg
}

// Has reports whether field has been flagged.
func (e *ValidationError) Has(field string) bool { return slices.Contains(e.Fields, field) }

// Grant validates the draft and returns a new Grant with a fresh ID.
func (d Draft) Grant() (Grant, error) {
	return d.grant(uuid.NewString())
}

func (d Draft) grant(id string) (Grant, error) {
	var verr ValidationError
	symbol := strings.ToUpper(strings.TrimSpace(d.Symbol))
	company := strings.TrimSpace(d.Company)
	if company == "" {
		if c, ok := LookupCompany(symbol); ok {
			company = c.Name
		}
	}
	if symbol == "" || company == "" {
		verr.Fields = append(verr.Fields, FieldCompany)
	}
	if d.GrantDate.IsZero() {
		verr.Fields = append(verr.Fields, FieldGrantDate)
	}
	shares, err := ParseDecimal(SanitizeDecimal(d.Shares, 0))
	if err != nil || !shares.IsPositive() {
		verr.Fields = append(verr.Fields, FieldShares)
	}
	price, err := ParseDecimal(SanitizeDecimal(d.Price, 6))
	if err != nil || !price.IsPositive() {
		verr.Fields = append(verr.Fields, FieldPrice)
	}
	if check := CheckPlan(d.Plan.Rules); !check.OK {
		verr.Fields = append(verr.Fields, FieldPlan)
		verr.PlanTotal = check.Total
	}
	if len(verr.Fields) > 0 {
		return Grant{}, &verr
	}
	return Grant{
		ID:         id,
		Company:    company,
		Symbol:     symbol,
		GrantDate:  d.GrantDate,
		Shares:     Q(shares),
		GrantPrice: M(price),
		Plan:       d.Plan,
	}, nil
}

// SampleGrants returns the grants used to seed an empty store.
func SampleGrants() []Grant {
	return []Grant{
		{
			ID:         uuid.NewString(),
			Company:    "Apple",
			Symbol:     "AAPL",
			GrantDate:  date.MustParse("2023-01-15"),
			Shares:     Q(100),
			GrantPrice: M(150),
			Plan:       DefaultPlan(),
		},
		{
			ID:         uuid.NewString(),
			Company:    "Google",
			Symbol:     "GOOGL",
			GrantDate:  date.MustParse("2022-06-01"),
			Shares:     Q(50),
			GrantPrice: M(2200),
			Plan:       DefaultPlan(),
		},
	}
}
