package rsu

import (
	"fmt"
	"strings"
)

// Company is an entry of the company catalog.
type Company struct {
	Symbol string
	Name   string
}

// Label is the text the company is searched and displayed with, e.g. "Apple (AAPL)".
func (c Company) Label() string { return c.Name + " (" + c.Symbol + ")" }

// Companies is the catalog of companies grants can be recorded for.
var Companies = []Company{
	{"AAPL", "Apple"},
	{"GOOGL", "Google"},
	{"AMZN", "Amazon"},
	{"NFLX", "Netflix"},
	{"META", "Meta"},
	{"MSFT", "Microsoft"},
	{"TSLA", "Tesla"},
	{"NVDA", "NVIDIA"},
}

// LookupCompany finds a company by ticker symbol.
func LookupCompany(symbol string) (Company, bool) {
	for _, c := range Companies {
		if strings.EqualFold(c.Symbol, symbol) {
			return c, true
		}
	}
	return Company{}, false
}

// SearchCompanies returns the companies whose label contains query, ignoring case.
func SearchCompanies(query string) []Company {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Companies
	}
	var found []Company
	for _, c := range Companies {
		if strings.Contains(strings.ToLower(c.Label()), q) {
			found = append(found, c)
		}
	}
	return found
}

// ResolveCompany finds the company a user refers to, by ticker symbol or by a
// part of its label, e.g. "aapl" or "apple". The query must match a single company.
func ResolveCompany(query string) (Company, error) {
	if c, ok := LookupCompany(strings.TrimSpace(query)); ok {
		return c, nil
	}
	found := SearchCompanies(query)
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Company{}, fmt.Errorf("no company matches %q", query)
	}
	labels := make([]string, len(found))
	for i, c := range found {
		labels[i] = c.Label()
	}
	return Company{}, fmt.Errorf("%q matches %s", query, strings.Join(labels, ", "))
}
