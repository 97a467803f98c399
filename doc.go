// Package rsu tracks equity compensation grants (RSUs) and the way they vest.
//
// A Grant awards a number of shares of a company at a grant price, released
// over four years according to a VestingPlan. The package provides:
//   - Plan validation: CheckPlan verifies that the yearly rules of a plan add
//     up to 100% of the grant.
//   - Event expansion: Expand turns a grant into its dated VestEvents, valued
//     at the current price of the company.
//   - Portfolio metrics: ComputeMetrics aggregates the grants by company and
//     derives the gain or loss and a concentration based risk score.
//   - Tax estimates and a vesting calendar grouped by month.
//   - A Container that holds the application State, applies Actions with the
//     pure Reduce function, and persists grants through a Repository.
//
// Amounts are decimals: Money for USD amounts, Quantity for shares and
// Percent for percentages. Floating point numbers are only used at the edges.
//
// This package serves as the foundational logic for the `vest` command-line tool.
package rsu
