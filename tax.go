package rsu

// Flat rates used by the tax estimates. They are approximations, not tax tables.
var (
	WithholdingRate  = P(22) // federal supplemental withholding
	EstimatedTaxRate = P(35) // estimated total tax
)

// FederalWithholding returns the federal tax withheld on a vested value.
func FederalWithholding(vested Money) Money { return vested.Rate(WithholdingRate) }

// EstimatedTotalTax returns the estimated total tax due on a vested value.
func EstimatedTotalTax(vested Money) Money { return vested.Rate(EstimatedTaxRate) }

// NetProceeds returns what is left of a vested value after EstimatedTotalTax.
func NetProceeds(vested Money) Money { return vested.Sub(EstimatedTotalTax(vested)) }

// TaxPreview is the estimated taxation of a set of vesting events.
type TaxPreview struct {
	VestedValue  Money
	Withholding  Money
	EstimatedTax Money
	Net          Money
}

// EstimateTaxes previews the taxes due on the total value of events.
func EstimateTaxes(events []VestEvent) TaxPreview {
	var vested Money
	for _, e := range events {
		vested = vested.Add(e.Value)
	}
	return TaxPreview{
		VestedValue:  vested,
		Withholding:  FederalWithholding(vested),
		EstimatedTax: EstimatedTotalTax(vested),
		Net:          NetProceeds(vested),
	}
}
