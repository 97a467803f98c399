package rsu

import "testing"

func TestTaxEstimates(t *testing.T) {
	tests := []struct {
		vested                float64
		withholding, tax, net float64
	}{
		{1000, 220, 350, 650},
		{0, 0, 0, 0},
		{1234.56, 271.6032, 432.096, 802.464},
	}
	for _, tt := range tests {
		v := M(tt.vested)
		if got := FederalWithholding(v); !got.Equal(M(tt.withholding)) {
			t.Errorf("FederalWithholding(%v) = %v, want %v", tt.vested, got.value, tt.withholding)
		}
		if got := EstimatedTotalTax(v); !got.Equal(M(tt.tax)) {
			t.Errorf("EstimatedTotalTax(%v) = %v, want %v", tt.vested, got.value, tt.tax)
		}
		if got := NetProceeds(v); !got.Equal(M(tt.net)) {
			t.Errorf("NetProceeds(%v) = %v, want %v", tt.vested, got.value, tt.net)
		}
	}
}

func TestEstimateTaxes(t *testing.T) {
	events := []VestEvent{{Value: M(600)}, {Value: M(400)}}
	got := EstimateTaxes(events)
	want := TaxPreview{VestedValue: M(1000), Withholding: M(220), EstimatedTax: M(350), Net: M(650)}
	if !got.VestedValue.Equal(want.VestedValue) || !got.Withholding.Equal(want.Withholding) ||
		!got.EstimatedTax.Equal(want.EstimatedTax) || !got.Net.Equal(want.Net) {
		t.Errorf("EstimateTaxes() = %+v, want %+v", got, want)
	}
}
