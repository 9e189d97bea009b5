package pkg

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

func TestComputeRentPrice(t *testing.T) {
	tests := []struct {
		name     string
		area     string
		perM2    string
		increase decimal.NullDecimal
		want     string
	}{
		{"plain base", "100", "10", decimal.NullDecimal{}, "1000"},
		{"ten percent increase", "100", "10", nullDec("10"), "1100"},
		{"zero increase same as absent", "33.33", "15.5", nullDec("0"), "516.62"},
		{"absent increase", "33.33", "15.5", decimal.NullDecimal{}, "516.62"},
		{"rounding half away from zero", "1", "2.005", decimal.NullDecimal{}, "2.01"},
		{"increase then round", "10", "9.99", nullDec("7.5"), "107.39"},
		{"zero area", "0", "15", nullDec("10"), "0"},
		{"fractional everything", "12.5", "8.4", nullDec("3"), "108.15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRentPrice(RentPricingInputs{
				AreaM2:                dec(tt.area),
				PricePerM2:            dec(tt.perM2),
				AnnualIncreasePercent: tt.increase,
			})
			if !got.Equal(dec(tt.want)) {
				t.Errorf("ComputeRentPrice(%s, %s, %v) = %s; want %s",
					tt.area, tt.perM2, tt.increase, got, tt.want)
			}
		})
	}
}

func TestComputeRentPrice_TwoDecimalPlaces(t *testing.T) {
	got := ComputeRentPrice(RentPricingInputs{
		AreaM2:                dec("33.33"),
		PricePerM2:            dec("15.555"),
		AnnualIncreasePercent: nullDec("12.34"),
	})
	if got.Exponent() < -2 {
		t.Errorf("result %s has more than 2 decimal places", got)
	}
}

func TestComputeWarehousePrice(t *testing.T) {
	got := ComputeWarehousePrice(dec("50"), dec("12.345"))
	if !got.Equal(dec("617.25")) {
		t.Errorf("ComputeWarehousePrice = %s; want 617.25", got)
	}
}
