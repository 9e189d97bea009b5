package pkg

import "github.com/shopspring/decimal"

// RentPricingInputs are the validated inputs to the rent pricing rule.
// Validation (area ≥ 0, unit price ≥ 0, percent in [0,100]) is the caller's
// responsibility; the rule assumes non-negative inputs.
type RentPricingInputs struct {
	AreaM2                decimal.Decimal
	PricePerM2            decimal.Decimal
	AnnualIncreasePercent decimal.NullDecimal
}

// ComputeRentPrice derives a rental's periodic price:
//
//	base = areaM2 × pricePerM2
//	if increase > 0: base = round(base × (1 + increase/100), 2)
//	result = round(base, 2)
//
// Rounding is half-away-from-zero (decimal.Round semantics) to 2 places.
// A zero or absent increase leaves the plain base rounding path untouched.
// The rule is pure; callers invoke it before persisting a rental whenever
// area, unit price or the increase change. Stale prices are not recomputed
// automatically.
func ComputeRentPrice(in RentPricingInputs) decimal.Decimal {
	base := in.AreaM2.Mul(in.PricePerM2)
	if in.AnnualIncreasePercent.Valid && in.AnnualIncreasePercent.Decimal.IsPositive() {
		factor := decimal.New(1, 0).Add(in.AnnualIncreasePercent.Decimal.Div(decimal.New(100, 0)))
		base = base.Mul(factor).Round(2)
	}
	return base.Round(2)
}

// ComputeWarehousePrice derives a warehouse's stored price from its area and
// unit price (the same multiply-and-round derivation, with no increase).
func ComputeWarehousePrice(areaM2, pricePerM2 decimal.Decimal) decimal.Decimal {
	return ComputeRentPrice(RentPricingInputs{AreaM2: areaM2, PricePerM2: pricePerM2})
}
