package entities

import "math"

// ConsultationType represents a booking mode that scales the base
// consultation fee by a fixed multiplier (1.0 = base price, <1.0
// discount, >1.0 premium).
type ConsultationType struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Icon            string  `json:"icon"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

// AdjustedFee applies the type's multiplier to a base consultation fee,
// rounded to the nearest rupee with ties away from zero. The value used
// for price-range filtering and the value shown to the user must both
// come from here, never be recomputed separately.
func (ct ConsultationType) AdjustedFee(baseFee int) int {
	return int(math.Round(float64(baseFee) * ct.PriceMultiplier))
}
