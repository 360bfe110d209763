package service

import (
	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
)

// PricingEngine computes a booking's pre-discount price from a tier base
// price and a vehicle size. It is a pure component: no I/O, no state.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// Vehicle size multipliers. Fixed at build time, not configurable.
var sizeMultipliers = map[domain.VehicleSize]decimal.Decimal{
	domain.VehicleSizeSmall:      decimal.NewFromInt(1),
	domain.VehicleSizeMedium:     decimal.RequireFromString("1.3"),
	domain.VehicleSizeLarge:      decimal.RequireFromString("1.6"),
	domain.VehicleSizeExtraLarge: decimal.NewFromInt(2),
}

// Quote returns basePrice multiplied by the size multiplier. The result is
// exact (unrounded); rounding to the currency's 2-decimal minor unit happens
// once, at the persistence or display boundary, using bankers rounding.
//
// Fails when basePrice is negative or size is not in the enumerated set.
// An absent size means pricing is undefined, never a 1.0x default.
func (e *PricingEngine) Quote(basePrice decimal.Decimal, size domain.VehicleSize) (decimal.Decimal, error) {
	if basePrice.IsNegative() {
		return decimal.Zero, ErrInvalidBasePrice
	}

	multiplier, ok := sizeMultipliers[size]
	if !ok {
		return decimal.Zero, ErrInvalidVehicleSize
	}

	return basePrice.Mul(multiplier), nil
}
