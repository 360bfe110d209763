package tests

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/service"
)

// ──────────────────────────────────────────────
// 1. VEHICLE SIZE PRICING
// ──────────────────────────────────────────────

func TestPricing_SizeMultipliers(t *testing.T) {
	t.Parallel()

	engine := service.NewPricingEngine()
	base := decimal.NewFromInt(100)

	testCases := []struct {
		size domain.VehicleSize
		want string
	}{
		{domain.VehicleSizeSmall, "100"},
		{domain.VehicleSizeMedium, "130"},
		{domain.VehicleSizeLarge, "160"},
		{domain.VehicleSizeExtraLarge, "200"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.size), func(t *testing.T) {
			got, err := engine.Quote(base, tc.size)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestPricing_ZeroBasePrice(t *testing.T) {
	t.Parallel()

	engine := service.NewPricingEngine()

	got, err := engine.Quote(decimal.Zero, domain.VehicleSizeExtraLarge)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero quote, got %s", got)
	}
}

func TestPricing_NegativeBasePrice_Fails(t *testing.T) {
	t.Parallel()

	engine := service.NewPricingEngine()

	_, err := engine.Quote(decimal.NewFromInt(-1), domain.VehicleSizeSmall)
	if !errors.Is(err, service.ErrInvalidBasePrice) {
		t.Errorf("expected ErrInvalidBasePrice, got: %v", err)
	}
}

func TestPricing_UnknownSize_Fails(t *testing.T) {
	t.Parallel()

	engine := service.NewPricingEngine()

	// An unknown size must fail, never default to a 1.0x multiplier.
	_, err := engine.Quote(decimal.NewFromInt(100), domain.VehicleSize("Compact"))
	if !errors.Is(err, service.ErrInvalidVehicleSize) {
		t.Errorf("expected ErrInvalidVehicleSize, got: %v", err)
	}
}

func TestPricing_Deterministic(t *testing.T) {
	t.Parallel()

	engine := service.NewPricingEngine()
	base := decimal.RequireFromString("149.99")

	first, err := engine.Quote(base, domain.VehicleSizeMedium)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := engine.Quote(base, domain.VehicleSizeMedium)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if !again.Equal(first) {
			t.Fatalf("quote changed between calls: %s vs %s", first, again)
		}
	}
}

func TestPricing_MonotonicInSize(t *testing.T) {
	t.Parallel()

	engine := service.NewPricingEngine()
	base := decimal.RequireFromString("89.50")

	order := []domain.VehicleSize{
		domain.VehicleSizeSmall,
		domain.VehicleSizeMedium,
		domain.VehicleSizeLarge,
		domain.VehicleSizeExtraLarge,
	}

	prev := decimal.NewFromInt(-1)
	for _, size := range order {
		quote, err := engine.Quote(base, size)
		if err != nil {
			t.Fatalf("expected no error for %s, got: %v", size, err)
		}
		if !quote.GreaterThan(prev) {
			t.Errorf("expected quote for %s to exceed %s, got %s", size, prev, quote)
		}
		prev = quote
	}
}

func TestPricing_ExactArithmetic(t *testing.T) {
	t.Parallel()

	engine := service.NewPricingEngine()

	// 10.05 * 1.3 = 13.065 exactly; a float64 engine would drift.
	got, err := engine.Quote(decimal.RequireFromString("10.05"), domain.VehicleSizeMedium)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("13.065")) {
		t.Errorf("expected 13.065, got %s", got)
	}

	// Half-to-even rounding at the boundary: 13.065 -> 13.06.
	if rounded := got.RoundBank(2); !rounded.Equal(decimal.RequireFromString("13.06")) {
		t.Errorf("expected 13.06 after rounding, got %s", rounded)
	}
}
