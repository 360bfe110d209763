package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
)

// LoyaltyConfig contains the loyalty discount rule parameters.
type LoyaltyConfig struct {
	WindowDays        int             // Trailing window length in days
	RequiredCompleted int             // Exact completed-booking count for eligibility
	DiscountRate      decimal.Decimal // Fraction of the candidate price discounted
}

// DefaultLoyaltyConfig returns the production rule: 10% off when the
// customer has exactly 3 completed bookings in the trailing 30 days.
func DefaultLoyaltyConfig() LoyaltyConfig {
	return LoyaltyConfig{
		WindowDays:        30,
		RequiredCompleted: 3,
		DiscountRate:      decimal.RequireFromString("0.1"),
	}
}

// LoyaltyEvaluator decides discount eligibility from a customer's completed
// booking history. Pure decision function: the caller persists the outcome
// atomically with the booking row it was computed for.
type LoyaltyEvaluator struct {
	config LoyaltyConfig
}

// NewLoyaltyEvaluator creates a LoyaltyEvaluator with the default rule.
func NewLoyaltyEvaluator() *LoyaltyEvaluator {
	return &LoyaltyEvaluator{config: DefaultLoyaltyConfig()}
}

// LoyaltyEvaluation is the outcome of an eligibility check.
type LoyaltyEvaluation struct {
	Eligible       bool
	DiscountAmount decimal.Decimal // rounded to 2 decimals, zero when not eligible
	FinalPrice     decimal.Decimal // candidate minus discount, exactly
}

// Evaluate decides whether the booking being submitted at asOf earns the
// loyalty discount, given the customer's completed bookings and the
// candidate (pre-discount) price.
//
// The window is half-open: [asOf - WindowDays, asOf). A booking created
// exactly WindowDays before asOf falls outside it, and the candidate booking
// itself is never counted toward its own eligibility. Eligibility requires
// the in-window completed count to equal RequiredCompleted exactly; a count
// of 4 or more does not qualify. That matches the deployed rule, which
// re-evaluates a fresh count at every submission rather than keeping a
// streak counter.
//
// DiscountAmount is rounded half-to-even to 2 decimals and FinalPrice is
// candidatePrice - DiscountAmount, so FinalPrice + DiscountAmount always
// equals candidatePrice exactly.
func (e *LoyaltyEvaluator) Evaluate(asOf time.Time, history []*domain.Booking, candidatePrice decimal.Decimal) (LoyaltyEvaluation, error) {
	if candidatePrice.IsNegative() {
		return LoyaltyEvaluation{}, ErrInvalidCandidatePrice
	}

	windowStart := asOf.AddDate(0, 0, -e.config.WindowDays)

	inWindow := 0
	for _, b := range history {
		if b.Status != domain.BookingStatusCompleted {
			return LoyaltyEvaluation{}, ErrHistoryNotCompleted
		}
		if b.CreatedAt.After(windowStart) && b.CreatedAt.Before(asOf) {
			inWindow++
		}
	}

	if inWindow != e.config.RequiredCompleted {
		return LoyaltyEvaluation{
			Eligible:       false,
			DiscountAmount: decimal.Zero,
			FinalPrice:     candidatePrice,
		}, nil
	}

	discount := candidatePrice.Mul(e.config.DiscountRate).RoundBank(2)
	return LoyaltyEvaluation{
		Eligible:       true,
		DiscountAmount: discount,
		FinalPrice:     candidatePrice.Sub(discount),
	}, nil
}

// WindowStart returns the far edge of the trailing window for asOf. Bookings
// created at or before this instant are outside the window.
func (e *LoyaltyEvaluator) WindowStart(asOf time.Time) time.Time {
	return asOf.AddDate(0, 0, -e.config.WindowDays)
}
