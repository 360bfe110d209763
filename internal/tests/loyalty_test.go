package tests

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/service"
)

func completedBooking(customerID string, createdAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         "booking-" + createdAt.Format("20060102150405.000"),
		CustomerID: customerID,
		Status:     domain.BookingStatusCompleted,
		CreatedAt:  createdAt,
	}
}

// ──────────────────────────────────────────────
// 2. LOYALTY DISCOUNT ELIGIBILITY
// ──────────────────────────────────────────────

func TestLoyalty_ExactlyThreeInWindow_Discounted(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()
	asOf := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	history := []*domain.Booking{
		completedBooking("cust-1", asOf.AddDate(0, 0, -5)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -10)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -20)),
	}

	eval, err := evaluator.Evaluate(asOf, history, decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !eval.Eligible {
		t.Fatal("expected eligibility with exactly 3 completed washes in window")
	}
	if !eval.DiscountAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected discount 20, got %s", eval.DiscountAmount)
	}
	if !eval.FinalPrice.Equal(decimal.NewFromInt(180)) {
		t.Errorf("expected final price 180, got %s", eval.FinalPrice)
	}
}

func TestLoyalty_TwoInWindow_NotDiscounted(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()
	asOf := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	history := []*domain.Booking{
		completedBooking("cust-1", asOf.AddDate(0, 0, -5)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -10)),
	}

	eval, err := evaluator.Evaluate(asOf, history, decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if eval.Eligible {
		t.Error("expected no eligibility with 2 completed washes")
	}
	if !eval.DiscountAmount.IsZero() {
		t.Errorf("expected zero discount, got %s", eval.DiscountAmount)
	}
	if !eval.FinalPrice.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected unchanged final price 200, got %s", eval.FinalPrice)
	}
}

func TestLoyalty_FourInWindow_NotDiscounted(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()
	asOf := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// The rule is an exact count, not a threshold.
	history := []*domain.Booking{
		completedBooking("cust-1", asOf.AddDate(0, 0, -3)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -8)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -14)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -21)),
	}

	eval, err := evaluator.Evaluate(asOf, history, decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if eval.Eligible {
		t.Error("expected no eligibility with 4 completed washes")
	}
}

func TestLoyalty_WindowBoundaryExcluded(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()
	asOf := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// Two recent washes plus one created exactly 30 days before asOf.
	// The boundary wash is outside the half-open window, so the count
	// is 2 and no discount applies.
	history := []*domain.Booking{
		completedBooking("cust-1", asOf.AddDate(0, 0, -5)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -10)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -30)),
	}

	eval, err := evaluator.Evaluate(asOf, history, decimal.NewFromInt(150))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if eval.Eligible {
		t.Error("expected the 30-day-old wash to fall outside the window")
	}
}

func TestLoyalty_JustInsideWindowCounted(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()
	asOf := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	history := []*domain.Booking{
		completedBooking("cust-1", asOf.AddDate(0, 0, -5)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -10)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -30).Add(time.Second)),
	}

	eval, err := evaluator.Evaluate(asOf, history, decimal.NewFromInt(150))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !eval.Eligible {
		t.Error("expected a wash one second inside the window to count")
	}
}

func TestLoyalty_DiscountAndFinalSumToCandidate(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()
	asOf := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	history := []*domain.Booking{
		completedBooking("cust-1", asOf.AddDate(0, 0, -5)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -10)),
		completedBooking("cust-1", asOf.AddDate(0, 0, -20)),
	}

	// Candidates chosen so the 10% discount needs rounding.
	for _, candidate := range []string{"199.99", "13.065", "0.01", "123.45"} {
		price := decimal.RequireFromString(candidate)

		eval, err := evaluator.Evaluate(asOf, history, price)
		if err != nil {
			t.Fatalf("expected no error for %s, got: %v", candidate, err)
		}

		if !eval.Eligible {
			t.Fatalf("expected eligibility for %s", candidate)
		}
		if sum := eval.FinalPrice.Add(eval.DiscountAmount); !sum.Equal(price) {
			t.Errorf("final %s + discount %s = %s, want %s",
				eval.FinalPrice, eval.DiscountAmount, sum, candidate)
		}
		if !eval.DiscountAmount.Equal(eval.DiscountAmount.RoundBank(2)) {
			t.Errorf("discount %s not rounded to 2 decimals", eval.DiscountAmount)
		}
	}
}

func TestLoyalty_NegativeCandidate_Fails(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()
	asOf := time.Now()

	_, err := evaluator.Evaluate(asOf, nil, decimal.NewFromInt(-10))
	if !errors.Is(err, service.ErrInvalidCandidatePrice) {
		t.Errorf("expected ErrInvalidCandidatePrice, got: %v", err)
	}
}

func TestLoyalty_NonCompletedHistory_Fails(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()
	asOf := time.Now()

	history := []*domain.Booking{
		completedBooking("cust-1", asOf.AddDate(0, 0, -5)),
		{
			ID:         "booking-pending",
			CustomerID: "cust-1",
			Status:     domain.BookingStatusPending,
			CreatedAt:  asOf.AddDate(0, 0, -10),
		},
	}

	_, err := evaluator.Evaluate(asOf, history, decimal.NewFromInt(100))
	if !errors.Is(err, service.ErrHistoryNotCompleted) {
		t.Errorf("expected ErrHistoryNotCompleted, got: %v", err)
	}
}

func TestLoyalty_EmptyHistory_NotDiscounted(t *testing.T) {
	t.Parallel()

	evaluator := service.NewLoyaltyEvaluator()

	eval, err := evaluator.Evaluate(time.Now(), nil, decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if eval.Eligible {
		t.Error("expected no eligibility for a first-time customer")
	}
	if !eval.FinalPrice.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected final price 100, got %s", eval.FinalPrice)
	}
}
