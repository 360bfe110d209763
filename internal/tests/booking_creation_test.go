package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/service"
)

func newBookingFixture() (*service.BookingService, *MockBookingRepository, *MockTierProvider, *MockLockStore) {
	bookingRepo := NewMockBookingRepository()
	tiers := NewMockTierProvider()
	lockStore := NewMockLockStore()

	tiers.AddTier(&domain.ServiceTier{
		ID:        "tier-premium",
		Name:      domain.TierPremium,
		BasePrice: decimal.NewFromInt(100),
		CreatedAt: time.Now(),
	})

	svc := service.NewBookingService(
		nil, // no database handle; the mock repository path is exercised
		bookingRepo,
		tiers,
		service.NewPricingEngine(),
		service.NewLoyaltyEvaluator(),
		lockStore,
		nil,
	)

	return svc, bookingRepo, tiers, lockStore
}

func validCreateRequest() service.CreateBookingRequest {
	return service.CreateBookingRequest{
		CustomerID:  "cust-1",
		TierID:      "tier-premium",
		VehicleType: "BMW 3 Series",
		VehicleSize: domain.VehicleSizeMedium,
		Currency:    domain.CurrencyZAR,
		ScheduledAt: time.Now().Add(24 * time.Hour),
	}
}

// ──────────────────────────────────────────────
// 3. BOOKING CREATION
// ──────────────────────────────────────────────

func TestBookingCreation_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _ := newBookingFixture()

	resp, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if resp == nil || resp.Booking == nil {
		t.Fatal("expected booking to be created")
	}
	if resp.Booking.ID == "" {
		t.Error("expected booking ID to be set")
	}
	if resp.Booking.Status != domain.BookingStatusPending {
		t.Errorf("expected pending status, got %s", resp.Booking.Status)
	}
	if resp.Booking.PaymentStatus != domain.PaymentStatusPending {
		t.Errorf("expected pending payment status, got %s", resp.Booking.PaymentStatus)
	}
	if resp.Booking.PaymentMethod != domain.PaymentMethodCard {
		t.Errorf("expected card payment method by default, got %s", resp.Booking.PaymentMethod)
	}

	// Medium multiplier: 100 * 1.3 = 130. First booking, no discount.
	if !resp.Booking.Price.Amount.Equal(decimal.NewFromInt(130)) {
		t.Errorf("expected price 130, got %s", resp.Booking.Price.Amount)
	}
	if resp.DiscountApplied {
		t.Error("expected no discount for a first-time customer")
	}
	if resp.Booking.Price.Currency != domain.CurrencyZAR {
		t.Errorf("expected ZAR, got %s", resp.Booking.Price.Currency)
	}

	if got := atomic32(&bookingRepo.CreateCallCount); got != 1 {
		t.Errorf("expected 1 create call, got %d", got)
	}
}

func TestBookingCreation_ThirdWashHistory_AppliesDiscount(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _ := newBookingFixture()
	now := time.Now()

	for _, daysAgo := range []int{5, 12, 25} {
		bookingRepo.AddBooking(completedBooking("cust-1", now.AddDate(0, 0, -daysAgo)))
	}

	resp, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !resp.DiscountApplied {
		t.Fatal("expected the 4th wash to be discounted")
	}
	// Candidate 130, discount 13, final 117.
	if !resp.DiscountAmount.Equal(decimal.NewFromInt(13)) {
		t.Errorf("expected discount 13, got %s", resp.DiscountAmount)
	}
	if !resp.Booking.Price.Amount.Equal(decimal.NewFromInt(117)) {
		t.Errorf("expected final price 117, got %s", resp.Booking.Price.Amount)
	}
	if !resp.PreDiscountPrice.Equal(decimal.NewFromInt(130)) {
		t.Errorf("expected pre-discount price 130, got %s", resp.PreDiscountPrice)
	}

	// The stored row carries the discount fields with it.
	stored := bookingRepo.GetBooking(resp.Booking.ID)
	if stored == nil {
		t.Fatal("expected booking to be persisted")
	}
	if !stored.DiscountApplied {
		t.Error("expected persisted discount flag")
	}
	if !stored.DiscountAmount.Amount.Equal(decimal.NewFromInt(13)) {
		t.Errorf("expected persisted discount 13, got %s", stored.DiscountAmount.Amount)
	}
}

func TestBookingCreation_OldHistoryIgnored(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _ := newBookingFixture()
	now := time.Now()

	// Two recent washes plus one 31 days old: the count in the window
	// is 2, so no discount.
	bookingRepo.AddBooking(completedBooking("cust-1", now.AddDate(0, 0, -5)))
	bookingRepo.AddBooking(completedBooking("cust-1", now.AddDate(0, 0, -12)))
	bookingRepo.AddBooking(completedBooking("cust-1", now.AddDate(0, 0, -31)))

	resp, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if resp.DiscountApplied {
		t.Error("expected no discount when only 2 washes fall in the window")
	}
}

func TestBookingCreation_OtherCustomerHistoryIgnored(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, _ := newBookingFixture()
	now := time.Now()

	for _, daysAgo := range []int{5, 12, 25} {
		bookingRepo.AddBooking(completedBooking("cust-2", now.AddDate(0, 0, -daysAgo)))
	}

	resp, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if resp.DiscountApplied {
		t.Error("expected another customer's history to be irrelevant")
	}
}

func TestBookingCreation_InvalidInput_Fails(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newBookingFixture()

	testCases := []struct {
		name    string
		mutate  func(*service.CreateBookingRequest)
		wantErr error
	}{
		{
			name:    "empty customer id",
			mutate:  func(r *service.CreateBookingRequest) { r.CustomerID = "" },
			wantErr: service.ErrInvalidCustomerID,
		},
		{
			name:    "empty tier id",
			mutate:  func(r *service.CreateBookingRequest) { r.TierID = "" },
			wantErr: service.ErrInvalidTierID,
		},
		{
			name:    "unknown vehicle size",
			mutate:  func(r *service.CreateBookingRequest) { r.VehicleSize = "Compact" },
			wantErr: service.ErrInvalidVehicleSize,
		},
		{
			name:    "unsupported currency",
			mutate:  func(r *service.CreateBookingRequest) { r.Currency = "EUR" },
			wantErr: service.ErrInvalidCurrency,
		},
		{
			name:    "unknown payment method",
			mutate:  func(r *service.CreateBookingRequest) { r.PaymentMethod = "crypto" },
			wantErr: service.ErrInvalidPaymentMethod,
		},
		{
			name:    "missing scheduled time",
			mutate:  func(r *service.CreateBookingRequest) { r.ScheduledAt = time.Time{} },
			wantErr: service.ErrInvalidScheduledAt,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			_, err := svc.CreateBooking(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}
		})
	}
}

func TestBookingCreation_UnknownTier_Fails(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newBookingFixture()

	req := validCreateRequest()
	req.TierID = "tier-missing"

	_, err := svc.CreateBooking(context.Background(), req)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestBookingCreation_CashPaymentMethodKept(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newBookingFixture()

	req := validCreateRequest()
	req.PaymentMethod = domain.PaymentMethodCash

	resp, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if resp.Booking.PaymentMethod != domain.PaymentMethodCash {
		t.Errorf("expected cash, got %s", resp.Booking.PaymentMethod)
	}
}

func TestBookingCreation_LockHeld_Fails(t *testing.T) {
	t.Parallel()

	svc, _, _, lockStore := newBookingFixture()

	if _, err := lockStore.AcquireCustomerLock(context.Background(), "cust-1", time.Minute); err != nil {
		t.Fatalf("failed to seed lock: %v", err)
	}

	_, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if !errors.Is(err, service.ErrBookingInFlight) {
		t.Errorf("expected ErrBookingInFlight, got: %v", err)
	}
}

func TestBookingCreation_LockReleasedAfterSuccess(t *testing.T) {
	t.Parallel()

	svc, _, _, lockStore := newBookingFixture()

	if _, err := svc.CreateBooking(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if lockStore.Held("cust-1") {
		t.Error("expected customer lock to be released")
	}
}

func TestBookingCreation_RepoFailure_ReleasesLock(t *testing.T) {
	t.Parallel()

	svc, bookingRepo, _, lockStore := newBookingFixture()
	bookingRepo.CreateError = errors.New("insert failed")

	if _, err := svc.CreateBooking(context.Background(), validCreateRequest()); err == nil {
		t.Fatal("expected error from repository")
	}

	if lockStore.Held("cust-1") {
		t.Error("expected customer lock to be released after failure")
	}
}
