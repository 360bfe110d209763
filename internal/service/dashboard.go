package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
)

// DashboardService assembles the role-specific dashboard payloads.
type DashboardService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	tierRepo    repository.TierRepository
	loyalty     *LoyaltyEvaluator
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	tierRepo repository.TierRepository,
	loyalty *LoyaltyEvaluator,
) *DashboardService {
	return &DashboardService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		tierRepo:    tierRepo,
		loyalty:     loyalty,
	}
}

// LoyaltyProgress shows a customer how close they are to the discount.
type LoyaltyProgress struct {
	CompletedInWindow  int
	RequiredForReward  int
	NextWashDiscounted bool
}

// UserDashboard is the customer view: own bookings plus loyalty progress.
type UserDashboard struct {
	Bookings []*domain.Booking
	Loyalty  LoyaltyProgress
}

// BookingStats summarizes booking activity. Revenue is kept per currency;
// amounts under different codes are never added together.
type BookingStats struct {
	TotalBookings int
	Pending       int
	Completed     int
	Revenue       map[domain.Currency]decimal.Decimal
}

// CashierDashboard is the cashier view: every booking plus activity stats.
type CashierDashboard struct {
	Bookings []*domain.Booking
	Stats    BookingStats
}

// AdminDashboard is the admin view: system-wide overview.
type AdminDashboard struct {
	Stats          BookingStats
	TotalUsers     int
	RecentBookings []*domain.Booking
	Users          []*domain.User
	Tiers          []*domain.ServiceTier
}

// ForUser builds the customer dashboard.
func (s *DashboardService) ForUser(ctx context.Context, customerID string) (*UserDashboard, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	windowStart := s.loyalty.WindowStart(now)

	inWindow := 0
	for _, b := range bookings {
		if b.Status == domain.BookingStatusCompleted &&
			b.CreatedAt.After(windowStart) && b.CreatedAt.Before(now) {
			inWindow++
		}
	}

	required := s.loyalty.config.RequiredCompleted
	return &UserDashboard{
		Bookings: bookings,
		Loyalty: LoyaltyProgress{
			CompletedInWindow:  inWindow,
			RequiredForReward:  required,
			NextWashDiscounted: inWindow == required,
		},
	}, nil
}

// ForCashier builds the cashier dashboard.
func (s *DashboardService) ForCashier(ctx context.Context) (*CashierDashboard, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &CashierDashboard{
		Bookings: bookings,
		Stats:    computeStats(bookings),
	}, nil
}

// ForAdmin builds the admin dashboard.
func (s *DashboardService) ForAdmin(ctx context.Context) (*AdminDashboard, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	tiers, err := s.tierRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	recent := bookings
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &AdminDashboard{
		Stats:          computeStats(bookings),
		TotalUsers:     len(users),
		RecentBookings: recent,
		Users:          users,
		Tiers:          tiers,
	}, nil
}

func computeStats(bookings []*domain.Booking) BookingStats {
	stats := BookingStats{
		TotalBookings: len(bookings),
		Revenue:       make(map[domain.Currency]decimal.Decimal),
	}

	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusPending:
			stats.Pending++
		case domain.BookingStatusCompleted:
			stats.Completed++
		}

		sum, ok := stats.Revenue[b.Price.Currency]
		if !ok {
			sum = decimal.Zero
		}
		stats.Revenue[b.Price.Currency] = sum.Add(b.Price.Amount)
	}

	return stats
}
