package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/redis"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository/postgres"
)

const customerLockTTL = 10 * time.Second

// TierProviderInterface supplies catalog entries to the booking flow.
// This interface allows for testing with mock implementations.
type TierProviderInterface interface {
	GetTier(ctx context.Context, id string) (*domain.ServiceTier, error)
}

// BookingService handles booking submission and lifecycle updates.
type BookingService struct {
	db                  *sql.DB
	bookingRepo         repository.BookingRepository
	tiers               TierProviderInterface
	pricing             *PricingEngine
	loyalty             *LoyaltyEvaluator
	lockStore           redis.LockStoreInterface
	notificationService *NotificationService
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	db *sql.DB,
	bookingRepo repository.BookingRepository,
	tiers TierProviderInterface,
	pricing *PricingEngine,
	loyalty *LoyaltyEvaluator,
	lockStore redis.LockStoreInterface,
	notificationService *NotificationService,
) *BookingService {
	return &BookingService{
		db:                  db,
		bookingRepo:         bookingRepo,
		tiers:               tiers,
		pricing:             pricing,
		loyalty:             loyalty,
		lockStore:           lockStore,
		notificationService: notificationService,
	}
}

// CreateBookingRequest contains the parameters for submitting a booking.
type CreateBookingRequest struct {
	CustomerID    string
	TierID        string
	VehicleType   string
	VehicleSize   domain.VehicleSize
	Currency      domain.Currency
	PaymentMethod domain.PaymentMethod // Optional: defaults to card
	ScheduledAt   time.Time
}

// CreateBookingResponse contains the result of submitting a booking.
type CreateBookingResponse struct {
	Booking          *domain.Booking
	PreDiscountPrice decimal.Decimal
	DiscountApplied  bool
	DiscountAmount   decimal.Decimal
}

// CreateBooking prices the booking, evaluates the loyalty discount, and
// persists the result.
//
// The eligibility read and the insert happen inside one serializable
// transaction, behind a per-customer lock: two concurrent submissions that
// both see the same "3 completed washes" history can otherwise both be
// granted the discount. Price, discount flag, and discount amount are
// written together with the booking row; a discount is never computed and
// then dropped before the write it was computed for.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = domain.PaymentMethodCard
	}

	tier, err := s.tiers.GetTier(ctx, req.TierID)
	if err != nil {
		return nil, err
	}

	quote, err := s.pricing.Quote(tier.BasePrice, req.VehicleSize)
	if err != nil {
		return nil, err
	}

	// The engine's quote is exact; round once, here, at the persistence
	// boundary.
	candidate := quote.RoundBank(2)

	if s.lockStore != nil {
		locked, err := s.lockStore.AcquireCustomerLock(ctx, req.CustomerID, customerLockTTL)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ErrBookingInFlight
		}
		defer func() {
			_ = s.lockStore.ReleaseCustomerLock(ctx, req.CustomerID)
		}()
	}

	now := time.Now()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		CustomerID:    req.CustomerID,
		ServiceTierID: tier.ID,
		VehicleType:   req.VehicleType,
		VehicleSize:   req.VehicleSize,
		PaymentMethod: paymentMethod,
		ScheduledAt:   req.ScheduledAt,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     now,
	}

	eval, err := s.submit(ctx, booking, req.Currency, candidate, now)
	if err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingConfirmed(ctx, booking)
	}

	return &CreateBookingResponse{
		Booking:          booking,
		PreDiscountPrice: candidate,
		DiscountApplied:  eval.Eligible,
		DiscountAmount:   eval.DiscountAmount,
	}, nil
}

// submit runs the eligibility check and insert as a single atomic operation
// when a database handle is available, falling back to the plain repository
// otherwise (tests wire mocks without a handle).
func (s *BookingService) submit(ctx context.Context, booking *domain.Booking, currency domain.Currency, candidate decimal.Decimal, asOf time.Time) (LoyaltyEvaluation, error) {
	if s.db == nil {
		return s.evaluateAndInsert(ctx, s.bookingRepo, booking, currency, candidate, asOf)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return LoyaltyEvaluation{}, err
	}

	eval, err := s.evaluateAndInsert(ctx, postgres.NewBookingRepositoryWithTx(tx), booking, currency, candidate, asOf)
	if err != nil {
		_ = tx.Rollback()
		return LoyaltyEvaluation{}, err
	}

	if err := tx.Commit(); err != nil {
		return LoyaltyEvaluation{}, err
	}

	return eval, nil
}

func (s *BookingService) evaluateAndInsert(ctx context.Context, repo repository.BookingRepository, booking *domain.Booking, currency domain.Currency, candidate decimal.Decimal, asOf time.Time) (LoyaltyEvaluation, error) {
	history, err := repo.ListCompletedSince(ctx, booking.CustomerID, s.loyalty.WindowStart(asOf))
	if err != nil {
		return LoyaltyEvaluation{}, err
	}

	eval, err := s.loyalty.Evaluate(asOf, history, candidate)
	if err != nil {
		return LoyaltyEvaluation{}, err
	}

	booking.Price = domain.NewMoney(eval.FinalPrice, currency)
	booking.DiscountApplied = eval.Eligible
	booking.DiscountAmount = domain.NewMoney(eval.DiscountAmount, currency)

	if err := repo.Create(ctx, booking); err != nil {
		return LoyaltyEvaluation{}, err
	}

	return eval, nil
}

// validateCreateRequest validates the booking submission.
func (s *BookingService) validateCreateRequest(req CreateBookingRequest) error {
	if req.CustomerID == "" {
		return ErrInvalidCustomerID
	}

	if req.TierID == "" {
		return ErrInvalidTierID
	}

	if !req.VehicleSize.IsValid() {
		return ErrInvalidVehicleSize
	}

	if !req.Currency.IsValid() {
		return ErrInvalidCurrency
	}

	if req.PaymentMethod != "" &&
		req.PaymentMethod != domain.PaymentMethodCard &&
		req.PaymentMethod != domain.PaymentMethodCash {
		return ErrInvalidPaymentMethod
	}

	if req.ScheduledAt.IsZero() {
		return ErrInvalidScheduledAt
	}

	return nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	if id == "" {
		return nil, ErrInvalidBookingID
	}
	return s.bookingRepo.GetByID(ctx, id)
}

// GetAllBookings retrieves all bookings, newest first. Cashier/admin view.
func (s *BookingService) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// GetCustomerBookings retrieves one customer's bookings, newest first.
func (s *BookingService) GetCustomerBookings(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return s.bookingRepo.GetByCustomer(ctx, customerID)
}

// UpdateStatus sets the booking status. Callers are gated to cashier/admin
// roles at the router.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if id == "" {
		return nil, ErrInvalidBookingID
	}
	if !status.IsValid() {
		return nil, ErrInvalidBookingStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyStatusChanged(ctx, booking)
	}

	return booking, nil
}

// UpdatePaymentStatus sets the payment status. Cashier/admin only.
func (s *BookingService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error) {
	if id == "" {
		return nil, ErrInvalidBookingID
	}
	if !status.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	if err := s.bookingRepo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyPaymentStatusChanged(ctx, booking)
	}

	return booking, nil
}
