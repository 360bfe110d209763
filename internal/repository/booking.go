package repository

import (
	"context"
	"time"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking with all price and discount fields
	// populated. A booking row is never written partially.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings, newest first.
	GetAll(ctx context.Context) ([]*domain.Booking, error)

	// GetByCustomer retrieves a customer's bookings, newest first.
	GetByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)

	// ListCompletedSince retrieves a customer's completed bookings created
	// after since, oldest first.
	ListCompletedSince(ctx context.Context, customerID string, since time.Time) ([]*domain.Booking, error)

	// UpdateStatus sets the booking status.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error

	// UpdatePaymentStatus sets the payment status.
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}
