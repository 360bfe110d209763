package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `id, customer_id, service_tier_id, vehicle_type, vehicle_size, price, currency, payment_method, scheduled_at, status, payment_status, discount_applied, discount_amount, created_at`

// Create persists a new booking. Price and discount fields are written in
// the same insert; a booking row never exists with partial pricing state.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.ServiceTierID,
		booking.VehicleType,
		booking.VehicleSize,
		booking.Price.Rounded(),
		booking.Price.Currency,
		booking.PaymentMethod,
		booking.ScheduledAt,
		booking.Status,
		booking.PaymentStatus,
		booking.DiscountApplied,
		booking.DiscountAmount.Rounded(),
		booking.CreatedAt,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

// GetAll retrieves all bookings, newest first.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT 200`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCustomer retrieves a customer's bookings, newest first.
func (r *BookingRepository) GetByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`

	rows, err := r.q.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListCompletedSince retrieves a customer's completed bookings created after
// since, oldest first. Used inside the booking-submission transaction for
// the loyalty eligibility count.
func (r *BookingRepository) ListCompletedSince(ctx context.Context, customerID string, since time.Time) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_id = $1 AND status = $2 AND created_at > $3
		ORDER BY created_at ASC
	`

	rows, err := r.q.QueryContext(ctx, query, customerID, domain.BookingStatusCompleted, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus sets the booking status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.updateColumn(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
}

// UpdatePaymentStatus sets the payment status.
func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	return r.updateColumn(ctx, `UPDATE bookings SET payment_status = $1 WHERE id = $2`, status, id)
}

func (r *BookingRepository) updateColumn(ctx context.Context, query string, args ...any) error {
	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.ServiceTierID,
		&booking.VehicleType,
		&booking.VehicleSize,
		&booking.Price.Amount,
		&booking.Price.Currency,
		&booking.PaymentMethod,
		&booking.ScheduledAt,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.DiscountApplied,
		&booking.DiscountAmount.Amount,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	booking.DiscountAmount.Currency = booking.Price.Currency
	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
