package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
)

func newMockRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBookingRepository(db), mock
}

func TestBookingRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	booking := &domain.Booking{
		ID:              "booking-1",
		CustomerID:      "cust-1",
		ServiceTierID:   "tier-1",
		VehicleType:     "VW Polo",
		VehicleSize:     domain.VehicleSizeSmall,
		Price:           domain.NewMoney(decimal.RequireFromString("117.00"), domain.CurrencyZAR),
		PaymentMethod:   domain.PaymentMethodCard,
		ScheduledAt:     now.Add(24 * time.Hour),
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		DiscountApplied: true,
		DiscountAmount:  domain.NewMoney(decimal.RequireFromString("13.00"), domain.CurrencyZAR),
		CreatedAt:       now,
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(
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
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), booking)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs("booking-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "booking-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListCompletedSince(t *testing.T) {
	repo, mock := newMockRepo(t)

	since := time.Now().AddDate(0, 0, -30)
	created := since.AddDate(0, 0, 10)

	columns := []string{
		"id", "customer_id", "service_tier_id", "vehicle_type", "vehicle_size",
		"price", "currency", "payment_method", "scheduled_at", "status",
		"payment_status", "discount_applied", "discount_amount", "created_at",
	}

	rows := sqlmock.NewRows(columns).AddRow(
		"booking-1", "cust-1", "tier-1", "VW Polo", "Small",
		"130.00", "ZAR", "card", created, "completed",
		"paid", false, "0.00", created,
	)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("cust-1", domain.BookingStatusCompleted, since).
		WillReturnRows(rows)

	bookings, err := repo.ListCompletedSince(context.Background(), "cust-1", since)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, "booking-1", b.ID)
	assert.Equal(t, domain.BookingStatusCompleted, b.Status)
	assert.True(t, b.Price.Amount.Equal(decimal.RequireFromString("130.00")))
	// The discount column has no currency of its own; it inherits the row's.
	assert.Equal(t, domain.CurrencyZAR, b.DiscountAmount.Currency)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(domain.BookingStatusConfirmed, "booking-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "booking-missing", domain.BookingStatusConfirmed)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdatePaymentStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE bookings SET payment_status").
		WithArgs(domain.PaymentStatusPaid, "booking-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePaymentStatus(context.Background(), "booking-1", domain.PaymentStatusPaid)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
