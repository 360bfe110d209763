package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// IsValid reports whether the status is in the enumerated set.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus represents the current payment state of a booking.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid reports whether the payment status is in the enumerated set.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod represents how the customer pays for a booking.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// VehicleSize determines the price multiplier for a booking. There is no
// default size: an unknown size means pricing is undefined, not 1.0x.
type VehicleSize string

const (
	VehicleSizeSmall      VehicleSize = "Small"
	VehicleSizeMedium     VehicleSize = "Medium"
	VehicleSizeLarge      VehicleSize = "Large"
	VehicleSizeExtraLarge VehicleSize = "Extra Large"
)

// IsValid reports whether the vehicle size is in the enumerated set.
func (v VehicleSize) IsValid() bool {
	switch v {
	case VehicleSizeSmall, VehicleSizeMedium, VehicleSizeLarge, VehicleSizeExtraLarge:
		return true
	}
	return false
}

// Booking represents a persisted detailing booking. Price is the final
// amount after any loyalty discount; status and payment status are the only
// fields mutated after creation, and only by cashier or admin roles.
type Booking struct {
	ID              string
	CustomerID      string
	ServiceTierID   string
	VehicleType     string // free-form description, not used in pricing
	VehicleSize     VehicleSize
	Price           Money
	PaymentMethod   PaymentMethod
	ScheduledAt     time.Time
	Status          BookingStatus
	PaymentStatus   PaymentStatus
	DiscountApplied bool
	DiscountAmount  Money
	CreatedAt       time.Time
}

// PreDiscountPrice reconstructs the price before the loyalty discount.
// Invariant: Price.Amount = PreDiscountPrice - DiscountAmount.Amount.
func (b *Booking) PreDiscountPrice() decimal.Decimal {
	return b.Price.Amount.Add(b.DiscountAmount.Amount)
}
