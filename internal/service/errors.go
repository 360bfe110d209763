package service

import "errors"

var (
	// ErrInvalidCustomerID is returned when customer ID is empty.
	ErrInvalidCustomerID = errors.New("invalid customer id")

	// ErrInvalidTierID is returned when service tier ID is empty.
	ErrInvalidTierID = errors.New("invalid service tier id")

	// ErrInvalidBookingID is returned when booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidBasePrice is returned when a tier base price is negative.
	ErrInvalidBasePrice = errors.New("base price must be non-negative")

	// ErrInvalidVehicleSize is returned when the vehicle size is not one of
	// Small, Medium, Large, Extra Large. There is no default size.
	ErrInvalidVehicleSize = errors.New("invalid vehicle size")

	// ErrInvalidCurrency is returned when the currency code is not in the
	// supported whitelist.
	ErrInvalidCurrency = errors.New("unsupported currency")

	// ErrInvalidPaymentMethod is returned when payment method is not card or cash.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidScheduledAt is returned when the scheduled time is missing.
	ErrInvalidScheduledAt = errors.New("invalid scheduled time")

	// ErrInvalidCandidatePrice is returned when the loyalty evaluator is
	// given a negative candidate price.
	ErrInvalidCandidatePrice = errors.New("candidate price must be non-negative")

	// ErrHistoryNotCompleted is returned when the loyalty evaluator is given
	// a history record whose status is not completed. Callers must filter
	// before calling; the evaluator validates rather than trusting silently.
	ErrHistoryNotCompleted = errors.New("loyalty history contains a non-completed booking")

	// ErrInvalidBookingStatus is returned when a status update names a value
	// outside the enumerated set.
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus is returned when a payment-status update names
	// a value outside the enumerated set.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidTierName is returned when a tier is created or updated with
	// a name outside Normal, Premium, VIP.
	ErrInvalidTierName = errors.New("invalid service tier name")

	// ErrBookingInFlight is returned when another booking submission for the
	// same customer holds the loyalty lock.
	ErrBookingInFlight = errors.New("another booking for this customer is in flight")
)
