package domain

import "time"

// Receipt is the digital receipt a customer shows at the gate. Built from
// the booking on demand; never persisted.
type Receipt struct {
	ID             string
	BookingID      string
	CustomerID     string
	TierName       TierName
	VehicleType    string
	VehicleSize    VehicleSize
	DiscountAmount Money
	Total          Money
	PaymentMethod  PaymentMethod
	Status         BookingStatus
	ScheduledAt    time.Time
	CreatedAt      time.Time
}
