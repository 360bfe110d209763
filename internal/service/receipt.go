package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
)

// ReceiptService builds the digital receipt for a booking.
type ReceiptService struct {
	notificationService *NotificationService
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(notificationService *NotificationService) *ReceiptService {
	return &ReceiptService{
		notificationService: notificationService,
	}
}

// GenerateReceipt builds the receipt for a booking.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, booking *domain.Booking, tier *domain.ServiceTier) (*domain.Receipt, error) {
	if booking == nil {
		return nil, ErrInvalidBookingID
	}
	if tier == nil {
		return nil, ErrInvalidTierID
	}

	receipt := &domain.Receipt{
		ID:             uuid.New().String(),
		BookingID:      booking.ID,
		CustomerID:     booking.CustomerID,
		TierName:       tier.Name,
		VehicleType:    booking.VehicleType,
		VehicleSize:    booking.VehicleSize,
		DiscountAmount: booking.DiscountAmount,
		Total:          booking.Price,
		PaymentMethod:  booking.PaymentMethod,
		Status:         booking.Status,
		ScheduledAt:    booking.ScheduledAt,
		CreatedAt:      time.Now(),
	}

	if s.notificationService != nil {
		_ = s.notificationService.NotifyReceiptReady(ctx, receipt)
	}

	return receipt, nil
}

// FormatReceipt formats the receipt as plain text, matching the receipt
// customers show at the gate.
func (s *ReceiptService) FormatReceipt(receipt *domain.Receipt) string {
	var b strings.Builder

	ref := receipt.BookingID
	if len(ref) > 8 {
		ref = ref[:8]
	}

	fmt.Fprintf(&b, "DETAILEO CAR DETAILING\n")
	fmt.Fprintf(&b, "Receipt #%s\n\n", ref)
	fmt.Fprintf(&b, "Service: %s\n", receipt.TierName)
	fmt.Fprintf(&b, "Date: %s\n", receipt.ScheduledAt.Format("Jan 02, 2006 3:04 PM"))
	fmt.Fprintf(&b, "Vehicle: %s (%s)\n", receipt.VehicleType, receipt.VehicleSize)
	fmt.Fprintf(&b, "Payment: %s\n", strings.ToUpper(string(receipt.PaymentMethod)))
	if !receipt.DiscountAmount.IsZero() {
		fmt.Fprintf(&b, "Discount: -%s\n", receipt.DiscountAmount)
	}
	fmt.Fprintf(&b, "Total: %s\n\n", receipt.Total)
	fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(string(receipt.Status)))

	return b.String()
}
