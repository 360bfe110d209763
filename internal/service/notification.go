package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationDiscountApplied  NotificationType = "DISCOUNT_APPLIED"
	NotificationStatusChanged    NotificationType = "STATUS_CHANGED"
	NotificationPaymentUpdated   NotificationType = "PAYMENT_UPDATED"
	NotificationReceiptReady     NotificationType = "RECEIPT_READY"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have:
	// - Push notification client (FCM, APNS)
	// - SMS client (Twilio)
	// - Email client (SendGrid)
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyBookingConfirmed notifies the customer that their booking was
// created, calling out the loyalty discount when it applied.
func (s *NotificationService) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	message := fmt.Sprintf("Booking confirmed! Total: %s", booking.Price)
	notificationType := NotificationBookingConfirmed
	if booking.DiscountApplied {
		message = fmt.Sprintf("Booking confirmed! 10%% loyalty discount applied. Total: %s (saved %s)",
			booking.Price, booking.DiscountAmount)
		notificationType = NotificationDiscountApplied
	}

	notification := Notification{
		Type:        notificationType,
		RecipientID: booking.CustomerID,
		Title:       "Booking Confirmed",
		Message:     message,
		Data: map[string]interface{}{
			"booking_id":       booking.ID,
			"scheduled_at":     booking.ScheduledAt,
			"discount_applied": booking.DiscountApplied,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyStatusChanged notifies the customer about a booking status change.
func (s *NotificationService) NotifyStatusChanged(ctx context.Context, booking *domain.Booking) error {
	notification := Notification{
		Type:        NotificationStatusChanged,
		RecipientID: booking.CustomerID,
		Title:       "Booking Updated",
		Message:     fmt.Sprintf("Your booking is now %s", booking.Status),
		Data: map[string]interface{}{
			"booking_id": booking.ID,
			"status":     string(booking.Status),
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyPaymentStatusChanged notifies the customer about a payment update.
func (s *NotificationService) NotifyPaymentStatusChanged(ctx context.Context, booking *domain.Booking) error {
	notification := Notification{
		Type:        NotificationPaymentUpdated,
		RecipientID: booking.CustomerID,
		Title:       "Payment Updated",
		Message:     fmt.Sprintf("Payment for your booking is now %s", booking.PaymentStatus),
		Data: map[string]interface{}{
			"booking_id":     booking.ID,
			"payment_status": string(booking.PaymentStatus),
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyReceiptReady notifies the customer that their digital receipt can
// be shown at the gate.
func (s *NotificationService) NotifyReceiptReady(ctx context.Context, receipt *domain.Receipt) error {
	notification := Notification{
		Type:        NotificationReceiptReady,
		RecipientID: receipt.CustomerID,
		Title:       "Receipt Ready",
		Message:     fmt.Sprintf("Your receipt for %s is ready", receipt.Total),
		Data: map[string]interface{}{
			"receipt_id": receipt.ID,
			"booking_id": receipt.BookingID,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	// In a real implementation, this would:
	// 1. Store the notification in the database
	// 2. Send push notification via FCM/APNS
	// 3. Send SMS/email if enabled

	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Title=%s, Message=%s",
		notification.Type, notification.RecipientID, notification.Title, notification.Message)

	return nil
}
