package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/middleware"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
	tierService    *service.TierService
	receiptService *service.ReceiptService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(
	bookingService *service.BookingService,
	tierService *service.TierService,
	receiptService *service.ReceiptService,
) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		tierService:    tierService,
		receiptService: receiptService,
	}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	TierID        string `json:"tier_id"`
	VehicleType   string `json:"vehicle_type"`
	VehicleSize   string `json:"vehicle_size"`
	Currency      string `json:"currency,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"` // card, cash
	ScheduledAt   string `json:"scheduled_at"`             // RFC 3339
}

// BookingResponse is the HTTP representation of a booking.
type BookingResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	TierID          string `json:"tier_id"`
	VehicleType     string `json:"vehicle_type"`
	VehicleSize     string `json:"vehicle_size"`
	Price           string `json:"price"`
	Currency        string `json:"currency"`
	PaymentMethod   string `json:"payment_method"`
	ScheduledAt     string `json:"scheduled_at"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	DiscountApplied bool   `json:"discount_applied"`
	DiscountAmount  string `json:"discount_amount,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// CreateBookingResponse is the HTTP response for creating a booking.
type CreateBookingResponse struct {
	Booking          BookingResponse `json:"booking"`
	PreDiscountPrice string          `json:"pre_discount_price"`
	DiscountApplied  bool            `json:"discount_applied"`
	DiscountAmount   string          `json:"discount_amount"`
}

// UpdateStatusRequest is the HTTP request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentStatusRequest is the HTTP request body for a payment change.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// ReceiptResponse is the HTTP response for a booking receipt.
type ReceiptResponse struct {
	ID             string `json:"id"`
	BookingID      string `json:"booking_id"`
	TierName       string `json:"tier_name"`
	VehicleType    string `json:"vehicle_type"`
	VehicleSize    string `json:"vehicle_size"`
	DiscountAmount string `json:"discount_amount"`
	Total          string `json:"total"`
	Currency       string `json:"currency"`
	PaymentMethod  string `json:"payment_method"`
	Status         string `json:"status"`
	Text           string `json:"text"`
}

// Create handles POST /v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "scheduled_at must be RFC 3339"})
		return
	}

	currency := domain.Currency(req.Currency)
	if req.Currency == "" {
		currency = domain.CurrencyUSD
	}

	result, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		CustomerID:    c.GetString(middleware.ContextUserID),
		TierID:        req.TierID,
		VehicleType:   req.VehicleType,
		VehicleSize:   domain.VehicleSize(req.VehicleSize),
		Currency:      currency,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		ScheduledAt:   scheduledAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, CreateBookingResponse{
		Booking:          toBookingResponse(result.Booking),
		PreDiscountPrice: result.PreDiscountPrice.StringFixed(2),
		DiscountApplied:  result.DiscountApplied,
		DiscountAmount:   result.DiscountAmount.StringFixed(2),
	})
}

// GetAll handles GET /v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponses(bookings))
}

// GetMine handles GET /v1/bookings/mine
func (h *BookingHandler) GetMine(c *gin.Context) {
	customerID := c.GetString(middleware.ContextUserID)

	bookings, err := h.bookingService.GetCustomerBookings(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponses(bookings))
}

// Get handles GET /v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, ok := h.loadVisibleBooking(c)
	if !ok {
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// GetReceipt handles GET /v1/bookings/:id/receipt
func (h *BookingHandler) GetReceipt(c *gin.Context) {
	booking, ok := h.loadVisibleBooking(c)
	if !ok {
		return
	}

	tier, err := h.tierService.GetTier(c.Request.Context(), booking.ServiceTierID)
	if err != nil {
		respondError(c, err)
		return
	}

	receipt, err := h.receiptService.GenerateReceipt(c.Request.Context(), booking, tier)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ReceiptResponse{
		ID:             receipt.ID,
		BookingID:      receipt.BookingID,
		TierName:       string(receipt.TierName),
		VehicleType:    receipt.VehicleType,
		VehicleSize:    string(receipt.VehicleSize),
		DiscountAmount: receipt.DiscountAmount.Rounded().StringFixed(2),
		Total:          receipt.Total.Rounded().StringFixed(2),
		Currency:       string(receipt.Total.Currency),
		PaymentMethod:  string(receipt.PaymentMethod),
		Status:         string(receipt.Status),
		Text:           h.receiptService.FormatReceipt(receipt),
	})
}

// UpdateStatus handles PATCH /v1/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// UpdatePaymentStatus handles PATCH /v1/bookings/:id/payment
func (h *BookingHandler) UpdatePaymentStatus(c *gin.Context) {
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// loadVisibleBooking fetches the booking and enforces that plain users only
// see their own bookings. Staff roles see everything.
func (h *BookingHandler) loadVisibleBooking(c *gin.Context) (*domain.Booking, bool) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	role := c.GetString(middleware.ContextUserRole)
	if role == string(domain.RoleUser) && booking.CustomerID != c.GetString(middleware.ContextUserID) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "booking belongs to another customer"})
		return nil, false
	}

	return booking, true
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		TierID:          b.ServiceTierID,
		VehicleType:     b.VehicleType,
		VehicleSize:     string(b.VehicleSize),
		Price:           b.Price.Rounded().StringFixed(2),
		Currency:        string(b.Price.Currency),
		PaymentMethod:   string(b.PaymentMethod),
		ScheduledAt:     b.ScheduledAt.Format(time.RFC3339),
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		DiscountApplied: b.DiscountApplied,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if b.DiscountApplied {
		resp.DiscountAmount = b.DiscountAmount.Rounded().StringFixed(2)
	}
	return resp
}

func toBookingResponses(bookings []*domain.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b))
	}
	return responses
}
