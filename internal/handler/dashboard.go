package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/middleware"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/service"
)

// DashboardHandler handles HTTP requests for role dashboards.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// LoyaltyProgressResponse reports progress toward the next wash discount.
type LoyaltyProgressResponse struct {
	CompletedInWindow  int  `json:"completed_in_window"`
	RequiredForReward  int  `json:"required_for_reward"`
	NextWashDiscounted bool `json:"next_wash_discounted"`
}

// BookingStatsResponse summarizes booking activity.
type BookingStatsResponse struct {
	TotalBookings int               `json:"total_bookings"`
	Pending       int               `json:"pending"`
	Completed     int               `json:"completed"`
	Revenue       map[string]string `json:"revenue"`
}

// UserDashboardResponse is the customer dashboard payload.
type UserDashboardResponse struct {
	Bookings []BookingResponse       `json:"bookings"`
	Loyalty  LoyaltyProgressResponse `json:"loyalty"`
}

// CashierDashboardResponse is the cashier dashboard payload.
type CashierDashboardResponse struct {
	Bookings []BookingResponse    `json:"bookings"`
	Stats    BookingStatsResponse `json:"stats"`
}

// AdminDashboardResponse is the admin dashboard payload.
type AdminDashboardResponse struct {
	Stats          BookingStatsResponse `json:"stats"`
	TotalUsers     int                  `json:"total_users"`
	RecentBookings []BookingResponse    `json:"recent_bookings"`
	Users          []UserResponse       `json:"users"`
	Tiers          []TierResponse       `json:"tiers"`
}

// Get handles GET /v1/dashboard and dispatches on the caller's role.
func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	switch domain.Role(c.GetString(middleware.ContextUserRole)) {
	case domain.RoleAdmin:
		dashboard, err := h.dashboardService.ForAdmin(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		users := make([]UserResponse, 0, len(dashboard.Users))
		for _, u := range dashboard.Users {
			users = append(users, toUserResponse(u))
		}
		tiers := make([]TierResponse, 0, len(dashboard.Tiers))
		for _, t := range dashboard.Tiers {
			tiers = append(tiers, toTierResponse(t))
		}

		respondJSON(c, http.StatusOK, AdminDashboardResponse{
			Stats:          toStatsResponse(dashboard.Stats),
			TotalUsers:     dashboard.TotalUsers,
			RecentBookings: toBookingResponses(dashboard.RecentBookings),
			Users:          users,
			Tiers:          tiers,
		})

	case domain.RoleCashier:
		dashboard, err := h.dashboardService.ForCashier(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		respondJSON(c, http.StatusOK, CashierDashboardResponse{
			Bookings: toBookingResponses(dashboard.Bookings),
			Stats:    toStatsResponse(dashboard.Stats),
		})

	default:
		dashboard, err := h.dashboardService.ForUser(ctx, c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, err)
			return
		}

		respondJSON(c, http.StatusOK, UserDashboardResponse{
			Bookings: toBookingResponses(dashboard.Bookings),
			Loyalty: LoyaltyProgressResponse{
				CompletedInWindow:  dashboard.Loyalty.CompletedInWindow,
				RequiredForReward:  dashboard.Loyalty.RequiredForReward,
				NextWashDiscounted: dashboard.Loyalty.NextWashDiscounted,
			},
		})
	}
}

func toStatsResponse(stats service.BookingStats) BookingStatsResponse {
	revenue := make(map[string]string, len(stats.Revenue))
	for currency, amount := range stats.Revenue {
		revenue[string(currency)] = amount.StringFixed(2)
	}

	return BookingStatsResponse{
		TotalBookings: stats.TotalBookings,
		Pending:       stats.Pending,
		Completed:     stats.Completed,
		Revenue:       revenue,
	}
}
