package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/service"
)

// TierHandler handles HTTP requests for the service catalog.
type TierHandler struct {
	tierService *service.TierService
}

// NewTierHandler creates a new TierHandler.
func NewTierHandler(tierService *service.TierService) *TierHandler {
	return &TierHandler{tierService: tierService}
}

// TierRequest is the HTTP request body for creating or updating a tier.
type TierRequest struct {
	Name        string   `json:"name"` // Normal, Premium, VIP
	Description string   `json:"description,omitempty"`
	BasePrice   string   `json:"base_price"`
	Features    []string `json:"features,omitempty"`
}

// TierResponse is the HTTP representation of a service tier.
type TierResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	BasePrice   string   `json:"base_price"`
	Features    []string `json:"features,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// GetAll handles GET /v1/tiers
func (h *TierHandler) GetAll(c *gin.Context) {
	tiers, err := h.tierService.GetAllTiers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]TierResponse, 0, len(tiers))
	for _, t := range tiers {
		responses = append(responses, toTierResponse(t))
	}
	respondJSON(c, http.StatusOK, responses)
}

// Get handles GET /v1/tiers/:id
func (h *TierHandler) Get(c *gin.Context) {
	tier, err := h.tierService.GetTier(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTierResponse(tier))
}

// Create handles POST /v1/tiers
func (h *TierHandler) Create(c *gin.Context) {
	var req TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "base_price must be a decimal string"})
		return
	}

	tier, err := h.tierService.CreateTier(c.Request.Context(), service.CreateTierRequest{
		Name:        domain.TierName(req.Name),
		Description: req.Description,
		BasePrice:   basePrice,
		Features:    req.Features,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTierResponse(tier))
}

// Update handles PUT /v1/tiers/:id
func (h *TierHandler) Update(c *gin.Context) {
	var req TierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "base_price must be a decimal string"})
		return
	}

	tier, err := h.tierService.UpdateTier(c.Request.Context(), service.UpdateTierRequest{
		ID:          c.Param("id"),
		Name:        domain.TierName(req.Name),
		Description: req.Description,
		BasePrice:   basePrice,
		Features:    req.Features,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toTierResponse(tier))
}

func toTierResponse(t *domain.ServiceTier) TierResponse {
	return TierResponse{
		ID:          t.ID,
		Name:        string(t.Name),
		Description: t.Description,
		BasePrice:   t.BasePrice.StringFixed(2),
		Features:    t.Features,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
