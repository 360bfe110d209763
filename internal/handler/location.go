package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/service"
)

// LocationHandler handles HTTP requests for service areas.
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// LocationResponse is the HTTP representation of a service area.
type LocationResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Kind    string  `json:"kind"` // province, district
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// GetAll handles GET /v1/locations
func (h *LocationHandler) GetAll(c *gin.Context) {
	locations, err := h.locationService.GetAllLocations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, toLocationResponse(l))
	}
	respondJSON(c, http.StatusOK, responses)
}

func toLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		ID:      l.ID,
		Name:    l.Name,
		Country: l.Country,
		Kind:    string(l.Kind),
		Lat:     l.Lat,
		Lng:     l.Lng,
	}
}
