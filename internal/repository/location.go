package repository

import (
	"context"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
)

// LocationRepository defines read access to the fixed service-area list.
type LocationRepository interface {
	// GetAll retrieves all service areas ordered by country then name.
	GetAll(ctx context.Context) ([]*domain.Location, error)
}
