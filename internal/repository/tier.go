package repository

import (
	"context"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
)

// TierRepository defines the persistence operations for service tiers.
type TierRepository interface {
	// Create persists a new service tier.
	Create(ctx context.Context, tier *domain.ServiceTier) error

	// GetByID retrieves a service tier by ID.
	GetByID(ctx context.Context, id string) (*domain.ServiceTier, error)

	// GetAll retrieves all service tiers ordered by base price.
	GetAll(ctx context.Context) ([]*domain.ServiceTier, error)

	// Update updates an existing service tier.
	Update(ctx context.Context, tier *domain.ServiceTier) error
}
