package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/redis"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
)

// TierService manages the service-tier catalog with a Redis read-through
// cache in front of PostgreSQL. Cache failures fall through to the
// database; the cache is advisory.
type TierService struct {
	tierRepo   repository.TierRepository
	cacheStore *redis.CacheStore
}

// NewTierService creates a new TierService.
func NewTierService(tierRepo repository.TierRepository, cacheStore *redis.CacheStore) *TierService {
	return &TierService{
		tierRepo:   tierRepo,
		cacheStore: cacheStore,
	}
}

var _ TierProviderInterface = (*TierService)(nil)

// GetTier retrieves a service tier, preferring the cache.
func (s *TierService) GetTier(ctx context.Context, id string) (*domain.ServiceTier, error) {
	if id == "" {
		return nil, ErrInvalidTierID
	}

	if s.cacheStore != nil {
		if cached, err := s.cacheStore.GetTier(ctx, id); err == nil && cached != nil {
			if tier, err := cachedToTier(cached); err == nil {
				return tier, nil
			}
		}
	}

	tier, err := s.tierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheTier(ctx, tier)
	return tier, nil
}

// GetAllTiers retrieves the catalog ordered by base price.
func (s *TierService) GetAllTiers(ctx context.Context) ([]*domain.ServiceTier, error) {
	if s.cacheStore != nil {
		if cached, err := s.cacheStore.GetTierList(ctx); err == nil && cached != nil {
			tiers := make([]*domain.ServiceTier, 0, len(cached))
			ok := true
			for _, c := range cached {
				tier, err := cachedToTier(c)
				if err != nil {
					ok = false
					break
				}
				tiers = append(tiers, tier)
			}
			if ok {
				return tiers, nil
			}
		}
	}

	tiers, err := s.tierRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		cached := make([]*redis.CachedTier, 0, len(tiers))
		for _, t := range tiers {
			cached = append(cached, tierToCached(t))
		}
		_ = s.cacheStore.SetTierList(ctx, cached)
	}

	return tiers, nil
}

// CreateTierRequest contains the parameters for creating a catalog entry.
type CreateTierRequest struct {
	Name        domain.TierName
	Description string
	BasePrice   decimal.Decimal
	Features    []string
}

// CreateTier adds a catalog entry. Admin only.
func (s *TierService) CreateTier(ctx context.Context, req CreateTierRequest) (*domain.ServiceTier, error) {
	if err := validateTier(req.Name, req.BasePrice); err != nil {
		return nil, err
	}

	tier := &domain.ServiceTier{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Features:    req.Features,
		CreatedAt:   time.Now(),
	}

	if err := s.tierRepo.Create(ctx, tier); err != nil {
		return nil, err
	}

	s.invalidate(ctx, tier.ID)
	return tier, nil
}

// UpdateTierRequest contains the parameters for updating a catalog entry.
type UpdateTierRequest struct {
	ID          string
	Name        domain.TierName
	Description string
	BasePrice   decimal.Decimal
	Features    []string
}

// UpdateTier replaces a catalog entry. Admin only.
func (s *TierService) UpdateTier(ctx context.Context, req UpdateTierRequest) (*domain.ServiceTier, error) {
	if req.ID == "" {
		return nil, ErrInvalidTierID
	}
	if err := validateTier(req.Name, req.BasePrice); err != nil {
		return nil, err
	}

	tier := &domain.ServiceTier{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Features:    req.Features,
	}

	if err := s.tierRepo.Update(ctx, tier); err != nil {
		return nil, err
	}

	s.invalidate(ctx, tier.ID)
	return s.tierRepo.GetByID(ctx, tier.ID)
}

func validateTier(name domain.TierName, basePrice decimal.Decimal) error {
	if !name.IsValid() {
		return ErrInvalidTierName
	}
	if basePrice.IsNegative() {
		return ErrInvalidBasePrice
	}
	return nil
}

func (s *TierService) cacheTier(ctx context.Context, tier *domain.ServiceTier) {
	if s.cacheStore == nil {
		return
	}
	_ = s.cacheStore.SetTier(ctx, tierToCached(tier))
}

func (s *TierService) invalidate(ctx context.Context, tierID string) {
	if s.cacheStore == nil {
		return
	}
	_ = s.cacheStore.InvalidateTier(ctx, tierID)
}

func tierToCached(tier *domain.ServiceTier) *redis.CachedTier {
	return &redis.CachedTier{
		ID:          tier.ID,
		Name:        string(tier.Name),
		Description: tier.Description,
		BasePrice:   tier.BasePrice.String(),
		Features:    tier.Features,
	}
}

func cachedToTier(cached *redis.CachedTier) (*domain.ServiceTier, error) {
	basePrice, err := decimal.NewFromString(cached.BasePrice)
	if err != nil {
		return nil, err
	}
	return &domain.ServiceTier{
		ID:          cached.ID,
		Name:        domain.TierName(cached.Name),
		Description: cached.Description,
		BasePrice:   basePrice,
		Features:    cached.Features,
	}, nil
}
