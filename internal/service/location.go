package service

import (
	"context"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/redis"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
)

// LocationService serves the fixed service-area list that backs the
// locations map, cached in Redis since the data changes only on reseed.
type LocationService struct {
	locationRepo repository.LocationRepository
	cacheStore   *redis.CacheStore
}

// NewLocationService creates a new LocationService.
func NewLocationService(locationRepo repository.LocationRepository, cacheStore *redis.CacheStore) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		cacheStore:   cacheStore,
	}
}

// GetAllLocations retrieves all service areas.
func (s *LocationService) GetAllLocations(ctx context.Context) ([]*domain.Location, error) {
	if s.cacheStore != nil {
		if cached, err := s.cacheStore.GetLocations(ctx); err == nil && cached != nil {
			locations := make([]*domain.Location, 0, len(cached))
			for _, c := range cached {
				locations = append(locations, &domain.Location{
					ID:      c.ID,
					Name:    c.Name,
					Country: c.Country,
					Kind:    domain.RegionKind(c.Kind),
					Lat:     c.Lat,
					Lng:     c.Lng,
				})
			}
			return locations, nil
		}
	}

	locations, err := s.locationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		cached := make([]*redis.CachedLocation, 0, len(locations))
		for _, l := range locations {
			cached = append(cached, &redis.CachedLocation{
				ID:      l.ID,
				Name:    l.Name,
				Country: l.Country,
				Kind:    string(l.Kind),
				Lat:     l.Lat,
				Lng:     l.Lng,
			})
		}
		_ = s.cacheStore.SetLocations(ctx, cached)
	}

	return locations, nil
}
