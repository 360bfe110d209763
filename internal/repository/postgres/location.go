package postgres

import (
	"context"
	"database/sql"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
)

// LocationRepository is a PostgreSQL implementation of repository.LocationRepository.
type LocationRepository struct {
	q Querier
}

// NewLocationRepository creates a new PostgreSQL location repository.
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{q: db}
}

// GetAll retrieves all service areas ordered by country then name.
func (r *LocationRepository) GetAll(ctx context.Context) ([]*domain.Location, error) {
	query := `
		SELECT id, name, country, kind, lat, lng
		FROM locations ORDER BY country ASC, name ASC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Country, &loc.Kind, &loc.Lat, &loc.Lng); err != nil {
			return nil, err
		}
		locations = append(locations, &loc)
	}
	return locations, rows.Err()
}
