package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
)

// TierRepository is a PostgreSQL implementation of repository.TierRepository.
type TierRepository struct {
	q Querier
}

// NewTierRepository creates a new PostgreSQL tier repository.
func NewTierRepository(db *sql.DB) *TierRepository {
	return &TierRepository{q: db}
}

// Create persists a new service tier.
func (r *TierRepository) Create(ctx context.Context, tier *domain.ServiceTier) error {
	query := `
		INSERT INTO service_tiers (id, name, description, base_price, features, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		tier.ID,
		tier.Name,
		tier.Description,
		tier.BasePrice,
		pq.Array(tier.Features),
		tier.CreatedAt,
	)

	return err
}

// GetByID retrieves a service tier by ID.
func (r *TierRepository) GetByID(ctx context.Context, id string) (*domain.ServiceTier, error) {
	query := `
		SELECT id, name, description, base_price, features, created_at
		FROM service_tiers WHERE id = $1
	`

	var tier domain.ServiceTier
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&tier.ID,
		&tier.Name,
		&tier.Description,
		&tier.BasePrice,
		pq.Array(&tier.Features),
		&tier.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &tier, nil
}

// GetAll retrieves all service tiers ordered by base price.
func (r *TierRepository) GetAll(ctx context.Context) ([]*domain.ServiceTier, error) {
	query := `
		SELECT id, name, description, base_price, features, created_at
		FROM service_tiers ORDER BY base_price ASC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []*domain.ServiceTier
	for rows.Next() {
		var tier domain.ServiceTier
		if err := rows.Scan(
			&tier.ID,
			&tier.Name,
			&tier.Description,
			&tier.BasePrice,
			pq.Array(&tier.Features),
			&tier.CreatedAt,
		); err != nil {
			return nil, err
		}
		tiers = append(tiers, &tier)
	}
	return tiers, rows.Err()
}

// Update updates an existing service tier.
func (r *TierRepository) Update(ctx context.Context, tier *domain.ServiceTier) error {
	query := `
		UPDATE service_tiers
		SET name = $1, description = $2, base_price = $3, features = $4
		WHERE id = $5
	`

	result, err := r.q.ExecContext(ctx, query,
		tier.Name,
		tier.Description,
		tier.BasePrice,
		pq.Array(tier.Features),
		tier.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
