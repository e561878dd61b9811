package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentreview-backend/internal/domains/property/model"
	"rentreview-backend/internal/infrastructure/database"
)

// PropertyRepository is a read-only view over the external properties table.
type PropertyRepository interface {
	// WithTx rebinds the repository to a transaction.
	WithTx(tx pgx.Tx) PropertyRepository

	GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error)
}

type postgresPropertyRepository struct {
	db database.Querier
}

func NewPostgresPropertyRepository(db database.Querier) PropertyRepository {
	return &postgresPropertyRepository{db: db}
}

func (r *postgresPropertyRepository) WithTx(tx pgx.Tx) PropertyRepository {
	return &postgresPropertyRepository{db: tx}
}

func (r *postgresPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	query := `
		SELECT id, landlord_id, address, city, state
		FROM properties
		WHERE id = $1
	`

	property := &model.Property{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&property.ID,
		&property.LandlordID,
		&property.Address,
		&property.City,
		&property.State,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return property, nil
}
