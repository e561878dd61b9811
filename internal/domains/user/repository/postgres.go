package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentreview-backend/internal/domains/user/model"
	"rentreview-backend/internal/infrastructure/database"
)

// UserRepository is a read-only view over the external users table.
type UserRepository interface {
	// WithTx rebinds the repository to a transaction.
	WithTx(tx pgx.Tx) UserRepository

	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type postgresUserRepository struct {
	db database.Querier
}

func NewPostgresUserRepository(db database.Querier) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) WithTx(tx pgx.Tx) UserRepository {
	return &postgresUserRepository{db: tx}
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
		SELECT id, role, first_name, last_name
		FROM users
		WHERE id = $1
	`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Role,
		&user.FirstName,
		&user.LastName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
