package database

import (
	"context"
	"fmt"
)

// The tables this service owns. The referenced properties and users tables
// are managed elsewhere; only foreign keys point at them.
var OwnedTables = []string{"reviews", "landlord_responses", "review_helpfulness"}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		property_id UUID NOT NULL REFERENCES properties(id),
		reviewer_id UUID NOT NULL REFERENCES users(id),
		overall_rating INT NOT NULL CHECK (overall_rating BETWEEN 1 AND 5),
		communication_rating INT NOT NULL CHECK (communication_rating BETWEEN 1 AND 5),
		maintenance_rating INT NOT NULL CHECK (maintenance_rating BETWEEN 1 AND 5),
		property_condition_rating INT NOT NULL CHECK (property_condition_rating BETWEEN 1 AND 5),
		value_rating INT NOT NULL CHECK (value_rating BETWEEN 1 AND 5),
		title VARCHAR(200) NOT NULL,
		body TEXT NOT NULL,
		move_in_date DATE,
		move_out_date DATE,
		would_recommend BOOLEAN NOT NULL,
		anonymous BOOLEAN NOT NULL DEFAULT FALSE,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		helpful_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (property_id, reviewer_id)
	)`,
	`CREATE TABLE IF NOT EXISTS landlord_responses (
		id UUID PRIMARY KEY,
		review_id UUID NOT NULL UNIQUE REFERENCES reviews(id),
		landlord_id UUID NOT NULL REFERENCES users(id),
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS review_helpfulness (
		id UUID PRIMARY KEY,
		review_id UUID NOT NULL REFERENCES reviews(id),
		user_id UUID NOT NULL REFERENCES users(id),
		helpful BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (review_id, user_id)
	)`,
}

// EnsureSchema creates the owned tables if they do not exist yet and
// returns their names. Idempotent, so the setup endpoint can be hit freely.
func (db *PostgresDB) EnsureSchema(ctx context.Context) ([]string, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to create table: %w", err)
		}
	}

	return OwnedTables, nil
}
