package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"rentreview-backend/internal/domains/review/model"
	"rentreview-backend/internal/infrastructure/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	db database.Querier
}

func NewPostgresReviewRepository(db database.Querier) ReviewRepository {
	return &postgresReviewRepository{db: db}
}

func (r *postgresReviewRepository) WithTx(tx pgx.Tx) ReviewRepository {
	return &postgresReviewRepository{db: tx}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (
			id, property_id, reviewer_id,
			overall_rating, communication_rating, maintenance_rating,
			property_condition_rating, value_rating,
			title, body, move_in_date, move_out_date,
			would_recommend, anonymous, verified, helpful_count,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.PropertyID,
		review.ReviewerID,
		review.OverallRating,
		review.CommunicationRating,
		review.MaintenanceRating,
		review.PropertyConditionRating,
		review.ValueRating,
		review.Title,
		review.Body,
		review.MoveInDate,
		review.MoveOutDate,
		review.WouldRecommend,
		review.Anonymous,
		review.Verified,
		review.HelpfulCount,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		// The (property_id, reviewer_id) unique constraint backstops the
		// pre-insert duplicate check against concurrent writers.
		if isUniqueViolation(err) {
			return model.ErrDuplicateReview
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `
		SELECT
			id, property_id, reviewer_id,
			overall_rating, communication_rating, maintenance_rating,
			property_condition_rating, value_rating,
			title, body, move_in_date, move_out_date,
			would_recommend, anonymous, verified, helpful_count,
			created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	review := &model.Review{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.PropertyID,
		&review.ReviewerID,
		&review.OverallRating,
		&review.CommunicationRating,
		&review.MaintenanceRating,
		&review.PropertyConditionRating,
		&review.ValueRating,
		&review.Title,
		&review.Body,
		&review.MoveInDate,
		&review.MoveOutDate,
		&review.WouldRecommend,
		&review.Anonymous,
		&review.Verified,
		&review.HelpfulCount,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// =====================================================
// DUPLICATE LOOKUP
// =====================================================

func (r *postgresReviewRepository) FindIDByPropertyAndReviewer(
	ctx context.Context,
	propertyID, reviewerID uuid.UUID,
) (uuid.UUID, bool, error) {
	query := `
		SELECT id
		FROM reviews
		WHERE property_id = $1 AND reviewer_id = $2
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, propertyID, reviewerID).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("failed to look up existing review: %w", err)
	}

	return id, true, nil
}

// =====================================================
// SEARCH
// =====================================================

func (r *postgresReviewRepository) Search(
	ctx context.Context,
	req model.SearchReviewsRequest,
) ([]model.SearchReviewItem, error) {
	query, args := newSearchQueryBuilder(req).PageQuery()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search reviews: %w", err)
	}
	defer rows.Close()

	items := []model.SearchReviewItem{}
	for rows.Next() {
		item, err := scanSearchRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read review rows: %w", err)
	}

	return items, nil
}

func scanSearchRow(rows pgx.Rows) (*model.SearchReviewItem, error) {
	item := &model.SearchReviewItem{}

	var (
		moveIn, moveOut      *time.Time
		firstName, lastName  *string
		respID, respLandlord *uuid.UUID
		respBody             *string
		respCreatedAt        *time.Time
	)

	err := rows.Scan(
		&item.ID,
		&item.Property.ID,
		&item.OverallRating,
		&item.CommunicationRating,
		&item.MaintenanceRating,
		&item.PropertyConditionRating,
		&item.ValueRating,
		&item.Title,
		&item.Body,
		&moveIn,
		&moveOut,
		&item.WouldRecommend,
		&item.Anonymous,
		&item.Verified,
		&item.HelpfulCount,
		&item.CreatedAt,
		&item.Property.Address,
		&item.Property.City,
		&item.Property.State,
		&firstName,
		&lastName,
		&respID,
		&respLandlord,
		&respBody,
		&respCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if moveIn != nil {
		s := moveIn.Format(model.DateLayout)
		item.MoveInDate = &s
	}
	if moveOut != nil {
		s := moveOut.Format(model.DateLayout)
		item.MoveOutDate = &s
	}

	// The SELECT already nulls the name columns for anonymous reviews;
	// the extra flag check keeps identity out even if the query changes.
	if !item.Anonymous && firstName != nil && lastName != nil {
		item.Reviewer = &model.ReviewerInfo{
			FirstName: *firstName,
			LastName:  *lastName,
		}
	}

	if respID != nil && respLandlord != nil && respBody != nil && respCreatedAt != nil {
		item.LandlordResponse = &model.ResponseInfo{
			ID:         *respID,
			LandlordID: *respLandlord,
			Body:       *respBody,
			CreatedAt:  *respCreatedAt,
		}
	}

	return item, nil
}

func (r *postgresReviewRepository) Count(
	ctx context.Context,
	req model.SearchReviewsRequest,
) (int, error) {
	query, args := newSearchQueryBuilder(req).CountQuery()

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	return total, nil
}

// =====================================================
// LANDLORD RESPONSES
// =====================================================

func (r *postgresReviewRepository) CreateResponse(ctx context.Context, response *model.LandlordResponse) error {
	query := `
		INSERT INTO landlord_responses (id, review_id, landlord_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		response.ID,
		response.ReviewID,
		response.LandlordID,
		response.Body,
		response.CreatedAt,
	)

	if err != nil {
		// review_id is unique: one response per review.
		if isUniqueViolation(err) {
			return model.ErrDuplicateResponse
		}
		return fmt.Errorf("failed to create landlord response: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) HasResponse(ctx context.Context, reviewID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM landlord_responses WHERE review_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, reviewID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check landlord response: %w", err)
	}

	return exists, nil
}

// =====================================================
// STATISTICS
// =====================================================

func (r *postgresReviewRepository) GetStatistics(ctx context.Context) (*model.Statistics, error) {
	// One pass over all reviews; FILTER keeps it a single aggregate scan.
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE verified),
			COUNT(*) FILTER (WHERE would_recommend),
			COUNT(*) FILTER (WHERE anonymous),
			COUNT(DISTINCT property_id),
			ROUND(AVG(overall_rating)::numeric, 1),
			ROUND(AVG(communication_rating)::numeric, 1),
			ROUND(AVG(maintenance_rating)::numeric, 1),
			ROUND(AVG(property_condition_rating)::numeric, 1),
			ROUND(AVG(value_rating)::numeric, 1)
		FROM reviews
	`

	stats := &model.Statistics{}
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalReviews,
		&stats.VerifiedReviews,
		&stats.RecommendedReviews,
		&stats.AnonymousReviews,
		&stats.PropertiesReviewed,
		&stats.AvgOverall,
		&stats.AvgCommunication,
		&stats.AvgMaintenance,
		&stats.AvgPropertyCondition,
		&stats.AvgValue,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	return stats, nil
}
