package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentreview-backend/internal/domains/review/model"
)

// ReviewRepository is the data-access contract for reviews, landlord
// responses and statistics.
type ReviewRepository interface {
	// WithTx rebinds the repository to a transaction so a check-then-insert
	// sequence runs as one unit of work.
	WithTx(tx pgx.Tx) ReviewRepository

	// Reviews
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	// FindIDByPropertyAndReviewer returns the id of the existing review for
	// the pair, if any.
	FindIDByPropertyAndReviewer(ctx context.Context, propertyID, reviewerID uuid.UUID) (uuid.UUID, bool, error)

	// Search
	Search(ctx context.Context, req model.SearchReviewsRequest) ([]model.SearchReviewItem, error)
	Count(ctx context.Context, req model.SearchReviewsRequest) (int, error)

	// Landlord responses
	CreateResponse(ctx context.Context, response *model.LandlordResponse) error
	HasResponse(ctx context.Context, reviewID uuid.UUID) (bool, error)

	// Statistics
	GetStatistics(ctx context.Context) (*model.Statistics, error)
}
