package service

import (
	"context"

	"github.com/google/uuid"

	"rentreview-backend/internal/domains/review/model"
)

// ServiceInterface is the business-logic contract for the review domain.
type ServiceInterface interface {
	// CreateReview validates the payload, runs the referential and business
	// checks (property exists, reviewer exists and is a renter, no prior
	// review for the pair) and persists the review.
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.ReviewResponse, error)

	// SearchReviews returns a filtered, sorted, paginated page of reviews
	// together with pagination metadata derived from an independent count.
	SearchReviews(ctx context.Context, req model.SearchReviewsRequest) (*model.SearchReviewsResponse, error)

	// CreateResponse posts the single landlord response a review may carry,
	// after verifying the review exists and the caller is the landlord of
	// record for its property.
	CreateResponse(ctx context.Context, reviewID uuid.UUID, req model.CreateResponseRequest) (*model.ResponseResponse, error)

	// GetStatistics aggregates all reviews in one pass.
	GetStatistics(ctx context.Context) (*model.StatisticsResponse, error)
}
