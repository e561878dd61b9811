package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	propertymodel "rentreview-backend/internal/domains/property/model"
	propertyrepo "rentreview-backend/internal/domains/property/repository"
	"rentreview-backend/internal/domains/review/model"
	"rentreview-backend/internal/domains/review/repository"
	usermodel "rentreview-backend/internal/domains/user/model"
	userrepo "rentreview-backend/internal/domains/user/repository"
	"rentreview-backend/pkg/database"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

// txRunner runs fn inside one database transaction. Abstracted so tests
// can substitute a pass-through.
type txRunner func(ctx context.Context, fn database.TxFunc) error

type reviewService struct {
	runInTx      txRunner
	reviewRepo   repository.ReviewRepository
	propertyRepo propertyrepo.PropertyRepository
	userRepo     userrepo.UserRepository
}

func NewReviewService(
	pool *pgxpool.Pool,
	reviewRepo repository.ReviewRepository,
	propertyRepo propertyrepo.PropertyRepository,
	userRepo userrepo.UserRepository,
) ServiceInterface {
	return &reviewService{
		runInTx: func(ctx context.Context, fn database.TxFunc) error {
			return database.WithTransaction(ctx, pool, fn)
		},
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// =====================================================
// CREATE REVIEW
// =====================================================

func (s *reviewService) CreateReview(
	ctx context.Context,
	req model.CreateReviewRequest,
) (*model.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Already validated; parse errors cannot occur here.
	moveIn, _ := req.ParsedMoveInDate()
	moveOut, _ := req.ParsedMoveOutDate()

	// Checks and insert run in one transaction. The unique constraint on
	// (property_id, reviewer_id) backstops concurrent duplicates.
	var review *model.Review
	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		if _, err := s.propertyRepo.WithTx(tx).GetByID(ctx, req.PropertyID); err != nil {
			if errors.Is(err, propertymodel.ErrPropertyNotFound) {
				return model.NewPropertyNotFoundError()
			}
			return fmt.Errorf("failed to check property: %w", err)
		}

		reviewer, err := s.userRepo.WithTx(tx).GetByID(ctx, req.ReviewerID)
		if err != nil {
			if errors.Is(err, usermodel.ErrUserNotFound) {
				return model.NewReviewerNotFoundError()
			}
			return fmt.Errorf("failed to check reviewer: %w", err)
		}
		if !reviewer.IsRenter() {
			return model.NewNotARenterError()
		}

		txReviews := s.reviewRepo.WithTx(tx)

		existingID, found, err := txReviews.FindIDByPropertyAndReviewer(ctx, req.PropertyID, req.ReviewerID)
		if err != nil {
			return fmt.Errorf("failed to check for existing review: %w", err)
		}
		if found {
			return model.NewDuplicateReviewError(&existingID)
		}

		now := time.Now().UTC()
		review = &model.Review{
			ID:                      uuid.New(),
			PropertyID:              req.PropertyID,
			ReviewerID:              req.ReviewerID,
			OverallRating:           req.OverallRating,
			CommunicationRating:     req.CommunicationRating,
			MaintenanceRating:       req.MaintenanceRating,
			PropertyConditionRating: req.PropertyConditionRating,
			ValueRating:             req.ValueRating,
			Title:                   req.Title,
			Body:                    req.Body,
			MoveInDate:              moveIn,
			MoveOutDate:             moveOut,
			WouldRecommend:          *req.WouldRecommend,
			Anonymous:               req.Anonymous,
			Verified:                false,
			HelpfulCount:            0,
			CreatedAt:               now,
			UpdatedAt:               now,
		}

		return txReviews.Create(ctx, review)
	})

	if err != nil {
		return nil, s.resolveDuplicateReview(ctx, req, err)
	}

	return model.NewReviewResponse(review), nil
}

// resolveDuplicateReview makes sure a duplicate-review conflict always
// carries the existing review's id, including when a concurrent writer
// slipped between the duplicate check and the insert.
func (s *reviewService) resolveDuplicateReview(
	ctx context.Context,
	req model.CreateReviewRequest,
	err error,
) error {
	if !errors.Is(err, model.ErrDuplicateReview) {
		return err
	}

	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) && reviewErr.ExistingReviewID != nil {
		return err
	}

	// Unique-violation path: the id has to be looked up outside the
	// aborted transaction. When that lookup misses too, the conflict is
	// reported without the existing id rather than with a zero one.
	existingID, found, lookupErr := s.reviewRepo.FindIDByPropertyAndReviewer(ctx, req.PropertyID, req.ReviewerID)
	if lookupErr != nil || !found {
		return model.NewDuplicateReviewError(nil)
	}
	return model.NewDuplicateReviewError(&existingID)
}

// =====================================================
// SEARCH REVIEWS
// =====================================================

func (s *reviewService) SearchReviews(
	ctx context.Context,
	req model.SearchReviewsRequest,
) (*model.SearchReviewsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The row page and the total count are independent read-only queries;
	// run them concurrently. Either failure fails the whole operation.
	var (
		items []model.SearchReviewItem
		total int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		items, err = s.reviewRepo.Search(gctx, req)
		return err
	})

	g.Go(func() error {
		var err error
		total, err = s.reviewRepo.Count(gctx, req)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to search reviews: %w", err)
	}

	// Reviewer identity never leaves the service for anonymous reviews,
	// whatever the join produced.
	for i := range items {
		if items[i].Anonymous {
			items[i].Reviewer = nil
		}
	}

	return &model.SearchReviewsResponse{
		Reviews:    items,
		Pagination: model.NewPaginationMeta(total, req.Limit, req.Offset),
	}, nil
}

// =====================================================
// CREATE LANDLORD RESPONSE
// =====================================================

func (s *reviewService) CreateResponse(
	ctx context.Context,
	reviewID uuid.UUID,
	req model.CreateResponseRequest,
) (*model.ResponseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var response *model.LandlordResponse
	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		txReviews := s.reviewRepo.WithTx(tx)

		review, err := txReviews.GetByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, model.ErrReviewNotFound) {
				return model.NewReviewNotFoundError()
			}
			return fmt.Errorf("failed to get review: %w", err)
		}

		property, err := s.propertyRepo.WithTx(tx).GetByID(ctx, review.PropertyID)
		if err != nil {
			return fmt.Errorf("failed to get reviewed property: %w", err)
		}
		if property.LandlordID != req.LandlordID {
			return model.NewNotPropertyLandlordError()
		}

		exists, err := txReviews.HasResponse(ctx, reviewID)
		if err != nil {
			return fmt.Errorf("failed to check for existing response: %w", err)
		}
		if exists {
			return model.NewDuplicateResponseError()
		}

		response = &model.LandlordResponse{
			ID:         uuid.New(),
			ReviewID:   reviewID,
			LandlordID: req.LandlordID,
			Body:       req.Body,
			CreatedAt:  time.Now().UTC(),
		}

		return txReviews.CreateResponse(ctx, response)
	})

	if err != nil {
		// Concurrent responder hit the unique constraint first.
		if errors.Is(err, model.ErrDuplicateResponse) {
			return nil, model.NewDuplicateResponseError()
		}
		return nil, err
	}

	return model.NewResponseResponse(response), nil
}

// =====================================================
// STATISTICS
// =====================================================

func (s *reviewService) GetStatistics(ctx context.Context) (*model.StatisticsResponse, error) {
	stats, err := s.reviewRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	return model.NewStatisticsResponse(stats), nil
}
