package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rentreview-backend/internal/domains/review/model"
	"rentreview-backend/internal/domains/review/service"
	"rentreview-backend/internal/shared/response"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// =====================================================
// ENDPOINTS
// =====================================================

// CreateReview creates a new review
// POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// SearchReviews lists reviews matching the optional filters
// GET /reviews
func (h *ReviewHandler) SearchReviews(c *gin.Context) {
	var req model.SearchReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	if errs := bindIDFilters(c, &req); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	result, err := h.reviewService.SearchReviews(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreateResponse posts the landlord response for a review
// POST /reviews/:id/response
func (h *ReviewHandler) CreateResponse(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationFailed(c, validation.Errors{"id": errors.New("must be a valid review id")})
		return
	}

	var req model.CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.reviewService.CreateResponse(c.Request.Context(), reviewID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// GetStatistics returns the aggregate review statistics
// GET /reviews/stats
func (h *ReviewHandler) GetStatistics(c *gin.Context) {
	stats, err := h.reviewService.GetStatistics(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"statistics": stats})
}

// bindIDFilters parses the optional UUID query filters. gin's query binder
// has no converter for uuid.UUID, so these come off the raw query string.
func bindIDFilters(c *gin.Context, req *model.SearchReviewsRequest) validation.Errors {
	errs := validation.Errors{}

	if raw := c.Query("property_id"); raw != "" {
		if id, err := uuid.Parse(raw); err != nil {
			errs["property_id"] = errors.New("must be a valid property id")
		} else {
			req.PropertyID = &id
		}
	}
	if raw := c.Query("landlord_id"); raw != "" {
		if id, err := uuid.Parse(raw); err != nil {
			errs["landlord_id"] = errors.New("must be a valid landlord id")
		} else {
			req.LandlordID = &id
		}
	}

	return errs
}

// =====================================================
// ERROR MAPPING
// =====================================================

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeReviewNotFound, model.ErrCodePropertyNotFound, model.ErrCodeReviewerNotFound:
		return http.StatusNotFound
	case model.ErrCodeNotARenter, model.ErrCodeNotPropertyLandlord:
		return http.StatusForbidden
	case model.ErrCodeDuplicateReview, model.ErrCodeDuplicateResponse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates service errors into the HTTP error taxonomy:
// validation 400, missing references 404, role/ownership mismatch 403,
// duplicates 409 (surfacing the existing review's id), everything else 500.
func (h *ReviewHandler) respondError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		status := statusForCode(reviewErr.Code)
		if reviewErr.ExistingReviewID != nil {
			response.ErrorWithDetails(c, status, reviewErr.Code, reviewErr.Message,
				gin.H{"existing_review_id": reviewErr.ExistingReviewID})
			return
		}
		response.ErrorResponse(c, status, reviewErr.Code, reviewErr.Message)
		return
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Unhandled review service error")
	response.InternalServerError(c, err.Error())
}
