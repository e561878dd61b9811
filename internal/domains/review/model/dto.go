package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// requiredUUID rejects the zero UUID, which ozzo's Required does not catch
// for array-backed types.
func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateReviewRequest is the payload for POST /reviews. Reviewer identity is
// supplied by the upstream gateway and trusted as-is.
type CreateReviewRequest struct {
	PropertyID uuid.UUID `json:"property_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`

	OverallRating           int `json:"overall_rating"`
	CommunicationRating     int `json:"communication_rating"`
	MaintenanceRating       int `json:"maintenance_rating"`
	PropertyConditionRating int `json:"property_condition_rating"`
	ValueRating             int `json:"value_rating"`

	Title string `json:"title"`
	Body  string `json:"body"`

	MoveInDate  *string `json:"move_in_date"`
	MoveOutDate *string `json:"move_out_date"`

	WouldRecommend *bool `json:"would_recommend"`
	Anonymous      bool  `json:"anonymous"`
}

func ratingRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("is required"),
		validation.Min(MinRating).Error("must be between 1 and 5"),
		validation.Max(MaxRating).Error("must be between 1 and 5"),
	}
}

func (r CreateReviewRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.PropertyID, validation.By(requiredUUID)),
		validation.Field(&r.ReviewerID, validation.By(requiredUUID)),
		validation.Field(&r.OverallRating, ratingRules()...),
		validation.Field(&r.CommunicationRating, ratingRules()...),
		validation.Field(&r.MaintenanceRating, ratingRules()...),
		validation.Field(&r.PropertyConditionRating, ratingRules()...),
		validation.Field(&r.ValueRating, ratingRules()...),
		validation.Field(&r.Title,
			validation.Required.Error("is required"),
			validation.Length(MinTitleLength, MaxTitleLength).Error("must be 10-200 characters"),
		),
		validation.Field(&r.Body,
			validation.Required.Error("is required"),
			validation.Length(MinBodyLength, MaxBodyLength).Error("must be 50-2000 characters"),
		),
		validation.Field(&r.MoveInDate, validation.Date(DateLayout).Error("must be a YYYY-MM-DD date")),
		validation.Field(&r.MoveOutDate, validation.Date(DateLayout).Error("must be a YYYY-MM-DD date")),
		validation.Field(&r.WouldRecommend, validation.NotNil.Error("is required")),
	)
	if err != nil {
		return err
	}

	return r.validateDates()
}

// validateDates enforces the cross-field constraints: move-out never
// precedes move-in (equal dates are fine), and move-in is not in the future.
func (r CreateReviewRequest) validateDates() error {
	moveIn, err := r.ParsedMoveInDate()
	if err != nil {
		return validation.Errors{"move_in_date": errors.New("must be a YYYY-MM-DD date")}
	}
	moveOut, err := r.ParsedMoveOutDate()
	if err != nil {
		return validation.Errors{"move_out_date": errors.New("must be a YYYY-MM-DD date")}
	}

	if moveIn != nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if moveIn.After(today) {
			return validation.Errors{"move_in_date": errors.New("cannot be in the future")}
		}
	}
	if moveIn != nil && moveOut != nil && moveOut.Before(*moveIn) {
		return validation.Errors{"move_out_date": errors.New("cannot be earlier than move_in_date")}
	}

	return nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r CreateReviewRequest) ParsedMoveInDate() (*time.Time, error) {
	return parseDate(r.MoveInDate)
}

func (r CreateReviewRequest) ParsedMoveOutDate() (*time.Time, error) {
	return parseDate(r.MoveOutDate)
}

// SearchReviewsRequest holds the optional filters for GET /reviews.
// Absent fields impose no constraint. The id filters are excluded from
// form binding (gin cannot map query values onto uuid.UUID); the handler
// parses them off the raw query string.
type SearchReviewsRequest struct {
	PropertyID *uuid.UUID `form:"-" json:"property_id"`
	LandlordID *uuid.UUID `form:"-" json:"landlord_id"`
	MinRating  *int       `form:"min_rating" json:"min_rating"`
	MaxRating  *int       `form:"max_rating" json:"max_rating"`
	Sort       string     `form:"sort" json:"sort"`
	Limit      int        `form:"limit" json:"limit"`
	Offset     int        `form:"offset" json:"offset"`
}

// Validate applies defaults (sort=newest, limit=20, offset=0) and then
// checks ranges, so the repository only ever sees normalized input.
func (r *SearchReviewsRequest) Validate() error {
	if r.Sort == "" {
		r.Sort = SortNewest
	}
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}

	err := validation.ValidateStruct(r,
		validation.Field(&r.MinRating,
			validation.Min(MinRating).Error("must be between 1 and 5"),
			validation.Max(MaxRating).Error("must be between 1 and 5"),
		),
		validation.Field(&r.MaxRating,
			validation.Min(MinRating).Error("must be between 1 and 5"),
			validation.Max(MaxRating).Error("must be between 1 and 5"),
		),
		validation.Field(&r.Sort,
			validation.In(SortNewest, SortOldest, SortRatingHigh, SortRatingLow, SortMostHelpful).
				Error("must be one of newest, oldest, rating_high, rating_low, most_helpful"),
		),
		validation.Field(&r.Limit,
			validation.Min(1).Error("must be between 1 and 50"),
			validation.Max(MaxLimit).Error("must be between 1 and 50"),
		),
		validation.Field(&r.Offset, validation.Min(0).Error("must not be negative")),
	)
	if err != nil {
		return err
	}

	if r.MinRating != nil && r.MaxRating != nil && *r.MaxRating < *r.MinRating {
		return validation.Errors{"max_rating": errors.New("cannot be less than min_rating")}
	}

	return nil
}

// CreateResponseRequest is the body for POST /reviews/:id/response.
// The target review id comes from the path.
type CreateResponseRequest struct {
	LandlordID uuid.UUID `json:"landlord_id"`
	Body       string    `json:"body"`
}

func (r CreateResponseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LandlordID, validation.By(requiredUUID)),
		validation.Field(&r.Body,
			validation.Required.Error("is required"),
			validation.Length(MinResponseLength, MaxResponseLength).Error("must be 20-1000 characters"),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ReviewResponse is the full review record returned on creation.
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`

	OverallRating           int `json:"overall_rating"`
	CommunicationRating     int `json:"communication_rating"`
	MaintenanceRating       int `json:"maintenance_rating"`
	PropertyConditionRating int `json:"property_condition_rating"`
	ValueRating             int `json:"value_rating"`

	Title       string  `json:"title"`
	Body        string  `json:"body"`
	MoveInDate  *string `json:"move_in_date"`
	MoveOutDate *string `json:"move_out_date"`

	WouldRecommend bool `json:"would_recommend"`
	Anonymous      bool `json:"anonymous"`
	Verified       bool `json:"verified"`
	HelpfulCount   int  `json:"helpful_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func NewReviewResponse(review *Review) *ReviewResponse {
	return &ReviewResponse{
		ID:                      review.ID,
		PropertyID:              review.PropertyID,
		ReviewerID:              review.ReviewerID,
		OverallRating:           review.OverallRating,
		CommunicationRating:     review.CommunicationRating,
		MaintenanceRating:       review.MaintenanceRating,
		PropertyConditionRating: review.PropertyConditionRating,
		ValueRating:             review.ValueRating,
		Title:                   review.Title,
		Body:                    review.Body,
		MoveInDate:              formatDate(review.MoveInDate),
		MoveOutDate:             formatDate(review.MoveOutDate),
		WouldRecommend:          review.WouldRecommend,
		Anonymous:               review.Anonymous,
		Verified:                review.Verified,
		HelpfulCount:            review.HelpfulCount,
		CreatedAt:               review.CreatedAt,
		UpdatedAt:               review.UpdatedAt,
	}
}

// PropertySummary is the property slice of a search row.
type PropertySummary struct {
	ID      uuid.UUID `json:"id"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	State   string    `json:"state"`
}

// ReviewerInfo is the reviewer display name; omitted entirely for
// anonymous reviews.
type ReviewerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ResponseInfo is the landlord response attached to a search row.
type ResponseInfo struct {
	ID         uuid.UUID `json:"id"`
	LandlordID uuid.UUID `json:"landlord_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// SearchReviewItem is one row of a search result: the review joined with
// its property, its (non-anonymous) reviewer name, and its landlord
// response if any. Reviewer identity is never present when anonymous.
type SearchReviewItem struct {
	ID       uuid.UUID       `json:"id"`
	Property PropertySummary `json:"property"`
	Reviewer *ReviewerInfo   `json:"reviewer"`

	OverallRating           int `json:"overall_rating"`
	CommunicationRating     int `json:"communication_rating"`
	MaintenanceRating       int `json:"maintenance_rating"`
	PropertyConditionRating int `json:"property_condition_rating"`
	ValueRating             int `json:"value_rating"`

	Title       string  `json:"title"`
	Body        string  `json:"body"`
	MoveInDate  *string `json:"move_in_date"`
	MoveOutDate *string `json:"move_out_date"`

	WouldRecommend bool `json:"would_recommend"`
	Anonymous      bool `json:"anonymous"`
	Verified       bool `json:"verified"`
	HelpfulCount   int  `json:"helpful_count"`

	LandlordResponse *ResponseInfo `json:"landlord_response"`

	CreatedAt time.Time `json:"created_at"`
}

// SearchReviewsResponse is the body of GET /reviews.
type SearchReviewsResponse struct {
	Reviews    []SearchReviewItem `json:"reviews"`
	Pagination PaginationMeta     `json:"pagination"`
}

// PaginationMeta pagination metadata
type PaginationMeta struct {
	Total       int  `json:"total"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPaginationMeta derives page numbers from total/limit/offset:
// total_pages = ceil(total/limit), current_page = floor(offset/limit)+1.
func NewPaginationMeta(total, limit, offset int) PaginationMeta {
	totalPages := (total + limit - 1) / limit
	currentPage := offset/limit + 1

	return PaginationMeta{
		Total:       total,
		Limit:       limit,
		Offset:      offset,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		HasNext:     currentPage < totalPages,
		HasPrevious: currentPage > 1,
	}
}

// ResponseResponse is the landlord response record returned on creation.
type ResponseResponse struct {
	ID         uuid.UUID `json:"id"`
	ReviewID   uuid.UUID `json:"review_id"`
	LandlordID uuid.UUID `json:"landlord_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewResponseResponse(resp *LandlordResponse) *ResponseResponse {
	return &ResponseResponse{
		ID:         resp.ID,
		ReviewID:   resp.ReviewID,
		LandlordID: resp.LandlordID,
		Body:       resp.Body,
		CreatedAt:  resp.CreatedAt,
	}
}

// StatisticsResponse is the aggregate view over all reviews. Rate fields
// are integer percents and report 0 when there are no reviews; average
// fields are null in that case.
type StatisticsResponse struct {
	TotalReviews    int `json:"total_reviews"`
	VerifiedReviews int `json:"verified_reviews"`
	VerifiedRate    int `json:"verified_rate"`

	AverageOverallRating           *float64 `json:"average_overall_rating"`
	AverageCommunicationRating     *float64 `json:"average_communication_rating"`
	AverageMaintenanceRating       *float64 `json:"average_maintenance_rating"`
	AveragePropertyConditionRating *float64 `json:"average_property_condition_rating"`
	AverageValueRating             *float64 `json:"average_value_rating"`

	RecommendRate      int `json:"recommend_rate"`
	AnonymousRate      int `json:"anonymous_rate"`
	PropertiesReviewed int `json:"properties_reviewed"`
}

// percentOf rounds count/total to the nearest integer percent; 0 when the
// total is 0.
func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(count)/float64(total)*100 + 0.5)
}

func NewStatisticsResponse(stats *Statistics) *StatisticsResponse {
	return &StatisticsResponse{
		TotalReviews:                   stats.TotalReviews,
		VerifiedReviews:                stats.VerifiedReviews,
		VerifiedRate:                   percentOf(stats.VerifiedReviews, stats.TotalReviews),
		AverageOverallRating:           stats.AvgOverall,
		AverageCommunicationRating:     stats.AvgCommunication,
		AverageMaintenanceRating:       stats.AvgMaintenance,
		AveragePropertyConditionRating: stats.AvgPropertyCondition,
		AverageValueRating:             stats.AvgValue,
		RecommendRate:                  percentOf(stats.RecommendedReviews, stats.TotalReviews),
		AnonymousRate:                  percentOf(stats.AnonymousReviews, stats.TotalReviews),
		PropertiesReviewed:             stats.PropertiesReviewed,
	}
}
