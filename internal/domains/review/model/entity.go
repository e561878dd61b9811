package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a renter's rating and written review of a rental property.
// At most one review exists per (property, reviewer) pair; the service
// never updates or deletes reviews once created.
type Review struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`

	// Ratings, each 1-5
	OverallRating           int `json:"overall_rating"`
	CommunicationRating     int `json:"communication_rating"`
	MaintenanceRating       int `json:"maintenance_rating"`
	PropertyConditionRating int `json:"property_condition_rating"`
	ValueRating             int `json:"value_rating"`

	// Content
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	MoveInDate  *time.Time `json:"move_in_date"`
	MoveOutDate *time.Time `json:"move_out_date"`

	WouldRecommend bool `json:"would_recommend"`
	Anonymous      bool `json:"anonymous"`

	// Server-controlled; never set by clients. Verified is flipped by an
	// external process, HelpfulCount by the (reserved) helpfulness votes.
	Verified     bool `json:"verified"`
	HelpfulCount int  `json:"helpful_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LandlordResponse is the single response the property's landlord may post
// under a review.
type LandlordResponse struct {
	ID         uuid.UUID `json:"id"`
	ReviewID   uuid.UUID `json:"review_id"`
	LandlordID uuid.UUID `json:"landlord_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// HelpfulnessVote records one helpful/not-helpful vote per (review, user)
// pair. Schema-only for now; no operation exercises it yet.
type HelpfulnessVote struct {
	ID        uuid.UUID `json:"id"`
	ReviewID  uuid.UUID `json:"review_id"`
	UserID    uuid.UUID `json:"user_id"`
	Helpful   bool      `json:"helpful"`
	CreatedAt time.Time `json:"created_at"`
}

// Statistics is the one-pass aggregate over all reviews. Averages are nil
// when there are no reviews; counts are plain zeros.
type Statistics struct {
	TotalReviews       int
	VerifiedReviews    int
	RecommendedReviews int
	AnonymousReviews   int
	PropertiesReviewed int

	AvgOverall           *float64
	AvgCommunication     *float64
	AvgMaintenance       *float64
	AvgPropertyCondition *float64
	AvgValue             *float64
}
