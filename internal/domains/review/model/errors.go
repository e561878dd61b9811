package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error codes
const (
	ErrCodeReviewNotFound      = "REV001"
	ErrCodeDuplicateReview     = "REV002"
	ErrCodePropertyNotFound    = "REV003"
	ErrCodeReviewerNotFound    = "REV004"
	ErrCodeNotARenter          = "REV005"
	ErrCodeNotPropertyLandlord = "REV006"
	ErrCodeDuplicateResponse   = "REV007"
)

// Sentinels
var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrDuplicateReview     = errors.New("review already exists for this property and reviewer")
	ErrNotARenter          = errors.New("only renters can create reviews")
	ErrNotPropertyLandlord = errors.New("only the property's landlord can respond")
	ErrDuplicateResponse   = errors.New("a response already exists for this review")
)

// ReviewError carries the code and message surfaced to clients.
// ExistingReviewID is set on duplicate-review conflicts only.
type ReviewError struct {
	Code             string
	Message          string
	Err              error
	ExistingReviewID *uuid.UUID
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

// Error constructors

func NewReviewNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}

// NewDuplicateReviewError carries the conflicting review's id when it is
// known; pass nil to omit the detail.
func NewDuplicateReviewError(existingID *uuid.UUID) *ReviewError {
	return &ReviewError{
		Code:             ErrCodeDuplicateReview,
		Message:          "You have already reviewed this property",
		Err:              ErrDuplicateReview,
		ExistingReviewID: existingID,
	}
}

func NewPropertyNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodePropertyNotFound,
		Message: "Property not found",
	}
}

func NewReviewerNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeReviewerNotFound,
		Message: "Reviewer not found",
	}
}

func NewNotARenterError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotARenter,
		Message: "Only renters can create reviews",
		Err:     ErrNotARenter,
	}
}

func NewNotPropertyLandlordError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotPropertyLandlord,
		Message: "Only the property's landlord can respond to this review",
		Err:     ErrNotPropertyLandlord,
	}
}

func NewDuplicateResponseError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeDuplicateResponse,
		Message: "This review already has a landlord response",
		Err:     ErrDuplicateResponse,
	}
}
