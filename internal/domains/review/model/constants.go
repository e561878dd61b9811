package model

const (
	// Rating bounds, applied to all five dimensions
	MinRating = 1
	MaxRating = 5

	// Content limits
	MinTitleLength = 10
	MaxTitleLength = 200
	MinBodyLength  = 50
	MaxBodyLength  = 2000

	// Landlord response limits
	MinResponseLength = 20
	MaxResponseLength = 1000

	// Pagination
	DefaultLimit = 20
	MaxLimit     = 50

	// Wire format for move-in/move-out dates
	DateLayout = "2006-01-02"
)

// Sort modes accepted by review search
const (
	SortNewest      = "newest"
	SortOldest      = "oldest"
	SortRatingHigh  = "rating_high"
	SortRatingLow   = "rating_low"
	SortMostHelpful = "most_helpful"
)

var SortModes = []string{SortNewest, SortOldest, SortRatingHigh, SortRatingLow, SortMostHelpful}
