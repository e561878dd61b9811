package model

import (
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateReviewRequest {
	recommend := true
	return CreateReviewRequest{
		PropertyID:              uuid.New(),
		ReviewerID:              uuid.New(),
		OverallRating:           5,
		CommunicationRating:     4,
		MaintenanceRating:       5,
		PropertyConditionRating: 4,
		ValueRating:             5,
		Title:                   strings.Repeat("t", 15),
		Body:                    strings.Repeat("b", 60),
		WouldRecommend:          &recommend,
	}
}

func TestCreateReviewRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing ids rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.PropertyID = uuid.Nil
		assert.Error(t, req.Validate())

		req = validCreateRequest()
		req.ReviewerID = uuid.Nil
		assert.Error(t, req.Validate())
	})

	t.Run("missing would_recommend rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.WouldRecommend = nil
		err := req.Validate()
		require.Error(t, err)

		errs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, errs, "would_recommend")
	})
}

func TestCreateReviewRequestRatingBounds(t *testing.T) {
	set := func(req *CreateReviewRequest, field string, v int) {
		switch field {
		case "overall_rating":
			req.OverallRating = v
		case "communication_rating":
			req.CommunicationRating = v
		case "maintenance_rating":
			req.MaintenanceRating = v
		case "property_condition_rating":
			req.PropertyConditionRating = v
		case "value_rating":
			req.ValueRating = v
		}
	}

	fields := []string{
		"overall_rating", "communication_rating", "maintenance_rating",
		"property_condition_rating", "value_rating",
	}

	for _, field := range fields {
		for _, tc := range []struct {
			value int
			valid bool
		}{
			{0, false},
			{1, true},
			{5, true},
			{6, false},
			{-1, false},
		} {
			req := validCreateRequest()
			set(&req, field, tc.value)

			err := req.Validate()
			if tc.valid {
				assert.NoError(t, err, "%s=%d should be accepted", field, tc.value)
			} else {
				require.Error(t, err, "%s=%d should be rejected", field, tc.value)
				errs, ok := err.(validation.Errors)
				require.True(t, ok)
				assert.Contains(t, errs, field)
			}
		}
	}
}

func TestCreateReviewRequestContentBounds(t *testing.T) {
	tests := []struct {
		name  string
		title int
		body  int
		valid bool
	}{
		{"boundary minimums accepted", MinTitleLength, MinBodyLength, true},
		{"boundary maximums accepted", MaxTitleLength, MaxBodyLength, true},
		{"title too short", MinTitleLength - 1, MinBodyLength, false},
		{"title too long", MaxTitleLength + 1, MinBodyLength, false},
		{"body too short", MinTitleLength, MinBodyLength - 1, false},
		{"body too long", MinTitleLength, MaxBodyLength + 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			req.Title = strings.Repeat("t", tc.title)
			req.Body = strings.Repeat("b", tc.body)

			err := req.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCreateReviewRequestDates(t *testing.T) {
	date := func(t time.Time) *string {
		s := t.Format(DateLayout)
		return &s
	}
	lastYear := time.Now().UTC().AddDate(-1, 0, 0)

	t.Run("move_out before move_in rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.MoveInDate = date(lastYear)
		req.MoveOutDate = date(lastYear.AddDate(0, -1, 0))

		err := req.Validate()
		require.Error(t, err)
		errs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, errs, "move_out_date")
	})

	t.Run("equal dates accepted", func(t *testing.T) {
		req := validCreateRequest()
		req.MoveInDate = date(lastYear)
		req.MoveOutDate = date(lastYear)
		assert.NoError(t, req.Validate())
	})

	t.Run("future move_in rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.MoveInDate = date(time.Now().UTC().AddDate(0, 0, 2))

		err := req.Validate()
		require.Error(t, err)
		errs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, errs, "move_in_date")
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		bad := "03/01/2024"
		req := validCreateRequest()
		req.MoveInDate = &bad
		assert.Error(t, req.Validate())
	})

	t.Run("dates optional", func(t *testing.T) {
		req := validCreateRequest()
		req.MoveInDate = nil
		req.MoveOutDate = nil
		assert.NoError(t, req.Validate())
	})
}

func TestSearchReviewsRequestValidate(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		req := SearchReviewsRequest{}
		require.NoError(t, req.Validate())
		assert.Equal(t, SortNewest, req.Sort)
		assert.Equal(t, DefaultLimit, req.Limit)
		assert.Equal(t, 0, req.Offset)
	})

	t.Run("limit bounds", func(t *testing.T) {
		req := SearchReviewsRequest{Limit: MaxLimit}
		assert.NoError(t, req.Validate())

		req = SearchReviewsRequest{Limit: MaxLimit + 1}
		assert.Error(t, req.Validate())

		req = SearchReviewsRequest{Limit: -1}
		assert.Error(t, req.Validate())
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		req := SearchReviewsRequest{Offset: -1}
		assert.Error(t, req.Validate())
	})

	t.Run("sort modes", func(t *testing.T) {
		for _, sort := range SortModes {
			req := SearchReviewsRequest{Sort: sort}
			assert.NoError(t, req.Validate(), "sort=%s", sort)
		}

		req := SearchReviewsRequest{Sort: "loudest"}
		assert.Error(t, req.Validate())
	})

	t.Run("rating range", func(t *testing.T) {
		one, three, five, six := 1, 3, 5, 6

		req := SearchReviewsRequest{MinRating: &one, MaxRating: &five}
		assert.NoError(t, req.Validate())

		req = SearchReviewsRequest{MinRating: &six}
		assert.Error(t, req.Validate())

		req = SearchReviewsRequest{MinRating: &five, MaxRating: &three}
		err := req.Validate()
		require.Error(t, err)
		errs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, errs, "max_rating")
	})
}

func TestCreateResponseRequestValidate(t *testing.T) {
	tests := []struct {
		name  string
		body  int
		valid bool
	}{
		{"boundary minimum accepted", MinResponseLength, true},
		{"boundary maximum accepted", MaxResponseLength, true},
		{"too short", MinResponseLength - 1, false},
		{"too long", MaxResponseLength + 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateResponseRequest{
				LandlordID: uuid.New(),
				Body:       strings.Repeat("r", tc.body),
			}

			err := req.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	t.Run("missing landlord id rejected", func(t *testing.T) {
		req := CreateResponseRequest{Body: strings.Repeat("r", 40)}
		assert.Error(t, req.Validate())
	})
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		limit       int
		offset      int
		totalPages  int
		currentPage int
		hasNext     bool
		hasPrevious bool
	}{
		{"first page of several", 45, 20, 0, 3, 1, true, false},
		{"middle page", 45, 20, 20, 3, 2, true, true},
		{"last partial page", 45, 20, 40, 3, 3, false, true},
		{"empty result", 0, 20, 0, 0, 1, false, false},
		{"exact multiple", 40, 20, 20, 2, 2, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPaginationMeta(tc.total, tc.limit, tc.offset)
			assert.Equal(t, tc.total, meta.Total)
			assert.Equal(t, tc.totalPages, meta.TotalPages)
			assert.Equal(t, tc.currentPage, meta.CurrentPage)
			assert.Equal(t, tc.hasNext, meta.HasNext)
			assert.Equal(t, tc.hasPrevious, meta.HasPrevious)
		})
	}
}

func TestNewStatisticsResponse(t *testing.T) {
	t.Run("empty set reports zero rates and null averages", func(t *testing.T) {
		resp := NewStatisticsResponse(&Statistics{})

		assert.Equal(t, 0, resp.TotalReviews)
		assert.Equal(t, 0, resp.VerifiedRate)
		assert.Equal(t, 0, resp.RecommendRate)
		assert.Equal(t, 0, resp.AnonymousRate)
		assert.Nil(t, resp.AverageOverallRating)
		assert.Nil(t, resp.AverageCommunicationRating)
		assert.Nil(t, resp.AverageMaintenanceRating)
		assert.Nil(t, resp.AveragePropertyConditionRating)
		assert.Nil(t, resp.AverageValueRating)
	})

	t.Run("rates round to nearest percent", func(t *testing.T) {
		avg := 4.3
		resp := NewStatisticsResponse(&Statistics{
			TotalReviews:       3,
			VerifiedReviews:    1,
			RecommendedReviews: 2,
			AnonymousReviews:   3,
			PropertiesReviewed: 2,
			AvgOverall:         &avg,
		})

		assert.Equal(t, 33, resp.VerifiedRate)
		assert.Equal(t, 67, resp.RecommendRate)
		assert.Equal(t, 100, resp.AnonymousRate)
		assert.Equal(t, 2, resp.PropertiesReviewed)
		require.NotNil(t, resp.AverageOverallRating)
		assert.Equal(t, 4.3, *resp.AverageOverallRating)
	})
}
