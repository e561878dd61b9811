package repository

import (
	"fmt"

	"rentreview-backend/internal/domains/review/model"
	"rentreview-backend/internal/shared/utils"
)

const searchSelect = `
	SELECT
		r.id, r.property_id,
		r.overall_rating, r.communication_rating, r.maintenance_rating,
		r.property_condition_rating, r.value_rating,
		r.title, r.body, r.move_in_date, r.move_out_date,
		r.would_recommend, r.anonymous, r.verified, r.helpful_count,
		r.created_at,
		p.address, p.city, p.state,
		CASE WHEN r.anonymous THEN NULL ELSE u.first_name END,
		CASE WHEN r.anonymous THEN NULL ELSE u.last_name END,
		lr.id, lr.landlord_id, lr.body, lr.created_at
	FROM reviews r
	INNER JOIN properties p ON p.id = r.property_id
	LEFT JOIN users u ON u.id = r.reviewer_id
	LEFT JOIN landlord_responses lr ON lr.review_id = r.id`

const countSelect = `
	SELECT COUNT(*)
	FROM reviews r
	INNER JOIN properties p ON p.id = r.property_id`

// searchQueryBuilder assembles the WHERE/ORDER/LIMIT fragments for review
// search from whichever filters were supplied, producing a statement plus a
// strictly ordered parameter list. User-supplied values are always bound,
// never interpolated; limit and offset are bound too.
type searchQueryBuilder struct {
	req     model.SearchReviewsRequest
	clauses []string
	args    []any
}

func newSearchQueryBuilder(req model.SearchReviewsRequest) *searchQueryBuilder {
	b := &searchQueryBuilder{req: req}

	if req.PropertyID != nil {
		b.add("r.property_id = $%d", *req.PropertyID)
	}
	if req.LandlordID != nil {
		b.add("p.landlord_id = $%d", *req.LandlordID)
	}
	if req.MinRating != nil {
		b.add("r.overall_rating >= $%d", *req.MinRating)
	}
	if req.MaxRating != nil {
		b.add("r.overall_rating <= $%d", *req.MaxRating)
	}

	return b
}

// add appends a condition containing a single $%d placeholder and its
// bound argument.
func (b *searchQueryBuilder) add(condition string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(condition, len(b.args)))
}

func (b *searchQueryBuilder) whereClause() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "\n\tWHERE " + utils.JoinWithAnd(b.clauses)
}

// orderClause maps a (validated) sort mode to its ORDER BY. Creation time
// breaks ties, descending.
func orderClause(sort string) string {
	switch sort {
	case model.SortOldest:
		return "\n\tORDER BY r.created_at ASC"
	case model.SortRatingHigh:
		return "\n\tORDER BY r.overall_rating DESC, r.created_at DESC"
	case model.SortRatingLow:
		return "\n\tORDER BY r.overall_rating ASC, r.created_at DESC"
	case model.SortMostHelpful:
		return "\n\tORDER BY r.helpful_count DESC, r.created_at DESC"
	default: // SortNewest
		return "\n\tORDER BY r.created_at DESC"
	}
}

// PageQuery returns the row-page statement and its ordered arguments.
func (b *searchQueryBuilder) PageQuery() (string, []any) {
	args := append([]any{}, b.args...)
	args = append(args, b.req.Limit, b.req.Offset)

	query := searchSelect + b.whereClause() + orderClause(b.req.Sort) +
		fmt.Sprintf("\n\tLIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return query, args
}

// CountQuery returns the total-count statement, sharing the page query's
// filters but ignoring ordering and pagination.
func (b *searchQueryBuilder) CountQuery() (string, []any) {
	args := append([]any{}, b.args...)
	return countSelect + b.whereClause(), args
}
