package order

import (
	"time"

	"campusrun/internal/pkg/errs"
)

const (
	// RatingMin and RatingMax bound a review rating.
	RatingMin = 1
	RatingMax = 5
)

// Review is the single user review an order may carry once completed.
// Immutable: once set on an order it is never changed or cleared.
type Review struct {
	rating     int
	comment    string
	reviewedAt time.Time
}

// NewReview creates a Review, validating that the rating is within [1,5].
// The comment is optional.
func NewReview(rating int, comment string, reviewedAt time.Time) (Review, error) {
	if rating < RatingMin || rating > RatingMax {
		return Review{}, errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	return Review{rating: rating, comment: comment, reviewedAt: reviewedAt}, nil
}

// Rating returns the star rating in [1,5].
func (r Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r Review) Comment() string {
	return r.comment
}

// ReviewedAt returns the time the review was submitted.
func (r Review) ReviewedAt() time.Time {
	return r.reviewedAt
}
