package domain

import (
	"context"
	"math"
)

type CreateReviewInput struct {
	BookingID string
	Rating    int
	Comment   *string
}

type ReviewFilter struct {
	MinRating int
	Page      int
	Limit     int
}

type ReviewUseCase interface {
	CreateReview(ctx context.Context, studentUUID string, input CreateReviewInput) (*Review, error)
	GetTutorReviews(ctx context.Context, tutorProfileID string, filter ReviewFilter) ([]Review, Pagination, error)
	GetReviewByID(ctx context.Context, reviewID string) (*Review, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, studentUUID string, input CreateReviewInput) (*Review, error)
	GetTutorReviews(ctx context.Context, tutorProfileID string, filter ReviewFilter) ([]Review, Pagination, error)
	GetReviewByID(ctx context.Context, reviewID string) (*Review, error)
}

// RoundRating stores the tutor aggregate to one decimal place, rounding
// halves away from zero (4.45 -> 4.5).
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func IsValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}
