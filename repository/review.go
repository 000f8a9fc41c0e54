package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview accepts one review per completed booking, then recomputes the
// tutor's rating aggregate from the full review set in the same transaction.
func (r *reviewRepository) CreateReview(ctx context.Context, studentUUID string, input domain.CreateReviewInput) (*domain.Review, error) {
	if !domain.IsValidRating(input.Rating) {
		return nil, domain.ErrInvalidRating
	}

	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
		}
	}()

	var booking domain.Booking
	if err := tx.Preload("Review").Where("id = ?", input.BookingID).First(&booking).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.StudentUUID != studentUUID {
		tx.Rollback()
		return nil, domain.ErrNotYourBooking
	}

	if booking.Status != domain.StatusCompleted {
		tx.Rollback()
		return nil, domain.ErrNotCompleted
	}

	if booking.Review != nil {
		tx.Rollback()
		return nil, domain.ErrAlreadyReviewed
	}

	review := domain.Review{
		BookingID:      booking.ID,
		StudentUUID:    studentUUID,
		TutorProfileID: booking.TutorProfileID,
		Rating:         input.Rating,
		Comment:        input.Comment,
	}
	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := recomputeTutorRating(tx, booking.TutorProfileID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	return r.GetReviewByID(ctx, review.ID)
}

// recomputeTutorRating is a full recomputation over the current review set,
// never an incremental update, so the aggregate cannot drift.
func recomputeTutorRating(tx *gorm.DB, tutorProfileID string) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("tutor_profile_id = ?", tutorProfileID).
		Scan(&agg).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	err = tx.Model(&domain.TutorProfile{}).
		Where("id = ?", tutorProfileID).
		Updates(map[string]interface{}{
			"rating_avg":   domain.RoundRating(agg.Avg),
			"rating_count": agg.Count,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update tutor rating: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetTutorReviews(ctx context.Context, tutorProfileID string, filter domain.ReviewFilter) ([]domain.Review, domain.Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}

	query := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("tutor_profile_id = ?", tutorProfileID)

	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []domain.Review
	err := query.
		Preload("Student").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, domain.NewPagination(total, page, limit), nil
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	var review domain.Review
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Booking").
		Where("id = ?", reviewID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	return &review, nil
}
