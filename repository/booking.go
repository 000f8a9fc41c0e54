package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) domain.BookingRepository {
	return &bookingRepository{db: db}
}

// CreateBooking validates the request and inserts a CONFIRMED booking. The
// conflict scan and the insert share one transaction so two overlapping
// requests cannot both pass the scan.
func (r *bookingRepository) CreateBooking(ctx context.Context, studentUUID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
		}
	}()

	var profile domain.TutorProfile
	if err := tx.Where("id = ?", input.TutorProfileID).First(&profile).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTutorNotFound
		}
		return nil, fmt.Errorf("failed to load tutor profile: %w", err)
	}

	if profile.UserUUID == studentUUID {
		tx.Rollback()
		return nil, domain.ErrSelfBooking
	}

	if !input.StartTime.Before(input.EndTime) {
		tx.Rollback()
		return nil, domain.ErrInvalidInterval
	}

	if !input.StartTime.After(time.Now()) {
		tx.Rollback()
		return nil, domain.ErrPastBooking
	}

	// Overlap test over non-cancelled bookings: existing.start < new.end
	// AND existing.end > new.start. Adjacent intervals do not conflict.
	var conflicts int64
	err := tx.Model(&domain.Booking{}).
		Where("tutor_profile_id = ?", input.TutorProfileID).
		Where("status IN ?", []string{domain.StatusConfirmed, domain.StatusCompleted}).
		Where("start_time < ? AND end_time > ?", input.EndTime, input.StartTime).
		Count(&conflicts).Error
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	if conflicts > 0 {
		tx.Rollback()
		return nil, domain.ErrSlotConflict
	}

	booking := domain.Booking{
		StudentUUID:    studentUUID,
		TutorProfileID: input.TutorProfileID,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Price:          input.Price,
		Status:         domain.StatusConfirmed,
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	return r.loadBooking(ctx, booking.ID)
}

func (r *bookingRepository) GetUserBookings(ctx context.Context, userUUID, role string, filter domain.BookingFilter) ([]domain.Booking, domain.Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}

	query := r.db.WithContext(ctx).Model(&domain.Booking{})

	switch role {
	case domain.RoleStudent:
		query = query.Where("student_uuid = ?", userUUID)
	case domain.RoleTutor:
		var profile domain.TutorProfile
		if err := r.db.WithContext(ctx).Where("user_uuid = ?", userUUID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.Pagination{}, domain.ErrTutorNotFound
			}
			return nil, domain.Pagination{}, fmt.Errorf("failed to load tutor profile: %w", err)
		}
		query = query.Where("tutor_profile_id = ?", profile.ID)
	default:
		return nil, domain.Pagination{}, domain.ErrBookingAccessDenied
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to count bookings: %w", err)
	}

	var bookings []domain.Booking
	err := query.
		Preload("Student").
		Preload("TutorProfile.User").
		Preload("Review").
		Order("start_time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	return bookings, domain.NewPagination(total, page, limit), nil
}

func (r *bookingRepository) GetBookingByID(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	booking, err := r.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !domain.CanAccessBooking(booking, booking.TutorProfile.UserUUID, actor) {
		return nil, domain.ErrBookingAccessDenied
	}

	return booking, nil
}

// UpdateBookingStatus drives the CONFIRMED -> COMPLETED / CANCELLED state
// machine; domain.CanTransition holds the rules.
func (r *bookingRepository) UpdateBookingStatus(ctx context.Context, bookingID string, actor domain.Actor, target string) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
		}
	}()

	var booking domain.Booking
	if err := tx.Preload("TutorProfile").Where("id = ?", bookingID).First(&booking).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if err := domain.CanTransition(&booking, booking.TutorProfile.UserUUID, actor, target, time.Now()); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&domain.Booking{}).
		Where("id = ?", booking.ID).
		Update("status", target).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to save booking status: %w", err)
	}

	return r.loadBooking(ctx, booking.ID)
}

func (r *bookingRepository) loadBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("TutorProfile.User").
		Preload("Review").
		Where("id = ?", bookingID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}
