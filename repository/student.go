package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) domain.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) GetStudentProfile(ctx context.Context, userUUID string) (*domain.User, *domain.StudentStats, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("uuid = ? AND deleted_at IS NULL", userUUID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to fetch student: %w", err)
	}

	if user.Role != domain.RoleStudent {
		return nil, nil, domain.ErrNotAStudent
	}

	stats := domain.StudentStats{}
	now := time.Now()

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalBookings, r.db.WithContext(ctx).Model(&domain.Booking{}).
			Where("student_uuid = ?", userUUID)},
		{&stats.UpcomingBookings, r.db.WithContext(ctx).Model(&domain.Booking{}).
			Where("student_uuid = ? AND status = ? AND start_time > ?", userUUID, domain.StatusConfirmed, now)},
		{&stats.CompletedBookings, r.db.WithContext(ctx).Model(&domain.Booking{}).
			Where("student_uuid = ? AND status = ?", userUUID, domain.StatusCompleted)},
		{&stats.CancelledBookings, r.db.WithContext(ctx).Model(&domain.Booking{}).
			Where("student_uuid = ? AND status = ?", userUUID, domain.StatusCancelled)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to count bookings: %w", err)
		}
	}

	return &user, &stats, nil
}

func (r *studentRepository) UpdateStudentProfile(ctx context.Context, userUUID string, input domain.UpdateStudentProfileInput) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("uuid = ? AND deleted_at IS NULL", userUUID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}

	if user.Role != domain.RoleStudent {
		return nil, domain.ErrNotAStudent
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update student profile: %w", err)
		}
	}

	return &user, nil
}
