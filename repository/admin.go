package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetAllUsers(ctx context.Context, filter domain.AdminUserFilter) ([]domain.User, domain.Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}

	query := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("deleted_at IS NULL")

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to count users: %w", err)
	}

	var users []domain.User
	err := query.
		Preload("TutorProfile").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, domain.NewPagination(total, page, limit), nil
}

// UpdateUserStatus flips a student or tutor between ACTIVE and BANNED.
// Admin accounts are off limits.
func (r *adminRepository) UpdateUserStatus(ctx context.Context, userUUID, status string) (*domain.User, error) {
	if status != domain.UserActive && status != domain.UserBanned {
		return nil, domain.ErrInvalidUserStatus
	}

	var user domain.User
	err := r.db.WithContext(ctx).
		Where("uuid = ? AND deleted_at IS NULL", userUUID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if user.Role == domain.RoleAdmin {
		return nil, domain.ErrCannotModifyAdmin
	}

	if err := r.db.WithContext(ctx).Model(&user).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	return &user, nil
}

func (r *adminRepository) GetAllBookings(ctx context.Context, filter domain.AdminBookingFilter) ([]domain.Booking, domain.Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}

	query := r.db.WithContext(ctx).Model(&domain.Booking{})
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
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	return bookings, domain.NewPagination(total, page, limit), nil
}

func (r *adminRepository) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	stats := &domain.PlatformStats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Users.Total, r.db.WithContext(ctx).Model(&domain.User{}).Where("deleted_at IS NULL")},
		{&stats.Users.Students, r.db.WithContext(ctx).Model(&domain.User{}).
			Where("role = ? AND deleted_at IS NULL", domain.RoleStudent)},
		{&stats.Users.Tutors, r.db.WithContext(ctx).Model(&domain.User{}).
			Where("role = ? AND deleted_at IS NULL", domain.RoleTutor)},
		{&stats.Bookings.Total, r.db.WithContext(ctx).Model(&domain.Booking{})},
		{&stats.Bookings.Completed, r.db.WithContext(ctx).Model(&domain.Booking{}).
			Where("status = ?", domain.StatusCompleted)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to compute platform stats: %w", err)
		}
	}

	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("COALESCE(SUM(price), 0)").
		Where("status = ?", domain.StatusCompleted).
		Scan(&stats.Revenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	err = r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentUsers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent users: %w", err)
	}

	return stats, nil
}
