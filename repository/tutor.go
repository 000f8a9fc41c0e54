package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type tutorRepository struct {
	db *gorm.DB
}

func NewTutorRepository(db *gorm.DB) domain.TutorRepository {
	return &tutorRepository{db: db}
}

// GetAllTutors is the public directory listing: ACTIVE tutors only, best
// rated first.
func (r *tutorRepository) GetAllTutors(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorProfile, domain.Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}

	query := r.db.WithContext(ctx).Model(&domain.TutorProfile{}).
		Joins("JOIN users ON users.uuid = tutor_profiles.user_uuid").
		Where("users.role = ? AND users.status = ? AND users.deleted_at IS NULL",
			domain.RoleTutor, domain.UserActive)

	if filter.Category != "" {
		query = query.Where("tutor_profiles.id IN (?)",
			r.db.Table("tutor_categories").
				Select("tutor_categories.tutor_profile_id").
				Joins("JOIN categories ON categories.id = tutor_categories.category_id").
				Where("categories.slug = ?", filter.Category))
	}

	if filter.MinRating != nil {
		query = query.Where("tutor_profiles.rating_avg >= ?", *filter.MinRating)
	}
	if filter.MinPrice != nil {
		query = query.Where("tutor_profiles.hourly_rate >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("tutor_profiles.hourly_rate <= ?", *filter.MaxPrice)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"users.name ILIKE ? OR tutor_profiles.id IN (?)",
			pattern,
			r.db.Table("tutor_categories").
				Select("tutor_categories.tutor_profile_id").
				Joins("JOIN categories ON categories.id = tutor_categories.category_id").
				Where("categories.name ILIKE ? OR categories.slug ILIKE ?", pattern, pattern))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to count tutors: %w", err)
	}

	var tutors []domain.TutorProfile
	err := query.
		Preload("User").
		Preload("Categories").
		Order("tutor_profiles.rating_avg DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tutors).Error
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("failed to fetch tutors: %w", err)
	}

	return tutors, domain.NewPagination(total, page, limit), nil
}

func (r *tutorRepository) GetTutorByID(ctx context.Context, tutorProfileID string) (*domain.TutorProfile, error) {
	var tutor domain.TutorProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Categories").
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("day_of_week ASC, start_time ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(5)
		}).
		Preload("Reviews.Student").
		Where("id = ?", tutorProfileID).
		First(&tutor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTutorNotFound
		}
		return nil, fmt.Errorf("failed to fetch tutor: %w", err)
	}

	if tutor.User == nil || tutor.User.Status != domain.UserActive {
		return nil, domain.ErrTutorInactive
	}

	return &tutor, nil
}

func (r *tutorRepository) GetMyTutorProfile(ctx context.Context, userUUID string) (*domain.TutorProfile, *domain.TutorStats, error) {
	profile, err := r.ensureProfile(ctx, userUUID)
	if err != nil {
		return nil, nil, err
	}

	var tutor domain.TutorProfile
	err = r.db.WithContext(ctx).
		Preload("User").
		Preload("Categories").
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC, start_time ASC")
		}).
		Where("id = ?", profile.ID).
		First(&tutor).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch tutor profile: %w", err)
	}

	stats := domain.TutorStats{}
	now := time.Now()

	err = r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("tutor_profile_id = ? AND status = ? AND start_time > ?", profile.ID, domain.StatusConfirmed, now).
		Count(&stats.UpcomingSessions).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count upcoming sessions: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("tutor_profile_id = ? AND status = ?", profile.ID, domain.StatusCompleted).
		Count(&stats.CompletedSessions).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count completed sessions: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("COALESCE(SUM(price), 0)").
		Where("tutor_profile_id = ? AND status = ?", profile.ID, domain.StatusCompleted).
		Scan(&stats.TotalEarnings).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sum earnings: %w", err)
	}

	return &tutor, &stats, nil
}

func (r *tutorRepository) UpdateTutorProfile(ctx context.Context, userUUID string, input domain.UpdateTutorProfileInput) (*domain.TutorProfile, error) {
	if input.HourlyRate != nil && *input.HourlyRate < 0 {
		return nil, domain.ErrNegativeRate
	}
	if input.Experience != nil && *input.Experience < 0 {
		return nil, domain.ErrNegativeYears
	}

	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
		}
	}()

	profile, err := ensureProfileTx(tx, userUUID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.HourlyRate != nil {
		updates["hourly_rate"] = *input.HourlyRate
	}
	if input.Experience != nil {
		updates["experience"] = *input.Experience
	}
	if len(updates) > 0 {
		if err := tx.Model(&domain.TutorProfile{}).
			Where("id = ?", profile.ID).
			Updates(updates).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to update tutor profile: %w", err)
		}
	}

	if len(input.CategoryIDs) > 0 {
		var count int64
		if err := tx.Model(&domain.Category{}).
			Where("id IN ?", input.CategoryIDs).
			Count(&count).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to verify categories: %w", err)
		}
		if count != int64(len(input.CategoryIDs)) {
			tx.Rollback()
			return nil, domain.ErrCategoryMissing
		}

		categories := make([]domain.Category, len(input.CategoryIDs))
		for i, id := range input.CategoryIDs {
			categories[i] = domain.Category{ID: id}
		}
		if err := tx.Model(profile).Association("Categories").Replace(categories); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to replace categories: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to save tutor profile: %w", err)
	}

	var updated domain.TutorProfile
	err = r.db.WithContext(ctx).
		Preload("User").
		Preload("Categories").
		Where("id = ?", profile.ID).
		First(&updated).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated profile: %w", err)
	}
	return &updated, nil
}

func (r *tutorRepository) GetAvailability(ctx context.Context, userUUID string) ([]domain.AvailabilitySlot, error) {
	profile, err := r.ensureProfile(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	var slots []domain.AvailabilitySlot
	err = r.db.WithContext(ctx).
		Where("tutor_profile_id = ?", profile.ID).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	return slots, nil
}

func (r *tutorRepository) AddAvailability(ctx context.Context, userUUID string, input domain.AvailabilitySlotInput) (*domain.AvailabilitySlot, error) {
	if !domain.IsValidDayOfWeek(input.DayOfWeek) {
		return nil, domain.ErrInvalidDayOfWeek
	}
	// HH:MM strings compare correctly lexicographically.
	if input.StartTime >= input.EndTime {
		return nil, domain.ErrInvalidInterval
	}

	profile, err := r.ensureProfile(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	slot := domain.AvailabilitySlot{
		TutorProfileID: profile.ID,
		DayOfWeek:      input.DayOfWeek,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		IsActive:       input.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&slot).Error; err != nil {
		return nil, fmt.Errorf("failed to create availability slot: %w", err)
	}
	return &slot, nil
}

// ReplaceAvailability swaps the tutor's whole weekly schedule: delete all,
// insert the provided set, all inside one transaction.
func (r *tutorRepository) ReplaceAvailability(ctx context.Context, userUUID string, inputs []domain.AvailabilitySlotInput) ([]domain.AvailabilitySlot, error) {
	for _, in := range inputs {
		if !domain.IsValidDayOfWeek(in.DayOfWeek) {
			return nil, domain.ErrInvalidDayOfWeek
		}
		if in.StartTime >= in.EndTime {
			return nil, domain.ErrInvalidInterval
		}
	}

	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
		}
	}()

	profile, err := ensureProfileTx(tx, userUUID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("tutor_profile_id = ?", profile.ID).
		Delete(&domain.AvailabilitySlot{}).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear availability: %w", err)
	}

	slots := make([]domain.AvailabilitySlot, len(inputs))
	for i, in := range inputs {
		slots[i] = domain.AvailabilitySlot{
			TutorProfileID: profile.ID,
			DayOfWeek:      in.DayOfWeek,
			StartTime:      in.StartTime,
			EndTime:        in.EndTime,
			IsActive:       in.IsActive,
		}
	}
	if len(slots) > 0 {
		if err := tx.Create(&slots).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to insert availability: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}

	return r.GetAvailability(ctx, userUUID)
}

func (r *tutorRepository) DeleteAvailability(ctx context.Context, userUUID, slotID string) error {
	profile, err := r.ensureProfile(ctx, userUUID)
	if err != nil {
		return err
	}

	var slot domain.AvailabilitySlot
	err = r.db.WithContext(ctx).
		Where("id = ? AND tutor_profile_id = ?", slotID, profile.ID).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("failed to fetch availability slot: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&slot).Error; err != nil {
		return fmt.Errorf("failed to delete availability slot: %w", err)
	}
	return nil
}

// ensureProfile lazily creates the profile row for a tutor user that does
// not have one yet.
func (r *tutorRepository) ensureProfile(ctx context.Context, userUUID string) (*domain.TutorProfile, error) {
	return ensureProfileTx(r.db.WithContext(ctx), userUUID)
}

func ensureProfileTx(db *gorm.DB, userUUID string) (*domain.TutorProfile, error) {
	var profile domain.TutorProfile
	err := db.Where(domain.TutorProfile{UserUUID: userUUID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load tutor profile: %w", err)
	}
	return &profile, nil
}
