package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	for i := range categories {
		count, err := r.tutorCount(ctx, categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].TutorCount = count
	}
	return categories, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).Where("id = ?", categoryID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	count, err := r.tutorCount(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	category.TutorCount = count
	return &category, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error) {
	if err := r.checkConflicts(ctx, "", name, slug); err != nil {
		return nil, err
	}

	category := domain.Category{Name: name, Slug: slug}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, categoryID string, name, slug *string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).Where("id = ?", categoryID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	newName := category.Name
	newSlug := category.Slug
	if name != nil {
		newName = *name
	}
	if slug != nil {
		newSlug = *slug
	}
	if err := r.checkConflicts(ctx, categoryID, newName, newSlug); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"name": newName, "slug": newSlug}
	if err := r.db.WithContext(ctx).Model(&category).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

// DeleteCategory refuses to delete while tutors still reference the
// category.
func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	var category domain.Category
	err := r.db.WithContext(ctx).Where("id = ?", categoryID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to fetch category: %w", err)
	}

	count, err := r.tutorCount(ctx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}

	if err := r.db.WithContext(ctx).Delete(&category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// checkConflicts enforces name/slug uniqueness before the write so the
// caller gets a specific message instead of a raw constraint violation.
func (r *categoryRepository) checkConflicts(ctx context.Context, excludeID, name, slug string) error {
	query := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("name = ? OR slug = ?", name, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var existing []domain.Category
	if err := query.Find(&existing).Error; err != nil {
		return fmt.Errorf("failed to check category uniqueness: %w", err)
	}
	for _, c := range existing {
		if c.Name == name {
			return domain.ErrCategoryNameTaken
		}
		if c.Slug == slug {
			return domain.ErrCategorySlugTaken
		}
	}
	return nil
}

func (r *categoryRepository) tutorCount(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("tutor_categories").
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count category tutors: %w", err)
	}
	return count, nil
}
