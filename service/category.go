package service

import (
	"context"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type categoryUseCase struct {
	repo domain.CategoryRepository
}

func NewCategoryUseCase(repo domain.CategoryRepository) domain.CategoryUseCase {
	return &categoryUseCase{repo: repo}
}

func (s *categoryUseCase) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.GetAllCategories(ctx)
}

func (s *categoryUseCase) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.repo.GetCategoryByID(ctx, categoryID)
}

func (s *categoryUseCase) CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error) {
	return s.repo.CreateCategory(ctx, name, slug)
}

func (s *categoryUseCase) UpdateCategory(ctx context.Context, categoryID string, name, slug *string) (*domain.Category, error) {
	return s.repo.UpdateCategory(ctx, categoryID, name, slug)
}

func (s *categoryUseCase) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.repo.DeleteCategory(ctx, categoryID)
}
