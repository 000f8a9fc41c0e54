package domain

import "context"

type CategoryUseCase interface {
	GetAllCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*Category, error)
	CreateCategory(ctx context.Context, name, slug string) (*Category, error)
	UpdateCategory(ctx context.Context, categoryID string, name, slug *string) (*Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*Category, error)
	CreateCategory(ctx context.Context, name, slug string) (*Category, error)
	UpdateCategory(ctx context.Context, categoryID string, name, slug *string) (*Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
