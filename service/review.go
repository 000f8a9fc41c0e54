package service

import (
	"context"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type reviewUseCase struct {
	repo domain.ReviewRepository
}

func NewReviewUseCase(repo domain.ReviewRepository) domain.ReviewUseCase {
	return &reviewUseCase{repo: repo}
}

func (s *reviewUseCase) CreateReview(ctx context.Context, studentUUID string, input domain.CreateReviewInput) (*domain.Review, error) {
	return s.repo.CreateReview(ctx, studentUUID, input)
}

func (s *reviewUseCase) GetTutorReviews(ctx context.Context, tutorProfileID string, filter domain.ReviewFilter) ([]domain.Review, domain.Pagination, error) {
	return s.repo.GetTutorReviews(ctx, tutorProfileID, filter)
}

func (s *reviewUseCase) GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.repo.GetReviewByID(ctx, reviewID)
}
