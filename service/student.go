package service

import (
	"context"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type studentUseCase struct {
	repo domain.StudentRepository
}

func NewStudentUseCase(repo domain.StudentRepository) domain.StudentUseCase {
	return &studentUseCase{repo: repo}
}

func (s *studentUseCase) GetStudentProfile(ctx context.Context, userUUID string) (*domain.User, *domain.StudentStats, error) {
	return s.repo.GetStudentProfile(ctx, userUUID)
}

func (s *studentUseCase) UpdateStudentProfile(ctx context.Context, userUUID string, input domain.UpdateStudentProfileInput) (*domain.User, error) {
	return s.repo.UpdateStudentProfile(ctx, userUUID, input)
}
