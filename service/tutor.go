package service

import (
	"context"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type tutorUseCase struct {
	repo domain.TutorRepository
}

func NewTutorUseCase(repo domain.TutorRepository) domain.TutorUseCase {
	return &tutorUseCase{repo: repo}
}

func (s *tutorUseCase) GetAllTutors(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorProfile, domain.Pagination, error) {
	return s.repo.GetAllTutors(ctx, filter)
}

func (s *tutorUseCase) GetTutorByID(ctx context.Context, tutorProfileID string) (*domain.TutorProfile, error) {
	return s.repo.GetTutorByID(ctx, tutorProfileID)
}

func (s *tutorUseCase) GetMyTutorProfile(ctx context.Context, userUUID string) (*domain.TutorProfile, *domain.TutorStats, error) {
	return s.repo.GetMyTutorProfile(ctx, userUUID)
}

func (s *tutorUseCase) UpdateTutorProfile(ctx context.Context, userUUID string, input domain.UpdateTutorProfileInput) (*domain.TutorProfile, error) {
	return s.repo.UpdateTutorProfile(ctx, userUUID, input)
}

func (s *tutorUseCase) GetAvailability(ctx context.Context, userUUID string) ([]domain.AvailabilitySlot, error) {
	return s.repo.GetAvailability(ctx, userUUID)
}

func (s *tutorUseCase) AddAvailability(ctx context.Context, userUUID string, slot domain.AvailabilitySlotInput) (*domain.AvailabilitySlot, error) {
	return s.repo.AddAvailability(ctx, userUUID, slot)
}

func (s *tutorUseCase) ReplaceAvailability(ctx context.Context, userUUID string, slots []domain.AvailabilitySlotInput) ([]domain.AvailabilitySlot, error) {
	return s.repo.ReplaceAvailability(ctx, userUUID, slots)
}

func (s *tutorUseCase) DeleteAvailability(ctx context.Context, userUUID, slotID string) error {
	return s.repo.DeleteAvailability(ctx, userUUID, slotID)
}
