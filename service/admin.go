package service

import (
	"context"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type adminUseCase struct {
	repo domain.AdminRepository
}

func NewAdminUseCase(repo domain.AdminRepository) domain.AdminUseCase {
	return &adminUseCase{repo: repo}
}

func (s *adminUseCase) GetAllUsers(ctx context.Context, filter domain.AdminUserFilter) ([]domain.User, domain.Pagination, error) {
	return s.repo.GetAllUsers(ctx, filter)
}

func (s *adminUseCase) UpdateUserStatus(ctx context.Context, userUUID, status string) (*domain.User, error) {
	return s.repo.UpdateUserStatus(ctx, userUUID, status)
}

func (s *adminUseCase) GetAllBookings(ctx context.Context, filter domain.AdminBookingFilter) ([]domain.Booking, domain.Pagination, error) {
	return s.repo.GetAllBookings(ctx, filter)
}

func (s *adminUseCase) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	return s.repo.GetStats(ctx)
}
