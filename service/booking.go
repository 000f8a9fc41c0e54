package service

import (
	"context"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type bookingUseCase struct {
	repo domain.BookingRepository
}

func NewBookingUseCase(repo domain.BookingRepository) domain.BookingUseCase {
	return &bookingUseCase{repo: repo}
}

func (s *bookingUseCase) CreateBooking(ctx context.Context, studentUUID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	return s.repo.CreateBooking(ctx, studentUUID, input)
}

func (s *bookingUseCase) GetUserBookings(ctx context.Context, userUUID, role string, filter domain.BookingFilter) ([]domain.Booking, domain.Pagination, error) {
	return s.repo.GetUserBookings(ctx, userUUID, role, filter)
}

func (s *bookingUseCase) GetBookingByID(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	return s.repo.GetBookingByID(ctx, bookingID, actor)
}

func (s *bookingUseCase) UpdateBookingStatus(ctx context.Context, bookingID string, actor domain.Actor, target string) (*domain.Booking, error) {
	return s.repo.UpdateBookingStatus(ctx, bookingID, actor, target)
}
