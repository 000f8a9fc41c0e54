package domain

import "context"

// StudentStats summarizes the student's booking history for the profile
// endpoint.
type StudentStats struct {
	TotalBookings     int64 `json:"total_bookings"`
	UpcomingBookings  int64 `json:"upcoming_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
}

type UpdateStudentProfileInput struct {
	Name  *string
	Phone *string
}

type StudentUseCase interface {
	GetStudentProfile(ctx context.Context, userUUID string) (*User, *StudentStats, error)
	UpdateStudentProfile(ctx context.Context, userUUID string, input UpdateStudentProfileInput) (*User, error)
}

type StudentRepository interface {
	GetStudentProfile(ctx context.Context, userUUID string) (*User, *StudentStats, error)
	UpdateStudentProfile(ctx context.Context, userUUID string, input UpdateStudentProfileInput) (*User, error)
}
