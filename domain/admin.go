package domain

import "context"

type AdminUserFilter struct {
	Role   string
	Status string
	Search string
	Page   int
	Limit  int
}

type AdminBookingFilter struct {
	Status string
	Page   int
	Limit  int
}

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	Users struct {
		Total    int64 `json:"total"`
		Students int64 `json:"students"`
		Tutors   int64 `json:"tutors"`
	} `json:"users"`
	Bookings struct {
		Total     int64 `json:"total"`
		Completed int64 `json:"completed"`
	} `json:"bookings"`
	Revenue     float64 `json:"revenue"`
	RecentUsers []User  `json:"recent_users"`
}

type AdminUseCase interface {
	GetAllUsers(ctx context.Context, filter AdminUserFilter) ([]User, Pagination, error)
	UpdateUserStatus(ctx context.Context, userUUID, status string) (*User, error)
	GetAllBookings(ctx context.Context, filter AdminBookingFilter) ([]Booking, Pagination, error)
	GetStats(ctx context.Context) (*PlatformStats, error)
}

type AdminRepository interface {
	GetAllUsers(ctx context.Context, filter AdminUserFilter) ([]User, Pagination, error)
	UpdateUserStatus(ctx context.Context, userUUID, status string) (*User, error)
	GetAllBookings(ctx context.Context, filter AdminBookingFilter) ([]Booking, Pagination, error)
	GetStats(ctx context.Context) (*PlatformStats, error)
}
