package domain

import "context"

type TutorFilter struct {
	Category  string // category slug
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Page      int
	Limit     int
}

// TutorStats is the dashboard block on the tutor's own profile.
type TutorStats struct {
	UpcomingSessions  int64   `json:"upcoming_sessions"`
	CompletedSessions int64   `json:"completed_sessions"`
	TotalEarnings     float64 `json:"total_earnings"`
}

type UpdateTutorProfileInput struct {
	Bio         *string
	HourlyRate  *float64
	Experience  *int
	CategoryIDs []string
}

type AvailabilitySlotInput struct {
	DayOfWeek string
	StartTime string
	EndTime   string
	IsActive  bool
}

type TutorUseCase interface {
	GetAllTutors(ctx context.Context, filter TutorFilter) ([]TutorProfile, Pagination, error)
	GetTutorByID(ctx context.Context, tutorProfileID string) (*TutorProfile, error)
	GetMyTutorProfile(ctx context.Context, userUUID string) (*TutorProfile, *TutorStats, error)
	UpdateTutorProfile(ctx context.Context, userUUID string, input UpdateTutorProfileInput) (*TutorProfile, error)
	GetAvailability(ctx context.Context, userUUID string) ([]AvailabilitySlot, error)
	AddAvailability(ctx context.Context, userUUID string, slot AvailabilitySlotInput) (*AvailabilitySlot, error)
	ReplaceAvailability(ctx context.Context, userUUID string, slots []AvailabilitySlotInput) ([]AvailabilitySlot, error)
	DeleteAvailability(ctx context.Context, userUUID, slotID string) error
}

type TutorRepository interface {
	GetAllTutors(ctx context.Context, filter TutorFilter) ([]TutorProfile, Pagination, error)
	GetTutorByID(ctx context.Context, tutorProfileID string) (*TutorProfile, error)
	GetMyTutorProfile(ctx context.Context, userUUID string) (*TutorProfile, *TutorStats, error)
	UpdateTutorProfile(ctx context.Context, userUUID string, input UpdateTutorProfileInput) (*TutorProfile, error)
	GetAvailability(ctx context.Context, userUUID string) ([]AvailabilitySlot, error)
	AddAvailability(ctx context.Context, userUUID string, slot AvailabilitySlotInput) (*AvailabilitySlot, error)
	ReplaceAvailability(ctx context.Context, userUUID string, slots []AvailabilitySlotInput) ([]AvailabilitySlot, error)
	DeleteAvailability(ctx context.Context, userUUID, slotID string) error
}
