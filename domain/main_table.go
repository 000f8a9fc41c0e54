package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
	RoleTutor   = "TUTOR"

	UserActive = "ACTIVE"
	UserBanned = "BANNED"

	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"

	RatingMin = 1
	RatingMax = 5

	DefaultPage  = 1
	DefaultLimit = 10
)

// Weekdays accepted for availability slots.
var ValidDaysOfWeek = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

type User struct {
	UUID          string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"uuid"`
	Name          string  `gorm:"not null;size:50" json:"name"`
	Email         string  `gorm:"unique;not null" json:"email"`
	Phone         *string `gorm:"size:14" json:"phone,omitempty"`
	Password      string  `gorm:"not null" json:"-"`
	Role          string  `gorm:"not null" json:"role"`                    // STUDENT | TUTOR | ADMIN
	Status        string  `gorm:"not null;default:'ACTIVE'" json:"status"` // ACTIVE | BANNED
	EmailVerified bool    `gorm:"not null;default:false" json:"email_verified"`
	Image         *string `gorm:"type:text" json:"image,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`

	TutorProfile *TutorProfile `gorm:"foreignKey:UserUUID" json:"tutor_profile,omitempty"`
}

type TutorProfile struct {
	ID          string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserUUID    string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_uuid"`
	Bio         string  `gorm:"type:text" json:"bio"`
	HourlyRate  float64 `gorm:"not null;default:0" json:"hourly_rate"`
	Experience  int     `gorm:"not null;default:0" json:"experience"` // years
	RatingAvg   float64 `gorm:"not null;default:0" json:"rating_avg"`
	RatingCount int     `gorm:"not null;default:0" json:"rating_count"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User         *User              `gorm:"foreignKey:UserUUID;references:UUID" json:"user,omitempty"`
	Categories   []Category         `gorm:"many2many:tutor_categories;constraint:OnDelete:CASCADE;" json:"categories,omitempty"`
	Availability []AvailabilitySlot `gorm:"foreignKey:TutorProfileID;constraint:OnDelete:CASCADE;" json:"availability,omitempty"`
	Reviews      []Review           `gorm:"foreignKey:TutorProfileID" json:"reviews,omitempty"`
}

type Category struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"unique;size:50;not null" json:"name"`
	Slug      string    `gorm:"unique;size:60;not null" json:"slug"` // lowercase-hyphen
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	TutorCount int64 `gorm:"-" json:"tutor_count"`
}

type AvailabilitySlot struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TutorProfileID string `gorm:"type:uuid;not null;index" json:"tutor_profile_id"`
	DayOfWeek      string `gorm:"size:3;not null" json:"day_of_week"` // MON..SUN
	StartTime      string `gorm:"size:5;not null" json:"start_time"`  // HH:MM
	EndTime        string `gorm:"size:5;not null" json:"end_time"`    // HH:MM
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Booking struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	StudentUUID    string    `gorm:"type:uuid;not null;index" json:"student_uuid"`
	TutorProfileID string    `gorm:"type:uuid;not null;index" json:"tutor_profile_id"`
	StartTime      time.Time `gorm:"not null" json:"start_time"`
	EndTime        time.Time `gorm:"not null" json:"end_time"`
	Price          float64   `gorm:"not null" json:"price"`
	Status         string    `gorm:"size:20;not null;default:'CONFIRMED'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Student      *User         `gorm:"foreignKey:StudentUUID;references:UUID" json:"student,omitempty"`
	TutorProfile *TutorProfile `gorm:"foreignKey:TutorProfileID" json:"tutor_profile,omitempty"`
	Review       *Review       `gorm:"foreignKey:BookingID" json:"review,omitempty"`
}

type Review struct {
	ID             string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	BookingID      string  `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"` // one review per booking
	StudentUUID    string  `gorm:"type:uuid;not null;index" json:"student_uuid"`
	TutorProfileID string  `gorm:"type:uuid;not null;index" json:"tutor_profile_id"`
	Rating         int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment        *string `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Student      *User         `gorm:"foreignKey:StudentUUID;references:UUID" json:"student,omitempty"`
	TutorProfile *TutorProfile `gorm:"foreignKey:TutorProfileID" json:"-"`
	Booking      *Booking      `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

// BeforeCreate hooks generate IDs client-side so rows created inside a
// transaction can be referenced before the insert round-trips.

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == "" {
		u.UUID = uuid.NewString()
	}
	return nil
}

func (p *TutorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (s *AvailabilitySlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func IsValidDayOfWeek(day string) bool {
	for _, d := range ValidDaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// Pagination is the envelope every list endpoint returns.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
