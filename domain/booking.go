package domain

import (
	"context"
	"time"
)

// Actor is the authenticated caller of a booking operation, as resolved by
// the auth gate.
type Actor struct {
	UserUUID string
	Role     string
}

type CreateBookingInput struct {
	TutorProfileID string
	StartTime      time.Time
	EndTime        time.Time
	Price          float64
}

type BookingFilter struct {
	Status string
	Page   int
	Limit  int
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, studentUUID string, input CreateBookingInput) (*Booking, error)
	GetUserBookings(ctx context.Context, userUUID, role string, filter BookingFilter) ([]Booking, Pagination, error)
	GetBookingByID(ctx context.Context, bookingID string, actor Actor) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, actor Actor, target string) (*Booking, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, studentUUID string, input CreateBookingInput) (*Booking, error)
	GetUserBookings(ctx context.Context, userUUID, role string, filter BookingFilter) ([]Booking, Pagination, error)
	GetBookingByID(ctx context.Context, bookingID string, actor Actor) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, actor Actor, target string) (*Booking, error)
}

// IntervalsOverlap reports whether [aStart, aEnd) and [bStart, bEnd)
// intersect. Touching endpoints (back-to-back sessions) do not overlap.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Transition identifies one edge of the booking status state machine.
type Transition struct {
	From string
	To   string
}

// TransitionRule names who may drive an edge and the extra guard that must
// hold. Edges absent from BookingTransitions are rejected outright.
type TransitionRule struct {
	StudentOwner bool
	TutorOwner   bool
	Admin        bool
	DeniedErr    error
	Guard        func(b *Booking, now time.Time) error
}

var BookingTransitions = map[Transition]TransitionRule{
	{StatusConfirmed, StatusCompleted}: {
		TutorOwner: true,
		Admin:      true,
		DeniedErr:  ErrOnlyTutorCanComplete,
		Guard: func(b *Booking, now time.Time) error {
			if b.EndTime.After(now) {
				return ErrFutureCompletion
			}
			return nil
		},
	},
	{StatusConfirmed, StatusCancelled}: {
		StudentOwner: true,
		TutorOwner:   true,
		Admin:        true,
		DeniedErr:    ErrBookingUpdateDenied,
	},
}

// CanTransition decides whether actor may move the booking to target at
// time now. tutorUserUUID is the user that owns the booking's tutor
// profile. A nil return means the transition is allowed.
func CanTransition(b *Booking, tutorUserUUID string, actor Actor, target string, now time.Time) error {
	if !IsValidBookingStatus(target) {
		return ErrInvalidStatus
	}

	isStudent := actor.UserUUID == b.StudentUUID
	isTutor := actor.UserUUID == tutorUserUUID
	isAdmin := actor.Role == RoleAdmin

	if !isStudent && !isTutor && !isAdmin {
		return ErrBookingUpdateDenied
	}

	rule, ok := BookingTransitions[Transition{From: b.Status, To: target}]
	if !ok {
		return rejectedTransition(b.Status, target)
	}

	allowed := (rule.StudentOwner && isStudent) ||
		(rule.TutorOwner && isTutor) ||
		(rule.Admin && isAdmin)
	if !allowed {
		return rule.DeniedErr
	}

	if rule.Guard != nil {
		return rule.Guard(b, now)
	}
	return nil
}

// rejectedTransition picks the message for an edge with no rule. COMPLETED
// and CANCELLED are terminal; re-confirming is not modelled.
func rejectedTransition(from, to string) error {
	switch {
	case to == StatusCompleted:
		return ErrNotConfirmed
	case from == StatusCompleted:
		return ErrCancelCompleted
	case from == StatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrNoTransition
	}
}

// CanAccessBooking is the read-path authorization predicate: the booking's
// student, the owning tutor, and admins may see it.
func CanAccessBooking(b *Booking, tutorUserUUID string, actor Actor) bool {
	return actor.UserUUID == b.StudentUUID ||
		actor.UserUUID == tutorUserUUID ||
		actor.Role == RoleAdmin
}
