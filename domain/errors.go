package domain

import "errors"

// Business-rule failures. Delivery maps each to an HTTP status; the message
// is what the client sees.
var (
	ErrTutorNotFound    = errors.New("tutor profile not found")
	ErrTutorInactive    = errors.New("tutor profile is not active")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrSlotNotFound     = errors.New("availability slot not found")

	ErrSelfBooking     = errors.New("you cannot book a session with yourself")
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrPastBooking     = errors.New("cannot book sessions in the past")
	ErrSlotConflict    = errors.New("this time slot is already booked, please choose a different time")

	ErrBookingAccessDenied  = errors.New("you don't have permission to view this booking")
	ErrBookingUpdateDenied  = errors.New("you don't have permission to update this booking")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrOnlyTutorCanComplete = errors.New("only tutors can mark bookings as completed")
	ErrNotConfirmed         = errors.New("only confirmed bookings can be marked as completed")
	ErrFutureCompletion     = errors.New("cannot mark future bookings as completed")
	ErrCancelCompleted      = errors.New("cannot cancel completed bookings")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrNoTransition         = errors.New("booking is already confirmed")

	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrNotYourBooking  = errors.New("you can only review your own bookings")
	ErrNotCompleted    = errors.New("you can only review completed bookings")
	ErrAlreadyReviewed = errors.New("you have already reviewed this booking")

	ErrCategoryNameTaken = errors.New("category with this name already exists")
	ErrCategorySlugTaken = errors.New("category with this slug already exists")
	ErrCategoryInUse     = errors.New("cannot delete category with active tutors, please reassign tutors first")
	ErrCategoryMissing   = errors.New("one or more categories not found")

	ErrInvalidDayOfWeek = errors.New("invalid day of week")
	ErrNegativeRate     = errors.New("hourly rate must be a positive number")
	ErrNegativeYears    = errors.New("experience must be a positive number")

	ErrNotAStudent       = errors.New("user is not a student")
	ErrNothingToUpdate   = errors.New("at least one field must be provided")
	ErrCannotModifyAdmin = errors.New("cannot modify admin user status")
	ErrInvalidUserStatus = errors.New("status must be ACTIVE or BANNED")

	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrAccountBanned      = errors.New("your account has been banned, please contact support")
	ErrEmailNotVerified   = errors.New("email verification required, please verify your email")
)
