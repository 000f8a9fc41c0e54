package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

// statusForError maps business-rule failures to HTTP statuses. Anything
// unrecognised is a 500 and gets a generic message so internals never leak.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrTutorNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrTutorInactive):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrSelfBooking),
		errors.Is(err, domain.ErrBookingAccessDenied),
		errors.Is(err, domain.ErrBookingUpdateDenied),
		errors.Is(err, domain.ErrOnlyTutorCanComplete),
		errors.Is(err, domain.ErrNotYourBooking),
		errors.Is(err, domain.ErrCannotModifyAdmin),
		errors.Is(err, domain.ErrAccountBanned),
		errors.Is(err, domain.ErrEmailNotVerified):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrSlotConflict),
		errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrCategoryNameTaken),
		errors.Is(err, domain.ErrCategorySlugTaken),
		errors.Is(err, domain.ErrCategoryInUse),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidOTP):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrPastBooking),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrNotConfirmed),
		errors.Is(err, domain.ErrFutureCompletion),
		errors.Is(err, domain.ErrCancelCompleted),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrNoTransition),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrNotCompleted),
		errors.Is(err, domain.ErrCategoryMissing),
		errors.Is(err, domain.ErrInvalidDayOfWeek),
		errors.Is(err, domain.ErrNegativeRate),
		errors.Is(err, domain.ErrNegativeYears),
		errors.Is(err, domain.ErrNotAStudent),
		errors.Is(err, domain.ErrNothingToUpdate),
		errors.Is(err, domain.ErrInvalidUserStatus):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the failure envelope and the log line for a handler.
func respondError(c *gin.Context, funcName string, err error) {
	caller := utils.GetAPIHitter(c)
	code := statusForError(err)
	utils.PrintLogInfo(&caller, code, funcName, &err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "something went wrong, please try again later"
	}
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}

func respondBindError(c *gin.Context, funcName string, err error) {
	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusBadRequest, funcName, &err)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request",
		"error":   utils.TranslateValidationError(err),
	})
}

// mustGetActor pulls the authenticated identity out of the gin context. The
// auth middleware always sets both keys, so a miss means a wiring bug.
func mustGetActor(c *gin.Context) (domain.Actor, bool) {
	uuidVal, existsUUID := c.Get("userUUID")
	roleVal, existsRole := c.Get("role")
	if !existsUUID || !existsRole {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "missing user context",
		})
		return domain.Actor{}, false
	}
	uuid, _ := uuidVal.(string)
	role, _ := roleVal.(string)
	return domain.Actor{UserUUID: uuid, Role: role}, true
}
