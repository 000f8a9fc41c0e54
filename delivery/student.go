package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/dto"
	"github.com/md-abdullah-al-ahad/skillsync-backend/middleware"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

type StudentHandler struct {
	studentUC domain.StudentUseCase
	bookingUC domain.BookingUseCase
}

func NewStudentHandler(r *gin.Engine, studentUC domain.StudentUseCase, bookingUC domain.BookingUseCase, authMW gin.HandlerFunc) {
	handler := &StudentHandler{studentUC: studentUC, bookingUC: bookingUC}

	students := r.Group("/api/students")
	students.Use(authMW, middleware.StudentOnly())
	{
		students.GET("/profile", handler.GetMyProfile)
		students.PUT("/profile", handler.UpdateMyProfile)
		students.GET("/bookings", handler.GetMyBookings)
	}
}

func (h *StudentHandler) GetMyProfile(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	user, stats, err := h.studentUC.GetStudentProfile(c.Request.Context(), actor.UserUUID)
	if err != nil {
		respondError(c, "GetMyProfile", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "GetMyProfile", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
		"stats":   stats,
	})
}

func (h *StudentHandler) UpdateMyProfile(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateMyProfile", err)
		return
	}
	if req.Name == nil && req.Phone == nil {
		respondError(c, "UpdateMyProfile", domain.ErrNothingToUpdate)
		return
	}

	user, err := h.studentUC.UpdateStudentProfile(c.Request.Context(), actor.UserUUID, dto.MapUpdateStudentProfileRequest(&req))
	if err != nil {
		respondError(c, "UpdateMyProfile", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "UpdateMyProfile", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated",
		"data":    user,
	})
}

func (h *StudentHandler) GetMyBookings(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	page, limit := utils.ParsePagination(c, domain.DefaultPage, domain.DefaultLimit)
	filter := domain.BookingFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	bookings, pagination, err := h.bookingUC.GetUserBookings(c.Request.Context(), actor.UserUUID, actor.Role, filter)
	if err != nil {
		respondError(c, "GetMyBookings", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "GetMyBookings", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       bookings,
		"pagination": pagination,
	})
}
