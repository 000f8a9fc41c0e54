package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/dto"
	"github.com/md-abdullah-al-ahad/skillsync-backend/middleware"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

type BookingHandler struct {
	bookingUC domain.BookingUseCase
}

func NewBookingHandler(r *gin.Engine, bookingUC domain.BookingUseCase, authMW gin.HandlerFunc) {
	handler := &BookingHandler{bookingUC: bookingUC}

	bookings := r.Group("/api/bookings")
	bookings.Use(authMW)
	{
		bookings.POST("", middleware.StudentOnly(), handler.CreateBooking)
		bookings.GET("", handler.GetMyBookings)
		bookings.GET("/:id", handler.GetBookingByID)
		bookings.PATCH("/:id", handler.UpdateBookingStatus)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateBooking", err)
		return
	}

	booking, err := h.bookingUC.CreateBooking(c.Request.Context(), actor.UserUUID, dto.MapCreateBookingRequest(&req))
	if err != nil {
		respondError(c, "CreateBooking", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusCreated, "CreateBooking", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed",
		"data":    booking,
	})
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
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

func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	booking, err := h.bookingUC.GetBookingByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondError(c, "GetBookingByID", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "GetBookingByID", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    booking,
	})
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateBookingStatus", err)
		return
	}

	booking, err := h.bookingUC.UpdateBookingStatus(c.Request.Context(), c.Param("id"), actor, req.Status)
	if err != nil {
		respondError(c, "UpdateBookingStatus", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "UpdateBookingStatus", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated",
		"data":    booking,
	})
}
