package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/dto"
	"github.com/md-abdullah-al-ahad/skillsync-backend/middleware"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

type AdminHandler struct {
	adminUC domain.AdminUseCase
}

func NewAdminHandler(r *gin.Engine, adminUC domain.AdminUseCase, authMW gin.HandlerFunc) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := r.Group("/api/admin")
	admin.Use(authMW, middleware.AdminOnly())
	{
		admin.GET("/users", handler.GetAllUsers)
		admin.PATCH("/users/:id", handler.UpdateUserStatus)
		admin.GET("/bookings", handler.GetAllBookings)
		admin.GET("/stats", handler.GetStats)
	}
}

func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	page, limit := utils.ParsePagination(c, domain.DefaultPage, domain.DefaultLimit)
	filter := domain.AdminUserFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	users, pagination, err := h.adminUC.GetAllUsers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "GetAllUsers", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "GetAllUsers", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       users,
		"pagination": pagination,
	})
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateUserStatus", err)
		return
	}

	user, err := h.adminUC.UpdateUserStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, "UpdateUserStatus", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "UpdateUserStatus", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User status updated",
		"data":    user,
	})
}

func (h *AdminHandler) GetAllBookings(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	page, limit := utils.ParsePagination(c, domain.DefaultPage, domain.DefaultLimit)
	filter := domain.AdminBookingFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	bookings, pagination, err := h.adminUC.GetAllBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "GetAllBookings", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "GetAllBookings", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       bookings,
		"pagination": pagination,
	})
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, "GetStats", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "GetStats", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
