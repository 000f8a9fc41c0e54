package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/dto"
	"github.com/md-abdullah-al-ahad/skillsync-backend/middleware"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

type TutorHandler struct {
	tutorUC domain.TutorUseCase
}

func NewTutorHandler(r *gin.Engine, tutorUC domain.TutorUseCase, authMW gin.HandlerFunc) {
	handler := &TutorHandler{tutorUC: tutorUC}

	public := r.Group("/api/tutors")
	{
		public.GET("", handler.GetAllTutors)
		public.GET("/:id", handler.GetTutorByID)
	}

	// Tutor-only routes live under the singular prefix so they never
	// collide with the public /api/tutors/:id wildcard.
	me := r.Group("/api/tutor")
	me.Use(authMW, middleware.TutorOnly())
	{
		me.GET("/profile/me", handler.GetMyProfile)
		me.PUT("/profile", handler.UpdateMyProfile)
		me.GET("/availability", handler.GetAvailability)
		me.POST("/availability", handler.AddAvailability)
		me.PUT("/availability", handler.ReplaceAvailability)
		me.DELETE("/availability/:slotId", handler.DeleteAvailability)
	}
}

func (h *TutorHandler) GetAllTutors(c *gin.Context) {
	page, limit := utils.ParsePagination(c, domain.DefaultPage, domain.DefaultLimit)
	filter := domain.TutorFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}
	if v, ok := parseFloatQuery(c, "min_price"); ok {
		filter.MinPrice = &v
	}
	if v, ok := parseFloatQuery(c, "max_price"); ok {
		filter.MaxPrice = &v
	}
	if v, ok := parseFloatQuery(c, "min_rating"); ok {
		filter.MinRating = &v
	}

	tutors, pagination, err := h.tutorUC.GetAllTutors(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "GetAllTutors", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "GetAllTutors", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       tutors,
		"pagination": pagination,
	})
}

func (h *TutorHandler) GetTutorByID(c *gin.Context) {
	tutor, err := h.tutorUC.GetTutorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetTutorByID", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "GetTutorByID", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tutor,
	})
}

func (h *TutorHandler) GetMyProfile(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	profile, stats, err := h.tutorUC.GetMyTutorProfile(c.Request.Context(), actor.UserUUID)
	if err != nil {
		respondError(c, "GetMyProfile", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "GetMyProfile", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
		"stats":   stats,
	})
}

func (h *TutorHandler) UpdateMyProfile(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateTutorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateMyProfile", err)
		return
	}

	profile, err := h.tutorUC.UpdateTutorProfile(c.Request.Context(), actor.UserUUID, dto.MapUpdateTutorProfileRequest(&req))
	if err != nil {
		respondError(c, "UpdateMyProfile", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "UpdateMyProfile", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated",
		"data":    profile,
	})
}

func (h *TutorHandler) GetAvailability(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	slots, err := h.tutorUC.GetAvailability(c.Request.Context(), actor.UserUUID)
	if err != nil {
		respondError(c, "GetAvailability", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "GetAvailability", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slots,
	})
}

func (h *TutorHandler) AddAvailability(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	var req dto.AvailabilitySlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "AddAvailability", err)
		return
	}

	slot, err := h.tutorUC.AddAvailability(c.Request.Context(), actor.UserUUID, dto.MapAvailabilitySlotRequest(&req))
	if err != nil {
		respondError(c, "AddAvailability", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusCreated, "AddAvailability", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Availability slot added",
		"data":    slot,
	})
}

func (h *TutorHandler) ReplaceAvailability(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	var req dto.ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "ReplaceAvailability", err)
		return
	}

	slots, err := h.tutorUC.ReplaceAvailability(c.Request.Context(), actor.UserUUID, dto.MapReplaceAvailabilityRequest(&req))
	if err != nil {
		respondError(c, "ReplaceAvailability", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "ReplaceAvailability", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Availability replaced",
		"data":    slots,
	})
}

func (h *TutorHandler) DeleteAvailability(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	if err := h.tutorUC.DeleteAvailability(c.Request.Context(), actor.UserUUID, c.Param("slotId")); err != nil {
		respondError(c, "DeleteAvailability", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "DeleteAvailability", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Availability slot deleted",
	})
}

func parseFloatQuery(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
