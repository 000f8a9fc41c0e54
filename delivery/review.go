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

type ReviewHandler struct {
	reviewUC domain.ReviewUseCase
}

func NewReviewHandler(r *gin.Engine, reviewUC domain.ReviewUseCase, authMW gin.HandlerFunc) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	public := r.Group("/api/reviews")
	{
		public.GET("/tutor/:tutorProfileId", handler.GetTutorReviews)
		public.GET("/:id", handler.GetReviewByID)
	}

	protected := r.Group("/api/reviews")
	protected.Use(authMW)
	{
		protected.POST("", middleware.StudentOnly(), handler.CreateReview)
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateReview", err)
		return
	}

	review, err := h.reviewUC.CreateReview(c.Request.Context(), actor.UserUUID, dto.MapCreateReviewRequest(&req))
	if err != nil {
		respondError(c, "CreateReview", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusCreated, "CreateReview", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Review submitted",
		"data":    review,
	})
}

func (h *ReviewHandler) GetTutorReviews(c *gin.Context) {
	page, limit := utils.ParsePagination(c, domain.DefaultPage, domain.DefaultLimit)
	filter := domain.ReviewFilter{Page: page, Limit: limit}
	if raw := c.Query("min_rating"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MinRating = v
		}
	}

	reviews, pagination, err := h.reviewUC.GetTutorReviews(c.Request.Context(), c.Param("tutorProfileId"), filter)
	if err != nil {
		respondError(c, "GetTutorReviews", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "GetTutorReviews", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       reviews,
		"pagination": pagination,
	})
}

func (h *ReviewHandler) GetReviewByID(c *gin.Context) {
	review, err := h.reviewUC.GetReviewByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetReviewByID", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "GetReviewByID", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    review,
	})
}
