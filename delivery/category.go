package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/dto"
	"github.com/md-abdullah-al-ahad/skillsync-backend/middleware"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

type CategoryHandler struct {
	categoryUC domain.CategoryUseCase
}

func NewCategoryHandler(r *gin.Engine, categoryUC domain.CategoryUseCase, authMW gin.HandlerFunc) {
	handler := &CategoryHandler{categoryUC: categoryUC}

	public := r.Group("/api/categories")
	{
		public.GET("", handler.GetAllCategories)
		public.GET("/:id", handler.GetCategoryByID)
	}

	admin := r.Group("/api/categories")
	admin.Use(authMW, middleware.AdminOnly())
	{
		admin.POST("", handler.CreateCategory)
		admin.PUT("/:id", handler.UpdateCategory)
		admin.DELETE("/:id", handler.DeleteCategory)
	}
}

func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.categoryUC.GetAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllCategories", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "GetAllCategories", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	category, err := h.categoryUC.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetCategoryByID", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "GetCategoryByID", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    category,
	})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateCategory", err)
		return
	}

	category, err := h.categoryUC.CreateCategory(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		respondError(c, "CreateCategory", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusCreated, "CreateCategory", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Category created",
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateCategory", err)
		return
	}

	category, err := h.categoryUC.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name, req.Slug)
	if err != nil {
		respondError(c, "UpdateCategory", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "UpdateCategory", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category updated",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUC.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeleteCategory", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "DeleteCategory", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted",
	})
}
