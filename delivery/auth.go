package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/dto"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase, authMW gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	public := r.Group("/api/auth")
	{
		public.POST("/register", handler.Register)
		public.POST("/verify-otp", handler.VerifyOTP)
		public.POST("/login", handler.Login)
		public.POST("/refresh", handler.Refresh)
	}

	protected := r.Group("/api/auth")
	protected.Use(authMW)
	{
		protected.GET("/me", handler.Me)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Register", err)
		return
	}

	if err := h.authUC.Register(c.Request.Context(), dto.MapRegisterRequest(&req)); err != nil {
		respondError(c, "Register", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "Register", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent to your email",
	})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "VerifyOTP", err)
		return
	}

	user, err := h.authUC.VerifyOTP(c.Request.Context(), strings.ToLower(req.Email), req.OTP)
	if err != nil {
		respondError(c, "VerifyOTP", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusCreated, "VerifyOTP", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"data":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Login", err)
		return
	}

	tokens, err := h.authUC.Login(c.Request.Context(), strings.ToLower(req.Email), req.Password)
	if err != nil {
		respondError(c, "Login", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Login successful",
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Refresh", err)
		return
	}

	tokens, err := h.authUC.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, "Refresh", err)
		return
	}

	caller := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&caller, http.StatusOK, "Refresh", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Token refreshed successfully",
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := mustGetActor(c)
	if !ok {
		return
	}

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), actor.UserUUID)
	if err != nil {
		respondError(c, "Me", err)
		return
	}

	utils.PrintLogInfo(&actor.UserUUID, http.StatusOK, "Me", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}
