package dto

import (
	"strings"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=64"`
	Role     string  `json:"role" binding:"required,oneof=STUDENT TUTOR"`
	Phone    *string `json:"phone" binding:"omitempty,numeric,min=9,max=14"`
}

func MapRegisterRequest(req *RegisterRequest) domain.RegisterInput {
	return domain.RegisterInput{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	}
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
