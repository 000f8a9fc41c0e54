package domain

import (
	"context"
	"time"

	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // STUDENT | TUTOR
	Phone    *string
}

// PendingUser is a registration staged in Redis until its OTP is verified.
type PendingUser struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"` // bcrypt hash
	Role     string  `json:"role"`
	Phone    *string `json:"phone,omitempty"`
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUseCase interface {
	GetAccessTokenManager() *utils.JWTManager
	Register(ctx context.Context, input RegisterInput) error
	VerifyOTP(ctx context.Context, email, otp string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
	GetCurrentUser(ctx context.Context, userUUID string) (*User, error)
}

type UserRepository interface {
	// CreateUser also creates the TutorProfile when the role is TUTOR.
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUUID(ctx context.Context, uuid string) (*User, error)
}

type OTPRepository interface {
	SavePendingUser(ctx context.Context, otp string, pending PendingUser, ttl time.Duration) error
	VerifyOTP(ctx context.Context, email, otp string) (*PendingUser, bool, error)
	DeleteOTP(ctx context.Context, email string) error
}
