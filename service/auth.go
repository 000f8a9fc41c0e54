package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

const otpTTL = 5 * time.Minute

type authService struct {
	userRepo     domain.UserRepository
	otpRepo      domain.OTPRepository
	accessToken  *utils.JWTManager
	refreshToken *utils.JWTManager
}

func NewAuthService(userRepo domain.UserRepository, otpRepo domain.OTPRepository, secret string) domain.AuthUseCase {
	return &authService{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		accessToken:  utils.NewJWTManager(secret, time.Hour),
		refreshToken: utils.NewJWTManager(secret, 7*24*time.Hour),
	}
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}

// Register stages the applicant in Redis and emails a 6-digit OTP. No
// database row is written until VerifyOTP succeeds.
func (s *authService) Register(ctx context.Context, input domain.RegisterInput) error {
	if _, err := s.userRepo.GetUserByEmail(ctx, input.Email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	otp, err := utils.GenerateOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	pending := domain.PendingUser{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     input.Role,
		Phone:    input.Phone,
	}
	if err := s.otpRepo.SavePendingUser(ctx, otp, pending, otpTTL); err != nil {
		return err
	}

	subject := "Your SkillSync verification code"
	body := fmt.Sprintf("Your OTP code is: %s (valid for 5 minutes)", otp)
	if err := utils.SendEmail(input.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, otp string) (*domain.User, error) {
	pending, valid, err := s.otpRepo.VerifyOTP(ctx, email, otp)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, domain.ErrInvalidOTP
	}

	user := domain.User{
		Name:          pending.Name,
		Email:         pending.Email,
		Password:      pending.Password,
		Role:          pending.Role,
		Phone:         pending.Phone,
		Status:        domain.UserActive,
		EmailVerified: true,
	}
	if err := s.userRepo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	_ = s.otpRepo.DeleteOTP(ctx, email)
	return &user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Status == domain.UserBanned {
		return nil, domain.ErrAccountBanned
	}
	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthTokens, error) {
	userUUID, _, err := s.refreshToken.VerifyToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status == domain.UserBanned {
		return nil, domain.ErrAccountBanned
	}

	return s.issueTokens(user)
}

func (s *authService) GetCurrentUser(ctx context.Context, userUUID string) (*domain.User, error) {
	return s.userRepo.GetUserByUUID(ctx, userUUID)
}

func (s *authService) issueTokens(user *domain.User) (*domain.AuthTokens, error) {
	access, err := s.accessToken.GenerateToken(user.UUID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.refreshToken.GenerateToken(user.UUID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &domain.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
