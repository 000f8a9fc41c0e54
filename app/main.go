package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/md-abdullah-al-ahad/skillsync-backend/config"
	"github.com/md-abdullah-al-ahad/skillsync-backend/delivery"
	"github.com/md-abdullah-al-ahad/skillsync-backend/middleware"
	"github.com/md-abdullah-al-ahad/skillsync-backend/repository"
	"github.com/md-abdullah-al-ahad/skillsync-backend/service"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	db, err := config.BootDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		log.Fatal().Msg("REDIS_ADDR not set in env")
	}
	redisClient, err := config.InitRedisDB(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal().Msg("JWT_SECRET not set in env")
	}
	if len(jwtSecret) < 32 {
		log.Fatal().Msg("JWT_SECRET must be at least 32 characters. Generate one with: openssl rand -base64 32")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRedisRepository(redisClient)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	tutorRepo := repository.NewTutorRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, otpRepo, jwtSecret)
	bookingService := service.NewBookingUseCase(bookingRepo)
	reviewService := service.NewReviewUseCase(reviewRepo)
	tutorService := service.NewTutorUseCase(tutorRepo)
	categoryService := service.NewCategoryUseCase(categoryRepo)
	studentService := service.NewStudentUseCase(studentRepo)
	adminService := service.NewAdminUseCase(adminRepo)

	middleware.InitRateLimiter(redisClient)

	app := gin.New()
	config.InitMiddleware(app)
	app.Use(middleware.RateLimiter())

	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := config.AuthMiddleware(authService.GetAccessTokenManager(), userRepo)

	delivery.NewAuthHandler(app, authService, authMW)
	delivery.NewBookingHandler(app, bookingService, authMW)
	delivery.NewReviewHandler(app, reviewService, authMW)
	delivery.NewTutorHandler(app, tutorService, authMW)
	delivery.NewCategoryHandler(app, categoryService, authMW)
	delivery.NewStudentHandler(app, studentService, bookingService, authMW)
	delivery.NewAdminHandler(app, adminService, authMW)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
