package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

func GetDatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSLMODE"),
	)
}

func BootDB() (*gorm.DB, error) {
	address := GetDatabaseURL()

	var gormLogger logger.Interface
	if os.Getenv("APP_ENV") == "development" {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(address), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.TutorProfile{},
		&domain.Category{},
		&domain.AvailabilitySlot{},
		&domain.Booking{},
		&domain.Review{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database schemas: %w", err)
	}

	if err := seedAdminUser(db); err != nil {
		return nil, err
	}

	log.Info().Msg("connected to database")
	return db, nil
}

// seedAdminUser creates the initial admin account from env. Admin accounts
// cannot be registered through the API.
func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	adminName := os.Getenv("ADMIN_NAME")
	if adminEmail == "" || adminPass == "" {
		log.Warn().Msg("skipping admin seeding, missing ADMIN_EMAIL or ADMIN_PASSWORD in env")
		return nil
	}
	if adminName == "" {
		adminName = "Administrator"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := domain.User{
		Name:          adminName,
		Email:         adminEmail,
		Password:      string(hashed),
		Role:          domain.RoleAdmin,
		Status:        domain.UserActive,
		EmailVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Info().Str("email", adminEmail).Msg("seeded admin user")
	return nil
}
