package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// TranslateDBError turns driver errors into messages safe to show clients.
func TranslateDBError(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			msg := "Duplicate value, please use another"
			if strings.Contains(pgErr.Message, "users_email_key") {
				msg = "Email already exists"
			} else if strings.Contains(pgErr.Message, "categories_name_key") {
				msg = "Category name already exists"
			} else if strings.Contains(pgErr.Message, "categories_slug_key") {
				msg = "Category slug already exists"
			} else if strings.Contains(pgErr.Message, "idx_reviews_booking_id") {
				msg = "You have already reviewed this booking"
			}
			return msg
		case "23503":
			return "This record is referenced by another table"
		case "23502":
			return "Some required fields are missing"
		case "23514":
			return "A field is outside its allowed range"
		case "22P02":
			return "Invalid data format"
		}
		return "A database error occurred"
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Record not found"
	}

	lowerErr := strings.ToLower(err.Error())
	if strings.Contains(lowerErr, "context deadline exceeded") {
		return "Request timeout"
	}
	if strings.Contains(lowerErr, "context canceled") {
		return "Request was cancelled"
	}

	return err.Error()
}
