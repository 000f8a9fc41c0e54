package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GenerateOTP returns a random numeric code of the given length.
func GenerateOTP(length int) (string, error) {
	const digits = "0123456789"
	otp := make([]byte, length)
	for i := range otp {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		otp[i] = digits[n.Int64()]
	}
	return string(otp), nil
}

// GetAPIHitter identifies the caller for log lines: the authenticated user
// UUID when present, otherwise the client IP.
func GetAPIHitter(c *gin.Context) string {
	if uuid, exists := c.Get("userUUID"); exists {
		if s, ok := uuid.(string); ok {
			return s
		}
	}
	return c.ClientIP()
}

// ParsePagination reads page/limit query params with the 1-based defaults.
func ParsePagination(c *gin.Context, defaultPage, defaultLimit int) (int, int) {
	page := defaultPage
	limit := defaultLimit
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	return page, limit
}
