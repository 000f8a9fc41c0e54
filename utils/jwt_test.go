package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-characters-long"

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager(testSecret, time.Hour)

	token, err := manager.GenerateToken("user-123", "STUDENT")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uuid, role, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uuid)
	assert.Equal(t, "STUDENT", role)
}

func TestJWTWrongSecret(t *testing.T) {
	manager := NewJWTManager(testSecret, time.Hour)
	other := NewJWTManager("another-secret-also-32-characters-xx", time.Hour)

	token, err := manager.GenerateToken("user-123", "TUTOR")
	require.NoError(t, err)

	_, _, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager(testSecret, -time.Minute)

	token, err := manager.GenerateToken("user-123", "ADMIN")
	require.NoError(t, err)

	_, _, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	manager := NewJWTManager(testSecret, time.Hour)

	_, _, err := manager.VerifyToken("not.a.token")
	assert.Error(t, err)
}
