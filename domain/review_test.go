package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	tests := []struct {
		avg  float64
		want float64
	}{
		{0, 0},
		{5, 5},
		{4.5, 4.5},
		{4.44, 4.4},
		{4.45, 4.5},
		{4.666666, 4.7},
		{3.333333, 3.3},
		{1.05, 1.1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundRating(tt.avg), 1e-9, "avg=%v", tt.avg)
	}
}

func TestIsValidRating(t *testing.T) {
	assert.False(t, IsValidRating(0))
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(3))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(6))
	assert.False(t, IsValidRating(-1))
}
