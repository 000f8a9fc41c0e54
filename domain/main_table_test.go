package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 2, 10)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 3, p.TotalPages)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(0, 1, 10)
	assert.Equal(t, 0, p.TotalPages)
}

func TestNewPaginationExactMultiple(t *testing.T) {
	p := NewPagination(30, 1, 10)
	assert.Equal(t, 3, p.TotalPages)
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(5, 0, -1)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 1, p.TotalPages)
}

func TestIsValidDayOfWeek(t *testing.T) {
	for _, day := range ValidDaysOfWeek {
		assert.True(t, IsValidDayOfWeek(day))
	}
	assert.False(t, IsValidDayOfWeek("MONDAY"))
	assert.False(t, IsValidDayOfWeek("mon"))
	assert.False(t, IsValidDayOfWeek(""))
}
