package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth("2024-01"))
	assert.True(t, IsValidMonth("2024-12"))

	assert.False(t, IsValidMonth("2024-13"))
	assert.False(t, IsValidMonth("2024-00"))
	assert.False(t, IsValidMonth("2024-1"))
	assert.False(t, IsValidMonth("24-01"))
	assert.False(t, IsValidMonth("2024-01-15"))
	assert.False(t, IsValidMonth("June 2024"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidDate("2024-06-02"))
	assert.True(t, IsValidDate("2024-02-29"))

	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-06-31"))
	assert.False(t, IsValidDate("02-06-2024"))
	assert.False(t, IsValidDate(""))
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNumeric("0123456789"))
	assert.False(t, IsNumeric("12.5"))
	assert.False(t, IsNumeric("-1"))
	assert.False(t, IsNumeric(""))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "month", Message: "month must be in YYYY-MM format"},
		{Field: "staff_id", Message: "staff_id is required"},
	}

	assert.Equal(t, "month: month must be in YYYY-MM format; staff_id: staff_id is required", errs.Error())
	assert.Equal(t, map[string]string{
		"month":    "month must be in YYYY-MM format",
		"staff_id": "staff_id is required",
	}, errs.ToMap())
}
