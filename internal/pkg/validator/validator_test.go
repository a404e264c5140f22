package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "duration", Message: "must be non-negative"},
		{Field: "employee_id", Message: "is required"},
	}

	assert.Equal(t, "duration: must be non-negative; employee_id: is required", errs.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be non-negative"},
	}

	m := errs.ToMap()
	assert.Equal(t, map[string]string{"amount": "must be non-negative"}, m)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("Ann"))
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid date", "2024-06-01", true},
		{"invalid format", "01-06-2024", false},
		{"not a date", "yesterday", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := IsValidDate(tt.input)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear(2024))
	assert.False(t, IsValidYear(1999))
	assert.False(t, IsValidYear(2101))
}
