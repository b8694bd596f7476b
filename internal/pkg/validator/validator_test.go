package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("user"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("user@example"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2026-03-10")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidDate("10-03-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-03-10T12:00:00Z")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	t.Parallel()

	ts, ok := IsValidDateTime("2026-03-10T12:30:00Z")
	require.True(t, ok)
	assert.Equal(t, 12, ts.UTC().Hour())

	_, ok = IsValidDateTime("2026-03-10T12:30:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2026-03-10")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInSlice("active", []string{"active", "inactive"}))
	assert.False(t, IsInSlice("pending", []string{"active", "inactive"}))
	assert.False(t, IsInSlice("active", nil))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "name", Message: "name is required"},
	}

	assert.Equal(t, "email: email is required; name: name is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email": "email is required",
		"name":  "name is required",
	}, errs.ToMap())
}
