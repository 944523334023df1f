package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2023, 11, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(base, base.Add(5*time.Hour)))
	assert.Equal(t, 5, DaysBetween(base, base.AddDate(0, 0, 5)))
	assert.Equal(t, -3, DaysBetween(base, base.AddDate(0, 0, -3)))

	// Time of day never affects the distance.
	late := time.Date(2023, 11, 5, 23, 59, 0, 0, time.UTC)
	nextMorning := time.Date(2023, 11, 6, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(late, nextMorning))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("5511999999999"))
	assert.True(t, ValidatePhone("+55 11 99999-9999"))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone("0"))
}
