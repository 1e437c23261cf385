package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{500, "$500"},
		{4000, "$4.000"},
		{40000, "$40.000"},
		{1234567, "$1.234.567"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatCOP(tc.in))
	}
}

func TestFormatMilesNegative(t *testing.T) {
	assert.Equal(t, "-1.500", FormatMiles(-1500))
}

func TestFormatDateAndTime(t *testing.T) {
	ts := time.Date(2026, 3, 5, 9, 4, 5, 0, time.UTC)
	assert.Equal(t, "5/3/2026", FormatDate(ts))
	assert.Equal(t, "09:04:05", FormatTime(ts))
	assert.Equal(t, "2026-03-05", FormatISODate(ts))
}
