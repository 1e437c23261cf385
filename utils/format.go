package utils

import (
	"strconv"
	"strings"
	"time"
)

// FormatCOP renders integer pesos the way the receipts always have:
// "$40.000" with dot thousand separators.
func FormatCOP(v int64) string {
	return "$" + FormatMiles(v)
}

func FormatMiles(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatDate / FormatTime mirror the kiosk's locale date rendering.
func FormatDate(t time.Time) string {
	return t.Format("2/1/2006")
}

func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatISODate is used in generated file names.
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
