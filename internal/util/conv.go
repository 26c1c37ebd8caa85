package util

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// MustParseUint converts s to an unsigned integer, returning 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// RelativeTime renders a timestamp as "3 minutes ago" style text.
func RelativeTime(t time.Time) string {
	return humanize.Time(t)
}
