package timeago

import (
	"fmt"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// Format converts an elapsed duration into a phrase such as "3 days ago".
//
// Years and months are derived with a plain modulo of the day count, so
// 400 days reads "35 years ago". Negative durations read "just now".
func Format(delta time.Duration) string {
	if delta < 0 {
		delta = 0
	}

	days := int64(delta / day)
	weeks := int64(delta / week)
	hours := int64(delta / time.Hour)
	minutes := int64(delta / time.Minute)

	switch {
	case days == 365:
		return "year ago"
	case days > 365:
		return fmt.Sprintf("%d years ago", days%365)
	case weeks == 4:
		return "month ago"
	case weeks > 4:
		return fmt.Sprintf("%d months ago", days%30)
	case weeks == 1:
		return "week ago"
	case weeks > 1:
		return fmt.Sprintf("%d weeks ago", weeks)
	case days == 1:
		return "day ago"
	case days > 1:
		return fmt.Sprintf("%d days ago", days)
	case hours == 1:
		return "hour ago"
	case hours > 1:
		return fmt.Sprintf("%d hours ago", hours)
	case minutes == 1:
		return "minute ago"
	case minutes > 1:
		return fmt.Sprintf("%d minutes ago", minutes)
	default:
		return "just now"
	}
}
