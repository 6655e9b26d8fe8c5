package feed

import (
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

type dateStrategy func(string) (time.Time, error)

// publishDateStrategies are tried in order; the first success wins.
var publishDateStrategies = []dateStrategy{
	parseRFC2822,
	parseRFC3339,
	parseGeneric,
}

func parseRFC2822(value string) (time.Time, error) {
	return mail.ParseDate(value)
}

func parseRFC3339(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

// parseGeneric reads zone-less timestamps as UTC.
func parseGeneric(value string) (time.Time, error) {
	return dateparse.ParseIn(value, time.UTC)
}

func parsePublishDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, strategy := range publishDateStrategies {
		if t, err := strategy(value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
