package cfg

import (
	"time"

	"github.com/lysyi3m/fdr/app/aggregator"
)

const (
	CommandNews    = "news"
	CommandSources = "sources"
)

type Cfg struct {
	// Command selection
	Command       string
	Subscriptions string
	ShowAll       bool
	Order         aggregator.Order

	// Seen state
	Store      string
	SeenFile   string
	SQLitePath string
	RedisAddr  string
	RedisKey   string

	// Fetching
	UserAgent string
	Timeout   time.Duration
	Workers   int
	FetchRate float64

	// Output and diagnostics
	NoColor   bool
	Verbosity int
	LogFile   string
	Timezone  string
	Version   string
}
