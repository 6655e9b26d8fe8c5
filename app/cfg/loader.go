package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/lysyi3m/fdr/app/aggregator"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Seen state
	Store      string `long:"store" env:"FDR_STORE" default:"file" choice:"file" choice:"sqlite" choice:"redis" description:"Backend for the seen state"`
	SeenFile   string `long:"seen-file" env:"FDR_SEEN_FILE" default:"seen.txt" description:"Seen state file for the file backend"`
	SQLitePath string `long:"sqlite-path" env:"FDR_SQLITE_PATH" default:"seen.db" description:"Database path for the sqlite backend"`
	RedisAddr  string `long:"redis-addr" env:"FDR_REDIS_ADDR" default:"localhost:6379" description:"Redis address for the redis backend"`
	RedisKey   string `long:"redis-key" env:"FDR_REDIS_KEY" default:"fdr:seen" description:"Redis list key for the redis backend"`

	// Fetching
	UserAgent string  `long:"user-agent" env:"FDR_USER_AGENT" default:"fdr/1.0" description:"User agent string for HTTP requests"`
	Timeout   int     `long:"timeout" env:"FDR_TIMEOUT" default:"30" description:"Per-feed fetch timeout in seconds"`
	Workers   int     `long:"workers" env:"FDR_WORKERS" default:"4" description:"Number of feeds fetched concurrently"`
	FetchRate float64 `long:"fetch-rate" env:"FDR_FETCH_RATE" default:"0" description:"Maximum feed requests per second (0 for unlimited)"`

	// Output and diagnostics
	NoColor  bool   `long:"no-color" description:"Disable coloured output (also honoured via NO_COLOR)"`
	Verbose  []bool `short:"v" long:"verbose" description:"Increase log verbosity (repeatable)"`
	LogFile  string `long:"log-file" env:"FDR_LOG_FILE" description:"Also write logs to this file"`
	Timezone string `long:"timezone" env:"TZ" description:"Timezone for relative times (e.g., UTC, Europe/Berlin)"`

	News    newsCommand    `command:"news" description:"Show feed items not seen before"`
	Sources sourcesCommand `command:"sources" description:"List rss subscriptions"`
}

type subscriptionsArg struct {
	Subscriptions string `positional-arg-name:"SUBSCRIPTIONS" required:"yes" description:"OPML or YAML subscription file"`
}

type newsCommand struct {
	All  bool   `short:"a" long:"all" description:"Also show items seen before"`
	Sort string `short:"s" long:"sort" default:"original" choice:"original" choice:"desc" choice:"asc" description:"Item order"`
	Args subscriptionsArg `positional-args:"yes" required:"yes"`
}

type sourcesCommand struct {
	Args subscriptionsArg `positional-args:"yes" required:"yes"`
}

// Load parses command-line arguments and environment variables. It returns
// nil, nil when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Store:      raw.Store,
		SeenFile:   raw.SeenFile,
		SQLitePath: raw.SQLitePath,
		RedisAddr:  raw.RedisAddr,
		RedisKey:   raw.RedisKey,
		UserAgent:  raw.UserAgent,
		Timeout:    time.Duration(raw.Timeout) * time.Second,
		Workers:    raw.Workers,
		FetchRate:  raw.FetchRate,
		NoColor:    raw.NoColor || os.Getenv("NO_COLOR") != "",
		Verbosity:  len(raw.Verbose),
		LogFile:    raw.LogFile,
		Timezone:   raw.Timezone,
		Version:    GetVersion(),
	}

	if parser.Active == nil {
		return nil, fmt.Errorf("no command given")
	}
	cfg.Command = parser.Active.Name

	switch cfg.Command {
	case CommandNews:
		order, err := aggregator.ParseOrder(raw.News.Sort)
		if err != nil {
			return nil, err
		}
		cfg.Subscriptions = raw.News.Args.Subscriptions
		cfg.ShowAll = raw.News.All
		cfg.Order = order
	case CommandSources:
		cfg.Subscriptions = raw.Sources.Args.Subscriptions
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Reported tells whether err was already printed by the flags parser.
func Reported(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr)
}

func validate(cfg *Cfg) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if cfg.FetchRate < 0 {
		return fmt.Errorf("fetch rate must be non-negative")
	}
	return nil
}

// Location returns the zone used for "now". An invalid timezone falls back
// to the system zone.
func (c *Cfg) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local, err
	}
	return loc, nil
}
