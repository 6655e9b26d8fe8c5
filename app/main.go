package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/fdr/app/aggregator"
	"github.com/lysyi3m/fdr/app/cfg"
	"github.com/lysyi3m/fdr/app/display"
	"github.com/lysyi3m/fdr/app/feed"
	"github.com/lysyi3m/fdr/app/fetch"
	"github.com/lysyi3m/fdr/app/logger"
	"github.com/lysyi3m/fdr/app/seen"
	"github.com/lysyi3m/fdr/app/subscription"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		if !cfg.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 2
	}
	if appCfg == nil {
		return 0
	}

	if err := logger.Init(logger.Config{Verbosity: appCfg.Verbosity, File: appCfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.L.Debugw("Configuration loaded", "version", appCfg.Version, "command", appCfg.Command, "store", appCfg.Store)

	printer := display.NewPrinter(os.Stdout, os.Stderr, appCfg.NoColor)

	subs, err := subscription.Load(appCfg.Subscriptions)
	if err != nil {
		logger.L.Errorw("Failed to load subscriptions", "path", appCfg.Subscriptions, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	rssSubs := subscription.RSS(subs)
	logger.L.Infow("Subscriptions loaded", "path", appCfg.Subscriptions, "total", len(subs), "rss", len(rssSubs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch appCfg.Command {
	case cfg.CommandSources:
		for _, sub := range rssSubs {
			printer.Line(sub.Title)
		}
		return 0
	case cfg.CommandNews:
		if err := showNews(ctx, appCfg, rssSubs, printer); err != nil {
			logger.L.Errorw("Run failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %s\n", appCfg.Command)
		return 2
	}
}

func showNews(ctx context.Context, appCfg *cfg.Cfg, subs []subscription.Subscription, printer *display.Printer) error {
	loc, err := appCfg.Location()
	if err != nil {
		logger.L.Warnw("Invalid timezone, using system default", "timezone", appCfg.Timezone, "error", err)
	}
	now := time.Now().In(loc)

	fetcher := fetch.NewFetcher(&http.Client{}, feed.NewParser(), fetch.Options{
		UserAgent: appCfg.UserAgent,
		Timeout:   appCfg.Timeout,
		Workers:   appCfg.Workers,
		Rate:      appCfg.FetchRate,
	})

	results, err := fetcher.FetchAll(ctx, subs)
	if err != nil {
		return err
	}

	sources := make([]aggregator.Source, 0, len(results))
	for _, result := range results {
		if result.Err != nil {
			var fetchErr *fetch.FetchError
			if errors.As(result.Err, &fetchErr) {
				printer.Warning("Failed to read feed %s: %v", fetchErr.URL, fetchErr.Err)
			} else {
				printer.Warning("Failed to read feed %s: %v", result.Subscription.URL, result.Err)
			}
			continue
		}
		sources = append(sources, sourceFor(result))
	}

	store, err := seen.Open(ctx, seen.Options{
		Backend:    appCfg.Store,
		FilePath:   appCfg.SeenFile,
		SQLitePath: appCfg.SQLitePath,
		RedisAddr:  appCfg.RedisAddr,
		RedisKey:   appCfg.RedisKey,
	})
	if err != nil {
		return fmt.Errorf("failed to open seen store: %w", err)
	}
	defer store.Close()

	engine := aggregator.NewEngine(store, printer)
	_, err = engine.Run(ctx, sources, now, appCfg.ShowAll, appCfg.Order)
	return err
}

// sourceFor labels items with the feed's own title and link, falling back to
// the subscription entry when the feed omits them.
func sourceFor(result fetch.Result) aggregator.Source {
	return aggregator.Source{
		Name:     cmp.Or(result.Document.Title, result.Subscription.Title),
		URL:      cmp.Or(result.Document.Link, result.Subscription.URL),
		Document: result.Document,
	}
}
