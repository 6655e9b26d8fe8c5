package aggregator

import (
	"context"
	"slices"
	"time"

	"github.com/lysyi3m/fdr/app/feed"
	"github.com/lysyi3m/fdr/app/logger"
	"github.com/lysyi3m/fdr/app/seen"
	"github.com/lysyi3m/fdr/app/timeago"
)

type Engine struct {
	store   seen.Store
	display Display
}

func NewEngine(store seen.Store, display Display) *Engine {
	return &Engine{
		store:   store,
		display: display,
	}
}

// Run merges the items of all sources, prints the ones not seen before (or
// every item when showAll is set) and records the newly shown identifiers.
//
// Invalid entries are reported and skipped. An unreadable seen state is
// reported and treated as empty. The only error returned is the one from
// saving the updated state, after all lines have been printed.
func (e *Engine) Run(ctx context.Context, sources []Source, now time.Time, showAll bool, order Order) ([]Displayed, error) {
	items := e.collect(sources)
	sortItems(items, order)

	record, err := e.store.Load(ctx)
	if err != nil {
		e.display.Warning("%v", err)
		logger.L.Warnw("Seen state unreadable, starting empty", "error", err)
	}
	if record == nil {
		record = seen.NewRecord(nil)
	}
	initialCount := record.Len()

	var displayed []Displayed
	for _, item := range items {
		isNew := !record.Contains(item.ID)
		if !isNew && !showAll {
			continue
		}

		age := timeago.Format(now.Sub(item.PublishedAt))
		e.display.Item(item, age, isNew)
		displayed = append(displayed, Displayed{Item: item, Age: age, IsNew: isNew})

		if isNew {
			record.Append(item.ID)
		}
	}

	logger.L.Infow("Aggregation completed",
		"sources", len(sources),
		"items", len(items),
		"displayed", len(displayed),
		"new", record.Len()-initialCount,
		"order", order.String())

	if err := e.store.Save(ctx, record); err != nil {
		return displayed, err
	}

	return displayed, nil
}

// collect normalizes every source in arrival order.
func (e *Engine) collect(sources []Source) []feed.Item {
	var items []feed.Item
	for _, src := range sources {
		sourceItems, failures := feed.NormalizeAll(src.Document, src.Name, src.URL)
		for _, failure := range failures {
			e.display.Warning("Invalid feed item in feed: %v", failure)
		}
		items = append(items, sourceItems...)
	}
	return items
}

func sortItems(items []feed.Item, order Order) {
	switch order {
	case Ascending:
		slices.SortStableFunc(items, func(a, b feed.Item) int {
			return a.PublishedAt.Compare(b.PublishedAt)
		})
	case Descending:
		slices.SortStableFunc(items, func(a, b feed.Item) int {
			return b.PublishedAt.Compare(a.PublishedAt)
		})
	}
}
