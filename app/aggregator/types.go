package aggregator

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/fdr/app/feed"
)

type Order int

const (
	Original Order = iota
	Ascending
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "original"
	}
}

// ParseOrder accepts "original", "asc"/"ascending" and "desc"/"descending".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "original":
		return Original, nil
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Original, fmt.Errorf("unknown sort order: %s", s)
	}
}

// Source is one fetched feed. Name and URL label its items.
type Source struct {
	Name     string
	URL      string
	Document *feed.Document
}

// Displayed is an item that was printed during a run.
type Displayed struct {
	Item  feed.Item
	Age   string
	IsNew bool
}

// Display receives item lines and warnings.
type Display interface {
	Item(item feed.Item, age string, isNew bool)
	Warning(format string, args ...interface{})
}
