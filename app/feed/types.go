package feed

import (
	"time"
)

// Document is a parsed feed: its own title and link plus the raw entries in
// document order.
type Document struct {
	Title   string
	Link    string
	Entries []Entry
}

// Entry is a raw feed entry. Empty strings mean the field was absent.
type Entry struct {
	GUID      string
	Title     string
	Link      string
	Published string
	Updated   string // Atom entries often carry only <updated>
}

// Item is a normalized entry ready for display. It is never mutated after
// Normalize returns it.
type Item struct {
	ID          string
	Title       string
	Link        string
	PublishedAt time.Time
	SourceName  string
	SourceURL   string
}
