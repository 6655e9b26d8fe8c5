package feed

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *Parser) Run(data []byte) (*Document, error) {
	return p.Read(bytes.NewReader(data))
}

func (p *Parser) Read(r io.Reader) (*Document, error) {
	feed, err := p.gofeedParser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	doc := &Document{
		Title:   feed.Title,
		Link:    feed.Link,
		Entries: make([]Entry, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		doc.Entries = append(doc.Entries, p.rawEntry(item))
	}

	return doc, nil
}

// rawEntry keeps the date strings unparsed; Normalize owns date policy.
func (p *Parser) rawEntry(item *gofeed.Item) Entry {
	return Entry{
		GUID:      item.GUID,
		Title:     item.Title,
		Link:      item.Link,
		Published: item.Published,
		Updated:   item.Updated,
	}
}
