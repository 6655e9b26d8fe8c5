package feed

import (
	"cmp"
	"strings"
)

// Normalize builds an Item from a raw entry and the name and URL of the feed
// that carried it. It fails with a *ValidationError when the title, link or
// publish date is missing, or when the date cannot be parsed.
//
// Entries without a GUID are identified by "{title}-{link}", so such an
// entry is seen as new again if either field changes upstream.
func Normalize(entry Entry, sourceName, sourceURL string) (Item, error) {
	if entry.Title == "" {
		return Item{}, errMissingTitle
	}
	if entry.Link == "" {
		return Item{}, errMissingLink
	}

	rawDate := cmp.Or(strings.TrimSpace(entry.Published), strings.TrimSpace(entry.Updated))
	if rawDate == "" {
		return Item{}, errMissingPublishDate
	}
	publishedAt, ok := parsePublishDate(rawDate)
	if !ok {
		return Item{}, errInvalidPublishDate
	}

	return Item{
		ID:          cmp.Or(entry.GUID, entry.Title+"-"+entry.Link),
		Title:       entry.Title,
		Link:        entry.Link,
		PublishedAt: publishedAt,
		SourceName:  sourceName,
		SourceURL:   sourceURL,
	}, nil
}

// NormalizeAll normalizes every entry of doc in a single pass, returning the
// items in entry order alongside one error per dropped entry.
func NormalizeAll(doc *Document, sourceName, sourceURL string) ([]Item, []error) {
	if doc == nil {
		return nil, nil
	}

	items := make([]Item, 0, len(doc.Entries))
	var failures []error
	for _, entry := range doc.Entries {
		item, err := Normalize(entry, sourceName, sourceURL)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		items = append(items, item)
	}

	return items, failures
}
