package subscription

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"
	"gopkg.in/yaml.v3"
)

// Load reads a subscription list. Files ending in .yml or .yaml are read as
// YAML, anything else as OPML.
func Load(path string) ([]Subscription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subscriptions: %w", err)
	}

	var subs []Subscription
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		subs, err = ParseYAML(data)
	default:
		subs, err = ParseOPML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid subscriptions %s: %w", path, err)
	}

	return subs, nil
}

// ParseOPML flattens nested outlines in document order. Folder outlines
// without an xmlUrl are skipped.
func ParseOPML(data []byte) ([]Subscription, error) {
	var doc opmlDocument
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse OPML: %w", err)
	}

	var subs []Subscription
	var walk func([]opmlOutline)
	walk = func(outlines []opmlOutline) {
		for _, o := range outlines {
			if o.XMLURL != "" {
				subs = append(subs, Subscription{
					Title: cmp.Or(o.Title, o.Text, o.XMLURL),
					URL:   o.XMLURL,
					Type:  o.Type,
				})
			}
			walk(o.Outlines)
		}
	}
	walk(doc.Body)

	return subs, nil
}

func ParseYAML(data []byte) ([]Subscription, error) {
	var list yamlList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range list.Feeds {
		setDefaults(&list.Feeds[i])
		if err := validate(list.Feeds[i]); err != nil {
			return nil, fmt.Errorf("feed at index %d: %w", i, err)
		}
	}

	return list.Feeds, nil
}

func setDefaults(s *Subscription) {
	if s.Type == "" {
		s.Type = TypeRSS
	}
	if s.Title == "" {
		s.Title = s.URL
	}
}

func validate(s Subscription) error {
	if s.URL == "" {
		return fmt.Errorf("feed URL is required")
	}
	return nil
}

// RSS keeps only subscriptions of type "rss", preserving order.
func RSS(subs []Subscription) []Subscription {
	filtered := make([]Subscription, 0, len(subs))
	for _, s := range subs {
		if s.Type == TypeRSS {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
