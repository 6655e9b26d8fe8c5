package feed

import (
	"strings"
	"testing"
)

func TestParseRSS2(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Test Item 1</title>
      <link>https://example.com/item1</link>
      <guid>item-1</guid>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Test Item 2</title>
      <link>https://example.com/item2</link>
      <pubDate>Mon, 03 Jul 2023 11:00:00 +0200</pubDate>
    </item>
    <item>
      <description>No title, no link</description>
    </item>
  </channel>
</rss>`

	parser := NewParser()
	doc, err := parser.Run([]byte(rssData))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if doc.Title != "Test Feed" {
		t.Errorf("Expected title 'Test Feed', got: %s", doc.Title)
	}
	if doc.Link != "https://example.com" {
		t.Errorf("Expected link 'https://example.com', got: %s", doc.Link)
	}

	if len(doc.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got: %d", len(doc.Entries))
	}

	first := doc.Entries[0]
	if first.GUID != "item-1" {
		t.Errorf("Expected GUID 'item-1', got: %s", first.GUID)
	}
	if first.Title != "Test Item 1" {
		t.Errorf("Expected title 'Test Item 1', got: %s", first.Title)
	}
	if first.Published != "Mon, 03 Jul 2023 10:00:00 GMT" {
		t.Errorf("Expected raw pubDate to be preserved, got: %s", first.Published)
	}

	if doc.Entries[1].GUID != "" {
		t.Errorf("Expected empty GUID for second entry, got: %s", doc.Entries[1].GUID)
	}

	third := doc.Entries[2]
	if third.Title != "" || third.Link != "" {
		t.Errorf("Expected empty title and link, got: %q %q", third.Title, third.Link)
	}
}

func TestParseAtom(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Test Atom Feed</title>
  <link href="https://example.com"/>
  <updated>2023-07-03T12:00:00Z</updated>
  <id>urn:uuid:1234567890</id>
  <entry>
    <title>Test Entry</title>
    <link href="https://example.com/entry1"/>
    <id>urn:uuid:entry-1</id>
    <updated>2023-07-03T10:00:00Z</updated>
  </entry>
</feed>`

	doc, err := NewParser().Read(strings.NewReader(atomData))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if doc.Title != "Test Atom Feed" {
		t.Errorf("Expected title 'Test Atom Feed', got: %s", doc.Title)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got: %d", len(doc.Entries))
	}

	entry := doc.Entries[0]
	if entry.GUID != "urn:uuid:entry-1" {
		t.Errorf("Expected GUID 'urn:uuid:entry-1', got: %s", entry.GUID)
	}
	if entry.Updated == "" {
		t.Error("Expected updated date to be carried over")
	}

	item, err := Normalize(entry, doc.Title, doc.Link)
	if err != nil {
		t.Fatalf("Expected Atom entry to normalize, got: %v", err)
	}
	if item.PublishedAt.Hour() != 10 {
		t.Errorf("Expected hour 10, got: %d", item.PublishedAt.Hour())
	}
}

func TestParseInvalidFeed(t *testing.T) {
	parser := NewParser()
	_, err := parser.Run([]byte("invalid xml"))

	if err == nil {
		t.Error("Expected error for invalid XML")
	}
}
