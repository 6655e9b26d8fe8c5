package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/lysyi3m/fdr/app/feed"
)

func testItem() feed.Item {
	return feed.Item{
		ID:          "id-1",
		Title:       "Hello World",
		Link:        "https://example.com/hello",
		PublishedAt: time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC),
		SourceName:  "Example Blog",
		SourceURL:   "https://example.com",
	}
}

func TestPrinterNewItem(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true)

	p.Item(testItem(), "3 days ago", true)

	expected := "Example Blog (*new*): Hello World (3 days ago) https://example.com/hello\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected nothing on error output, got %q", errOut.String())
	}
}

func TestPrinterSeenItem(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true)

	p.Item(testItem(), "just now", false)

	expected := "Example Blog: Hello World (just now) https://example.com/hello\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestPrinterWarning(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true)

	p.Warning("Invalid feed item in feed: %s", "missing title")

	expected := "[WARNING] Invalid feed item in feed: missing title\n"
	if errOut.String() != expected {
		t.Errorf("Expected %q, got %q", expected, errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("Expected nothing on standard output, got %q", out.String())
	}
}

func TestPrinterKeepsItemOnOneLine(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true)

	item := testItem()
	item.Title = "Line one\nLine two"
	p.Item(item, "just now", true)

	expected := "Example Blog (*new*): Line one Line two (just now) https://example.com/hello\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestPrinterSanitizesLink(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, true)

	item := testItem()
	item.Link = "https://example.com/hello\r\nnext"
	p.Item(item, "just now", false)

	expected := "Example Blog: Hello World (just now) https://example.com/hello  next\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestSanitizeNormalizesUnicode(t *testing.T) {
	decomposed := "Cafe\u0301"
	if got := sanitize(decomposed); got != "Caf\u00e9" {
		t.Errorf("Expected NFC form, got %q", got)
	}
}
