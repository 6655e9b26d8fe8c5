package display

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/lysyi3m/fdr/app/feed"
	"github.com/muesli/termenv"
	"golang.org/x/text/unicode/norm"
)

const newMarker = " (*new*)"

type styles struct {
	newTitle  lipgloss.Style
	seenTitle lipgloss.Style
	age       lipgloss.Style
	warning   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		newTitle:  r.NewStyle().Bold(true),
		seenTitle: r.NewStyle().Faint(true),
		age:       r.NewStyle().Faint(true),
		warning:   r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Printer writes item lines to out and warnings to errOut. Colour is used
// only when the writers are terminals and noColor is false.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	styles styles
}

func NewPrinter(out, errOut io.Writer, noColor bool) *Printer {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)
	if noColor {
		outRenderer.SetColorProfile(termenv.Ascii)
		errRenderer.SetColorProfile(termenv.Ascii)
	}

	s := newStyles(outRenderer)
	s.warning = newStyles(errRenderer).warning

	return &Printer{
		out:    out,
		errOut: errOut,
		styles: s,
	}
}

// Item prints "{source}{marker}: {title} ({age}) {link}". New items carry the
// "(*new*)" marker and a bold title; seen ones a faint title.
func (p *Printer) Item(item feed.Item, age string, isNew bool) {
	title := sanitize(item.Title)
	marker := ""
	if isNew {
		marker = newMarker
		title = p.styles.newTitle.Render(title)
	} else {
		title = p.styles.seenTitle.Render(title)
	}

	fmt.Fprintf(p.out, "%s%s: %s (%s) %s\n",
		sanitize(item.SourceName), marker, title, p.styles.age.Render(age), sanitize(item.Link))
}

func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, sanitize(text))
}

func (p *Printer) Warning(format string, args ...interface{}) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.styles.warning.Render("[WARNING]"), fmt.Sprintf(format, args...))
}

// sanitize keeps one item on one line: NFC-normalized, control characters
// and line breaks folded into spaces.
func sanitize(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
