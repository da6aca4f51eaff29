package list

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// Ellipsis ends truncated text.
const Ellipsis = "…"

// Segment is a run of text that is either emphasised or not.
type Segment struct {
	Text     string
	Emphasis bool
}

// ParseMarkup splits s on emphasis markers. Unbalanced markers are kept as text.
func ParseMarkup(s string) []Segment {
	var segs []Segment
	for s != "" {
		open := strings.Index(s, domain.EmphasisOpen)
		if open < 0 {
			segs = append(segs, Segment{Text: s})
			break
		}
		rest := s[open+len(domain.EmphasisOpen):]
		closeAt := strings.Index(rest, domain.EmphasisClose)
		if closeAt < 0 {
			segs = append(segs, Segment{Text: s})
			break
		}
		if open > 0 {
			segs = append(segs, Segment{Text: s[:open]})
		}
		segs = append(segs, Segment{Text: rest[:closeAt], Emphasis: true})
		s = rest[closeAt+len(domain.EmphasisClose):]
	}
	return segs
}

// PlainText strips emphasis markers from s.
func PlainText(s string) string {
	var b strings.Builder
	for _, seg := range ParseMarkup(s) {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// RenderMarkup renders s with emph applied to emphasised segments and base to
// the rest, truncated to maxWidth cells. maxWidth <= 0 disables truncation.
func RenderMarkup(s string, maxWidth int, base, emph lipgloss.Style) string {
	segs := ParseMarkup(s)
	if maxWidth > 0 && runewidth.StringWidth(PlainText(s)) > maxWidth {
		segs = truncateSegments(segs, maxWidth)
	}

	var b strings.Builder
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		if seg.Emphasis {
			b.WriteString(emph.Inherit(base).Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

// truncateSegments cuts segs to width cells, ellipsis included.
func truncateSegments(segs []Segment, width int) []Segment {
	budget := width - runewidth.StringWidth(Ellipsis)
	if budget < 0 {
		budget = 0
	}

	out := make([]Segment, 0, len(segs)+1)
	for _, seg := range segs {
		w := runewidth.StringWidth(seg.Text)
		if w <= budget {
			out = append(out, seg)
			budget -= w
			continue
		}
		out = append(out, Segment{Text: runewidth.Truncate(seg.Text, budget, ""), Emphasis: seg.Emphasis})
		break
	}
	return append(out, Segment{Text: Ellipsis})
}
