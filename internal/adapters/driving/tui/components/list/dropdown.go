// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/lookup/internal/adapters/driving/tui/styles"
)

// DefaultEmptyText is shown when there are no result rows.
const DefaultEmptyText = "No results."

// Row is one option of the dropdown.
type Row struct {
	// Icon is a short badge shown before the title.
	Icon string

	// Title may contain emphasis markup.
	Title string

	// Subtitle may contain emphasis markup.
	Subtitle string

	// Focused marks the keyboard-focused row.
	Focused bool
}

// Dropdown renders lookup results and action rows in a scrolling window.
type Dropdown struct {
	results    []Row
	actions    []Row
	styles     *styles.Styles
	emptyText  string
	width      int
	maxVisible int
}

// NewDropdown creates a new dropdown component.
func NewDropdown(s *styles.Styles) *Dropdown {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Dropdown{
		styles:    s,
		emptyText: DefaultEmptyText,
		width:     60,
	}
}

// Init initialises the dropdown.
func (d *Dropdown) Init() tea.Cmd {
	return nil
}

// SetRows replaces the result and action rows.
func (d *Dropdown) SetRows(results, actions []Row) {
	d.results = results
	d.actions = actions
}

// Count returns the number of rows, actions included.
func (d *Dropdown) Count() int {
	return len(d.results) + len(d.actions)
}

// SetMaxVisible limits how many rows show at once. Zero shows all rows.
func (d *Dropdown) SetMaxVisible(n int) {
	if n < 0 {
		n = 0
	}
	d.maxVisible = n
}

// MaxVisible returns the row limit.
func (d *Dropdown) MaxVisible() int {
	return d.maxVisible
}

// SetWidth sets the dropdown width.
func (d *Dropdown) SetWidth(width int) {
	d.width = width
}

// Width returns the current width.
func (d *Dropdown) Width() int {
	return d.width
}

// SetEmptyText sets the placeholder shown without results.
func (d *Dropdown) SetEmptyText(text string) {
	d.emptyText = text
}

// Window returns the half-open range of rows to render, keeping the focused row visible.
func (d *Dropdown) Window() (start, end int) {
	total := d.Count()
	if d.maxVisible == 0 || total <= d.maxVisible {
		return 0, total
	}

	focus := d.focused()
	if focus >= d.maxVisible {
		start = focus - d.maxVisible + 1
	}
	return start, start + d.maxVisible
}

func (d *Dropdown) focused() int {
	for i, row := range d.results {
		if row.Focused {
			return i
		}
	}
	for i, row := range d.actions {
		if row.Focused {
			return len(d.results) + i
		}
	}
	return -1
}

func (d *Dropdown) row(i int) (Row, bool) {
	if i < len(d.results) {
		return d.results[i], false
	}
	return d.actions[i-len(d.results)], true
}

// View renders the dropdown.
func (d *Dropdown) View() string {
	lines := make([]string, 0, d.Count()+3)
	if len(d.results) == 0 {
		lines = append(lines, d.styles.Muted.Render("  "+d.emptyText))
	}

	start, end := d.Window()
	if start > 0 {
		lines = append(lines, d.styles.Muted.Render("  ↑ more"))
	}
	for i := start; i < end; i++ {
		row, action := d.row(i)
		lines = append(lines, d.renderRow(row, action))
	}
	if end < d.Count() {
		lines = append(lines, d.styles.Muted.Render("  ↓ more"))
	}

	return d.styles.Dropdown.Width(d.width).Render(strings.Join(lines, "\n"))
}

// renderRow formats a single row.
func (d *Dropdown) renderRow(row Row, action bool) string {
	indicator := "  "
	if row.Focused {
		indicator = "> "
	}

	base := d.styles.Normal
	if row.Focused {
		base = d.styles.Selected
	}

	badge := ""
	if row.Icon != "" {
		badge = d.styles.Icon.Render(row.Icon) + " "
	}
	if action {
		badge = d.styles.Success.Render("+") + " "
	}

	used := runewidth.StringWidth(indicator) + runewidth.StringWidth(PlainText(badge))
	avail := d.width - used - 2
	if avail < 10 {
		avail = 10
	}

	line := indicator + badge + RenderMarkup(row.Title, avail, base, d.styles.Highlight)
	if row.Subtitle != "" {
		sub := RenderMarkup(row.Subtitle, avail, d.styles.Muted, d.styles.Highlight)
		line += "\n" + strings.Repeat(" ", used) + sub
	}
	return line
}
