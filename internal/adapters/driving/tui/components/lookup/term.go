package lookup

import (
	"regexp"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// reserved are the backend wildcard characters removed from a search term.
var reserved = strings.NewReplacer("*", "", "?", "")

// CleanTerm normalises a raw search term: wildcards stripped, trimmed, lower-cased.
func CleanTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(reserved.Replace(raw)))
}

// Highlight wraps every case-insensitive occurrence of term in text with
// emphasis markup. An empty text or term returns text unchanged.
func Highlight(text, term string) string {
	return highlighter(term)(text)
}

func highlighter(term string) func(string) string {
	if term == "" {
		return func(s string) string { return s }
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	return func(s string) string {
		if s == "" {
			return s
		}
		return re.ReplaceAllStringFunc(s, func(match string) string {
			return domain.EmphasisOpen + match + domain.EmphasisClose
		})
	}
}

// termLongEnough reports whether clean meets the minimum search length.
func termLongEnough(clean string, minLength int) bool {
	return clean != "" && utf8.RuneCountInString(clean) >= minLength
}

// updateSearchTerm runs on every input change. It returns the debounce
// command when a search should be scheduled.
func (m *Model) updateSearchTerm(raw string) tea.Cmd {
	m.rawTerm = raw

	clean := CleanTerm(raw)
	if clean == m.cleanTerm {
		return nil
	}
	m.cleanTerm = clean

	if !termLongEnough(clean, m.minSearchTermLength) {
		m.cancelPending()
		m.SetSearchResults(m.defaultResults)
		return nil
	}

	return m.schedule(raw)
}
