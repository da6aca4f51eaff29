package domain

// DefaultIcon is assigned to results that arrive without an icon.
const DefaultIcon = "standard:default"

// Emphasis markup wrapped around the matched part of a formatted title or subtitle.
const (
	EmphasisOpen  = "<strong>"
	EmphasisClose = "</strong>"
)

// ResultItem is a single lookup candidate.
type ResultItem struct {
	// ID uniquely identifies the candidate.
	ID string `json:"id" yaml:"id" toml:"id"`

	// Title is the main display text.
	Title string `json:"title" yaml:"title" toml:"title"`

	// Subtitle is optional secondary text.
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`

	// Icon names the entity icon. Empty means DefaultIcon.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`

	// TitleFormatted is Title with the search match wrapped in emphasis markup.
	// Derived by the lookup, never authoritative.
	TitleFormatted string `json:"titleFormatted,omitempty" yaml:"-" toml:"-"`

	// SubtitleFormatted is Subtitle with the search match wrapped in emphasis markup.
	SubtitleFormatted string `json:"subtitleFormatted,omitempty" yaml:"-" toml:"-"`
}

// ResultIDs returns the ids of items in order.
func ResultIDs(items []ResultItem) []string {
	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].ID)
	}
	return ids
}

// CloneResults returns an independent copy of items.
// A nil slice stays nil.
func CloneResults(items []ResultItem) []ResultItem {
	if items == nil {
		return nil
	}
	out := make([]ResultItem, len(items))
	copy(out, items)
	return out
}

// ExcludeIDs returns the items whose id is not in ids, preserving order.
func ExcludeIDs(items []ResultItem, ids []string) []ResultItem {
	if len(ids) == 0 {
		return CloneResults(items)
	}
	skip := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}
	out := make([]ResultItem, 0, len(items))
	for i := range items {
		if _, ok := skip[items[i].ID]; ok {
			continue
		}
		out = append(out, items[i])
	}
	return out
}
