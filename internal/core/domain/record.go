package domain

import "time"

// Record is a candidate persisted by a storage backend.
type Record struct {
	// ID is the unique identifier for the record.
	ID string `json:"id" yaml:"id" toml:"id"`

	// ObjectType is the kind of record, e.g. "Account" or "Opportunity".
	ObjectType string `json:"object_type" yaml:"object_type" toml:"object_type"`

	// Title is the human-readable name.
	Title string `json:"title" yaml:"title" toml:"title"`

	// Subtitle is optional secondary text.
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`

	// Icon names the entity icon.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`

	// ViewedAt is when the record was last selected. Zero if never.
	ViewedAt time.Time `json:"viewed_at,omitempty" yaml:"viewed_at,omitempty" toml:"viewed_at,omitempty"`

	// CreatedAt is when the record was stored.
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty" toml:"created_at,omitempty"`
}

// ToResult converts the record into a lookup candidate.
func (r *Record) ToResult() ResultItem {
	icon := r.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	return ResultItem{
		ID:       r.ID,
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Icon:     icon,
	}
}

// RecordsToResults converts records in order.
func RecordsToResults(records []Record) []ResultItem {
	out := make([]ResultItem, 0, len(records))
	for i := range records {
		out = append(out, records[i].ToResult())
	}
	return out
}
