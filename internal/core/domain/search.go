package domain

// SearchRequest is the payload of a lookup search event.
type SearchRequest struct {
	// SearchTerm is the clean term: trimmed, wildcards stripped, lower-cased.
	SearchTerm string `json:"searchTerm"`

	// RawSearchTerm is the input exactly as typed.
	RawSearchTerm string `json:"rawSearchTerm"`

	// SelectedIDs are the ids currently selected, in order.
	SelectedIDs []string `json:"selectedIds"`
}

// SearchOptions configures a backend search.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means backend default.
	Limit int

	// ObjectTypes filters records by object type. Empty means all.
	ObjectTypes []string
}

// SearchState is a read-only view of a lookup's search term processing.
type SearchState struct {
	RawTerm   string
	CleanTerm string
	MinLength int
	Pending   bool
}
