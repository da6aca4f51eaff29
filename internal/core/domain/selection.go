package domain

// SelectionKind tags the shape of a SelectionInput.
type SelectionKind int

const (
	// SelectionNone clears the selection.
	SelectionNone SelectionKind = iota
	// SelectionByID selects a single item known only by id.
	SelectionByID
	// SelectionByItem selects a single item.
	SelectionByItem
	// SelectionByList selects an ordered list of items.
	SelectionByList
)

// SelectionInput is the value a host passes to set a lookup selection.
// Build one with SelectID, SelectItem, SelectList or NoSelection.
type SelectionInput struct {
	kind  SelectionKind
	id    string
	items []ResultItem
}

// SelectID selects the item with the given id.
func SelectID(id string) SelectionInput {
	return SelectionInput{kind: SelectionByID, id: id}
}

// SelectItem selects a single item.
func SelectItem(item ResultItem) SelectionInput {
	return SelectionInput{kind: SelectionByItem, items: []ResultItem{item}}
}

// SelectList selects items in order.
func SelectList(items []ResultItem) SelectionInput {
	return SelectionInput{kind: SelectionByList, items: CloneResults(items)}
}

// NoSelection clears the selection.
func NoSelection() SelectionInput {
	return SelectionInput{kind: SelectionNone}
}

// Kind returns the input shape.
func (s SelectionInput) Kind() SelectionKind {
	return s.kind
}

// NormalizeSelection converts any SelectionInput into an ordered sequence.
// An id-only input becomes an item whose title is the id.
// Missing icons are defaulted.
func NormalizeSelection(in SelectionInput) []ResultItem {
	var items []ResultItem
	switch in.kind {
	case SelectionByID:
		if in.id == "" {
			return []ResultItem{}
		}
		items = []ResultItem{{ID: in.id, Title: in.id}}
	case SelectionByItem, SelectionByList:
		items = CloneResults(in.items)
	default:
		return []ResultItem{}
	}
	if items == nil {
		return []ResultItem{}
	}
	for i := range items {
		if items[i].Icon == "" {
			items[i].Icon = DefaultIcon
		}
	}
	return items
}
