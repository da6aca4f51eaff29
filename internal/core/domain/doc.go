// Package domain defines the core business entities for lookup.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ResultItem: A candidate shown in the lookup dropdown
//   - SelectionInput: Host-supplied initial selection in one of three shapes
//   - Record: A persisted candidate owned by a storage backend
//   - FieldError: A validation message that marks a lookup invalid
//   - NewRecordOption and PageReference: The "create new" affordance
//   - LookupSettings: Configuration attributes of a lookup
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
