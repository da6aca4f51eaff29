// Package backend provides driven.SearchBackend implementations and decorators.
//
//   - Records: searches a driven.RecordStore (SQLite or in-memory)
//   - Throttled: limits the rate of calls to another backend
//
// Remote backends live in subpackages (see backend/github).
package backend
