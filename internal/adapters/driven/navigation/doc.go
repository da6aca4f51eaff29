// Package navigation provides driven.Navigator implementations.
//
//   - Recorder keeps every page reference it is asked to open (TUI host and tests)
//   - Browser turns a page reference into a URL and opens it in the system browser
package navigation
