// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage under ~/.lookup
//   - Watcher: fsnotify-based change notification for the config file
package file
