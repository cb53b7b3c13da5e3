// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - LoadSettings / SaveSettings: typed access to search and debounce settings
//   - LoadItems: reads searchable items from a TOML file
package file
