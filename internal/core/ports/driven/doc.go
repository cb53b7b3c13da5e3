// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ConfigStore: Application configuration (TOML file)
//   - Clipboard: Host clipboard access
//   - Watcher: Debounced file change notifications for a workspace
//
// None of them are needed by the fuzzy ranker or the debouncers, which are
// pure in-process components.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
