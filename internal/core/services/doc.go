// Package services implements the driving port interfaces.
//
// It holds the two in-process building blocks of apikit:
//
//   - FuzzyRanker: multi-term fuzzy matching used to rank search results
//   - KeyedDebouncer / Debouncer: coalesce bursts of calls into one callback
//
// plus SearchService, which ranks items with the FuzzyRanker.
//
// Services are pure Go with no CGO and no I/O.
package services
