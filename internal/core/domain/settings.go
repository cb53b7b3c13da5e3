package domain

import "time"

// DefaultDebounceDelay is the quiet period a debouncer waits after the last
// call before flushing.
const DefaultDebounceDelay = 200 * time.Millisecond

// DefaultSearchLimit is the number of results shown when no limit is set.
const DefaultSearchLimit = 20

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// SplitOnSpace matches each query word separately.
	SplitOnSpace bool

	// Loose relaxes the every-word-must-match rule.
	Loose bool

	// Limit is the maximum number of results.
	Limit int
}

// Options converts the settings into per-search options.
func (s SearchSettings) Options() SearchOptions {
	return SearchOptions{
		MatchOptions: MatchOptions{
			SplitOnSpace: s.SplitOnSpace,
			Loose:        s.Loose,
		},
		Limit: s.Limit,
	}
}

// DebounceSettings holds event coalescing configuration.
type DebounceSettings struct {
	// Delay is the quiet period before a flush.
	Delay time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Search holds search behaviour settings.
	Search SearchSettings

	// Debounce holds debounce settings.
	Debounce DebounceSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Word splitting is on so "get users" finds "GET /api/users".
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			SplitOnSpace: true,
			Loose:        false,
			Limit:        DefaultSearchLimit,
		},
		Debounce: DebounceSettings{
			Delay: DefaultDebounceDelay,
		},
	}
}
