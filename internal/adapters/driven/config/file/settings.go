package file

import (
	"fmt"

	"github.com/custodia-labs/apikit/internal/core/domain"
	"github.com/custodia-labs/apikit/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeySearchSplitOnSpace = "search.split_on_space"
	KeySearchLoose        = "search.loose"
	KeySearchLimit        = "search.limit"
	KeyDebounceDelay      = "debounce.delay_ms"
)

// LoadSettings reads application settings from store.
// Missing or invalid values keep their defaults.
func LoadSettings(store driven.ConfigStore) domain.AppSettings {
	settings := domain.DefaultAppSettings()

	if v, ok := store.Get(KeySearchSplitOnSpace); ok {
		if b, ok := v.(bool); ok {
			settings.Search.SplitOnSpace = b
		}
	}
	settings.Search.Loose = store.GetBool(KeySearchLoose)
	if limit := store.GetInt(KeySearchLimit); limit > 0 {
		settings.Search.Limit = limit
	}
	if delay := store.GetDuration(KeyDebounceDelay); delay > 0 {
		settings.Debounce.Delay = delay
	}

	return settings
}

// SaveSettings writes settings to store.
func SaveSettings(store driven.ConfigStore, settings domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeySearchSplitOnSpace, settings.Search.SplitOnSpace},
		{KeySearchLoose, settings.Search.Loose},
		{KeySearchLimit, settings.Search.Limit},
		{KeyDebounceDelay, settings.Debounce.Delay.Milliseconds()},
	}
	for _, v := range values {
		if err := store.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}
