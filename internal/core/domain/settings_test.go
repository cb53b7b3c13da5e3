package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDefaultAppSettings tests default settings values
func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.True(t, s.Search.SplitOnSpace)
	assert.False(t, s.Search.Loose)
	assert.Equal(t, DefaultSearchLimit, s.Search.Limit)
	assert.Equal(t, 200*time.Millisecond, s.Debounce.Delay)
}

// TestSearchSettings_Options tests conversion into search options
func TestSearchSettings_Options(t *testing.T) {
	s := SearchSettings{SplitOnSpace: true, Loose: true, Limit: 5}

	opts := s.Options()

	assert.True(t, opts.SplitOnSpace)
	assert.True(t, opts.Loose)
	assert.Equal(t, 5, opts.Limit)
	assert.Empty(t, opts.Kinds)
}
