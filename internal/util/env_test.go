package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLocale tests POSIX locale parsing
func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"en_US.UTF-8", "en-US", true},
		{"de_DE@euro", "de-DE", true},
		{"fr", "fr", true},
		{"C", "", false},
		{"POSIX", "", false},
		{"", "", false},
		{"C.UTF-8", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, ok := ParseLocale(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, tag.String())
			}
		})
	}
}

// TestLocale_Precedence tests LC_ALL wins over LANG
func TestLocale_Precedence(t *testing.T) {
	t.Setenv("LC_ALL", "ja_JP.UTF-8")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")

	assert.Equal(t, "ja-JP", Locale().String())
}

// TestLocale_Default tests the fallback locale
func TestLocale_Default(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "C")

	assert.Equal(t, DefaultLocale, Locale())
}

// TestWindowSize_NotTerminal tests a regular file is rejected
func TestWindowSize_NotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	defer f.Close()

	_, _, err = WindowSize(int(f.Fd()))
	assert.Error(t, err)
}
