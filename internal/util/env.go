package util

import (
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
)

// DefaultLocale is used when the environment names no usable locale.
var DefaultLocale = language.AmericanEnglish

// localeVars are consulted in POSIX precedence order.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Locale returns the user's locale from the environment as a BCP 47 tag.
func Locale() language.Tag {
	for _, key := range localeVars {
		if tag, ok := ParseLocale(os.Getenv(key)); ok {
			return tag
		}
	}
	return DefaultLocale
}

// ParseLocale converts a POSIX locale such as "de_DE.UTF-8@euro" into a tag.
// "C", "POSIX" and empty values are not locales.
func ParseLocale(s string) (language.Tag, bool) {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// WindowSize returns the width and height of the terminal on fd.
func WindowSize(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, errNotTerminal
	}
	return term.GetSize(fd)
}
