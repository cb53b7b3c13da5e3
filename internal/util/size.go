package util

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/apikit/internal/core/domain"
)

// FormatBytes renders n in IEC units ("1.5 KiB"), as response sizes are shown.
func FormatBytes(n uint64) string {
	return humanize.IBytes(n)
}

// FormatSize renders n in SI units ("1.5 kB").
func FormatSize(n uint64) string {
	return humanize.Bytes(n)
}

// ParseSize parses a human size such as "42 MB" or "1.5KiB".
func ParseSize(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, domain.ErrInvalidInput)
	}
	return n, nil
}
