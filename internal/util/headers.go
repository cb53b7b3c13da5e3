package util

import (
	"strings"

	"github.com/custodia-labs/apikit/internal/core/domain"
)

// FindHeader returns the first enabled header whose name equals name exactly.
func FindHeader(headers []domain.Header, name string) (domain.Header, bool) {
	for _, h := range headers {
		if !h.Disabled && h.Name == name {
			return h, true
		}
	}
	return domain.Header{}, false
}

// FindHeaderFold is FindHeader with case-insensitive name comparison.
// HTTP header names are case-insensitive; query parameters are not.
func FindHeaderFold(headers []domain.Header, name string) (domain.Header, bool) {
	for _, h := range headers {
		if !h.Disabled && strings.EqualFold(h.Name, name) {
			return h, true
		}
	}
	return domain.Header{}, false
}

// FilterHeaders returns every enabled header named name, in order.
func FilterHeaders(headers []domain.Header, name string, fold bool) []domain.Header {
	var out []domain.Header
	for _, h := range headers {
		if h.Disabled {
			continue
		}
		if h.Name == name || (fold && strings.EqualFold(h.Name, name)) {
			out = append(out, h)
		}
	}
	return out
}
