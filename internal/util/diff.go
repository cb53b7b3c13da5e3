package util

import (
	"maps"
	"reflect"
)

// Diff returns the top-level keys whose values differ between old and updated.
// Keys missing from updated map to nil. Nested values are compared deeply
// but never diffed recursively.
func Diff(old, updated map[string]any) map[string]any {
	out := make(map[string]any)
	for k, v := range updated {
		if prev, ok := old[k]; !ok || !reflect.DeepEqual(prev, v) {
			out[k] = v
		}
	}
	for k := range old {
		if _, ok := updated[k]; !ok {
			out[k] = nil
		}
	}
	return out
}

// Patch applies a diff produced by Diff to a copy of base.
// A nil value deletes the key.
func Patch(base, diff map[string]any) map[string]any {
	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]any)
	}
	for k, v := range diff {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}
