// Package validation provides input validation utilities
package validation

import (
	"sort"
	"strings"
)

// FieldErrors collects every violated field of an input, keyed by field name.
// The whole input is accepted or rejected; a non-empty map means rejected.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

func inSet(value string, options []string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func optionList(options []string) string {
	return strings.Join(options, ", ")
}
