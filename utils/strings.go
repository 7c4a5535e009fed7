package utils

import (
	"strings"
)

// AppendIfMissingIgnoreCase well append string to slice only if it is not there already. Comparison is case insensitive.
func AppendIfMissingIgnoreCase(slice []string, str string) []string {
	for _, s := range slice {
		if strings.EqualFold(s, str) {
			return slice
		}
	}
	return append(slice, str)
}

// IsOneOfIgnoreCase checks if string is present in slice of strings. Comparison is case insensitive.
func IsOneOfIgnoreCase(name string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

// SplitList splits comma separated list dropping empty elements.
func SplitList(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}
