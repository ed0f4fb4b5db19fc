// Package strutil has small string splitting and formatting helpers.
package strutil

import (
	"fmt"
	"strings"
)

// Split breaks s into fields separated by delim after turning every newline
// into a space. Empty fields are kept except for the one a trailing delimiter
// would produce, so "a,,b," yields ["a" "" "b"] and "" yields no fields.
func Split(s string, delim byte) []string {
	fields := make([]string, 0, strings.Count(s, string(delim))+1)
	SplitFunc(strings.ReplaceAll(s, "\n", " "), delim, func(field string) bool {
		fields = append(fields, field)

		return true
	})

	return fields
}

// SplitFunc calls yield for each field of s separated by delim until yield
// returns false. Unlike Split, newlines are left alone.
func SplitFunc(s string, delim byte, yield func(field string) bool) {
	for len(s) > 0 {
		i := strings.IndexByte(s, delim)
		if i < 0 {
			yield(s)
			return
		}
		if !yield(s[:i]) {
			return
		}
		s = s[i+1:]
	}
}

// Format is fmt.Sprintf.
func Format(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
