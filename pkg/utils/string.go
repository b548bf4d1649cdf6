// Package utils provides common utility functions.
package utils

import (
	"strings"
	"unicode/utf8"
)

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// TrimWhitespace removes leading and trailing whitespace.
func (s *StringHelper) TrimWhitespace(str string) string {
	return strings.TrimSpace(str)
}

// NormalizeWhitespace replaces multiple whitespace with single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// LastField returns the last whitespace-separated token, or "" for blank input.
func (s *StringHelper) LastField(str string) string {
	fields := strings.Fields(str)
	if len(fields) == 0 {
		return ""
	}

	return fields[len(fields)-1]
}

// RuneLen returns the number of code points in str.
func (s *StringHelper) RuneLen(str string) int {
	return utf8.RuneCountInString(str)
}

// TruncateString truncates str to maxLength runes, appending "..." when cut.
func (s *StringHelper) TruncateString(str string, maxLength int) string {
	if utf8.RuneCountInString(str) <= maxLength {
		return str
	}

	return string([]rune(str)[:maxLength]) + "..."
}
