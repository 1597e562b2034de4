// Package matcher checks input lines for containing the query - case-sensitive or case-insensitive
package matcher

import (
	"iter"
	"strings"
)

// Lines splits contents on '\n', dropping a preceding '\r'. Lines are substrings
// of contents; a trailing terminator doesn't produce an extra empty line.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := contents
		for rest != "" {
			line := rest
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
				line = strings.TrimSuffix(line, "\r")
			} else {
				rest = ""
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Search returns lines of contents containing query, in document order.
func Search(query, contents string) []string {
	result := []string{}
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive is Search over lowercased copies; matched lines are returned as-is.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	result := []string{}
	for line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

func Run(query, contents string, ignoreCase bool) []string {
	if ignoreCase { // IGNORE_CASE
		return SearchCaseInsensitive(query, contents)
	}
	return Search(query, contents)
}
