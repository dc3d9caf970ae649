// Package textproc implements find and replace over note content.
package textproc

import "strings"

// Span is a half-open byte range [Start, End) within a text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FindAll returns the spans of every non-overlapping occurrence of term in
// text, left to right. Matching is case-sensitive. An empty term matches nothing.
func FindAll(text, term string) []Span {
	spans := []Span{}
	if term == "" {
		return spans
	}

	offset := 0
	for {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return spans
		}
		start := offset + i
		end := start + len(term)
		spans = append(spans, Span{Start: start, End: end})
		offset = end
	}
}

// ReplaceAll replaces every non-overlapping occurrence of old with new and
// reports how many replacements were made.
func ReplaceAll(text, old, new string) (string, int) {
	if old == "" {
		return text, 0
	}
	n := strings.Count(text, old)
	if n == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, old, new), n
}
