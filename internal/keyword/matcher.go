// Package keyword checks required-term coverage in candidate text.
package keyword

import "strings"

// Match reports which of terms occur in text. Terms are expected to be
// normalized (lower-cased, trimmed) already; matching is a case-insensitive
// substring check against the whole text, so "art" matches inside "chart".
// matched preserves the order of terms, not order of appearance in text.
func Match(text string, terms []string) (matched []string, matchedCount, totalCount int) {
	totalCount = len(terms)
	if totalCount == 0 {
		return nil, 0, 0
	}
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	return matched, len(matched), totalCount
}
