// Package models defines core data structures for candidates, references, and score records.
package models

import "strings"

// Candidate is one resume being scored, identified by its original filename.
// Text is the extracted plain text; a candidate with empty Text produced no
// usable content and is excluded from scoring.
type Candidate struct {
	Name string `json:"name"`
	Text string `json:"-"`
}

// Reference is the job description the candidates are scored against.
type Reference struct {
	Text string `json:"text"`
}

// KeywordSpec holds the normalized set of required terms.
type KeywordSpec struct {
	Terms []string `json:"terms"`
}

// ParseTerms builds a KeywordSpec from a raw comma-separated value.
// Terms are trimmed, lower-cased, empty entries dropped, and duplicates
// removed keeping first-seen order.
func ParseTerms(raw string) KeywordSpec {
	var terms []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return KeywordSpec{Terms: terms}
}
