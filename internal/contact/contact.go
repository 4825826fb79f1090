// Package contact extracts phone numbers and email addresses from resume text.
package contact

import "regexp"

// phonePattern matches international and local phone-like runs: an optional
// leading +, then 7 to 15 characters of digits, hyphens, parentheses, and
// whitespace. It is a deliberate heuristic and will also match other numeric
// runs of that shape.
var phonePattern = regexp.MustCompile(`\+?[0-9\-()\s]{7,15}`)

// emailPattern matches common email addresses with a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Extract returns phone numbers and email addresses found in text, each in
// order of first occurrence. Duplicates are kept as found.
func Extract(text string) (phones, emails []string) {
	return phonePattern.FindAllString(text, -1), emailPattern.FindAllString(text, -1)
}
