package models

// ScoreRecord is the per-candidate output of a scoring run.
// Score is the cosine similarity to the reference scaled to percent
// (two decimals); negative values are possible and kept.
type ScoreRecord struct {
	Filename            string   `json:"filename"`
	Score               float64  `json:"score"`
	MatchedKeywords     []string `json:"matched_keywords"`
	MatchedKeywordCount int      `json:"matched_keywords_count"`
	TotalKeywords       int      `json:"total_keywords"`
	PhoneNumbers        []string `json:"phone_numbers"`
	Emails              []string `json:"emails"`
}

// NormalizeForJSON replaces nil slices with empty ones so the record
// marshals with [] instead of null.
func (r *ScoreRecord) NormalizeForJSON() {
	if r.MatchedKeywords == nil {
		r.MatchedKeywords = []string{}
	}
	if r.PhoneNumbers == nil {
		r.PhoneNumbers = []string{}
	}
	if r.Emails == nil {
		r.Emails = []string{}
	}
}
