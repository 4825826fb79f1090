// Package cli provides CLI output utilities for shortlist.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shortlist-hq/shortlist/internal/models"
	"github.com/shortlist-hq/shortlist/pkg/utils"
)

// OutputFormat is the format for score result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteScoreResults writes ranked score records to w in the given format.
func WriteScoreResults(w io.Writer, records []models.ScoreRecord, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		writeScoreResultsText(w, records)
		return nil
	}
}

func writeScoreResultsText(w io.Writer, records []models.ScoreRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No candidates scored.")
		return
	}
	fmt.Fprintf(w, "\nRanked %d candidate(s)\n\n", len(records))
	for i, r := range records {
		fmt.Fprintf(w, "%2d. %s: %.2f%% match\n", i+1, utils.Truncate(r.Filename, 60), r.Score)
		if r.TotalKeywords > 0 {
			kw := "none"
			if len(r.MatchedKeywords) > 0 {
				kw = strings.Join(r.MatchedKeywords, ", ")
			}
			fmt.Fprintf(w, "    keywords: %s (%d/%d)\n", kw, r.MatchedKeywordCount, r.TotalKeywords)
		}
		if len(r.PhoneNumbers) > 0 {
			fmt.Fprintf(w, "    phones:   %s\n", strings.Join(r.PhoneNumbers, ", "))
		}
		if len(r.Emails) > 0 {
			fmt.Fprintf(w, "    emails:   %s\n", strings.Join(r.Emails, ", "))
		}
	}
}
