// Package pipeline orchestrates a scoring run: contact extraction, keyword
// coverage, batch semantic similarity, and stable ranking.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/shortlist-hq/shortlist/internal/contact"
	"github.com/shortlist-hq/shortlist/internal/keyword"
	"github.com/shortlist-hq/shortlist/internal/models"
	"github.com/shortlist-hq/shortlist/internal/scoring"
	"go.uber.org/zap"
)

// ErrEmptyReference is returned when the reference document has no usable text;
// no ranking is meaningful without one.
var ErrEmptyReference = errors.New("reference document has no usable text")

// Pipeline runs the full scoring flow for one request.
type Pipeline struct {
	scorer *scoring.Scorer
	logger *zap.Logger
}

// New creates a pipeline using the given scorer. logger may be nil.
func New(scorer *scoring.Scorer, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{scorer: scorer, logger: logger}
}

// Run scores candidates against ref and returns records sorted by score
// descending; candidates with equal scores keep their input order.
// Candidates with empty text are skipped (they produced no content at
// extraction time) and contribute no record. An empty surviving set returns
// an empty slice, not an error. An empty reference or an embedding failure
// fails the whole run.
func (p *Pipeline) Run(ctx context.Context, ref models.Reference, candidates []models.Candidate, spec models.KeywordSpec) ([]models.ScoreRecord, error) {
	if strings.TrimSpace(ref.Text) == "" {
		return nil, ErrEmptyReference
	}

	surviving := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Text) == "" {
			p.logger.Warn("candidate skipped: no extracted text", zap.String("name", c.Name))
			continue
		}
		surviving = append(surviving, c)
	}
	if len(surviving) == 0 {
		return []models.ScoreRecord{}, nil
	}

	// Per-candidate extraction is independent; fan out with index-aligned
	// slices so the original order survives.
	records := make([]models.ScoreRecord, len(surviving))
	texts := make([]string, len(surviving))
	var wg sync.WaitGroup
	for i, c := range surviving {
		wg.Add(1)
		go func(i int, c models.Candidate) {
			defer wg.Done()
			matched, matchedCount, totalCount := keyword.Match(c.Text, spec.Terms)
			phones, emails := contact.Extract(c.Text)
			records[i] = models.ScoreRecord{
				Filename:            c.Name,
				MatchedKeywords:     matched,
				MatchedKeywordCount: matchedCount,
				TotalKeywords:       totalCount,
				PhoneNumbers:        phones,
				Emails:              emails,
			}
			texts[i] = c.Text
		}(i, c)
	}
	wg.Wait()

	similarities, err := p.scorer.Score(ctx, ref.Text, texts)
	if err != nil {
		return nil, fmt.Errorf("similarity scoring failed: %w", err)
	}

	for i := range records {
		records[i].Score = roundPercent(similarities[i])
		records[i].NormalizeForJSON()
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	return records, nil
}

// roundPercent scales a raw similarity to percent with two-decimal precision.
// Negative similarities stay negative; they still sort correctly.
func roundPercent(similarity float64) float64 {
	return math.Round(similarity*10000) / 100
}
