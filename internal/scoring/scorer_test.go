package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/shortlist-hq/shortlist/internal/embedding"
)

// countingEmbedder wraps an embedder and counts calls, to pin the
// one-reference-encode + one-batch-encode contract.
type countingEmbedder struct {
	inner      embedding.Embedder
	embedCalls int
	batchCalls int
	failBatch  bool
}

func (c *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	c.embedCalls++
	return c.inner.Embed(ctx, text)
}

func (c *countingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	c.batchCalls++
	if c.failBatch {
		return nil, errors.New("model unavailable")
	}
	return c.inner.EmbedBatch(ctx, texts)
}

func (c *countingEmbedder) Dimensions() int { return c.inner.Dimensions() }
func (c *countingEmbedder) Close() error    { return c.inner.Close() }

func TestScore_batchedEncodeCalls(t *testing.T) {
	ce := &countingEmbedder{inner: embedding.NewMockEmbedder(64)}
	s := NewScorer(ce)
	sims, err := s.Score(context.Background(), "backend engineer python sql",
		[]string{"python sql backend", "cooking recipes", "frontend designer"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if len(sims) != 3 {
		t.Fatalf("got %d similarities, want 3", len(sims))
	}
	if ce.embedCalls != 1 {
		t.Errorf("reference encode calls: got %d, want 1", ce.embedCalls)
	}
	if ce.batchCalls != 1 {
		t.Errorf("batch encode calls: got %d, want 1", ce.batchCalls)
	}
}

func TestScore_bounded(t *testing.T) {
	s := NewScorer(embedding.NewMockEmbedder(64))
	sims, err := s.Score(context.Background(), "reference text here",
		[]string{"reference text here", "totally different words entirely"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for i, sim := range sims {
		if sim < -1 || sim > 1 {
			t.Errorf("sims[%d] = %v out of [-1, 1]", i, sim)
		}
	}
	if sims[0] < 0.999 {
		t.Errorf("identical text similarity: got %v, want ~1", sims[0])
	}
}

func TestScore_emptyCandidates(t *testing.T) {
	ce := &countingEmbedder{inner: embedding.NewMockEmbedder(16)}
	s := NewScorer(ce)
	sims, err := s.Score(context.Background(), "reference", nil)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if len(sims) != 0 {
		t.Errorf("got %v, want empty", sims)
	}
	if ce.embedCalls != 0 || ce.batchCalls != 0 {
		t.Errorf("embedder touched for zero candidates: %d/%d calls", ce.embedCalls, ce.batchCalls)
	}
}

func TestScore_emptyTextCandidateScoresZero(t *testing.T) {
	// Zero-magnitude embedding must yield similarity 0, not NaN.
	s := NewScorer(embedding.NewMockEmbedder(16))
	sims, err := s.Score(context.Background(), "reference words", []string{"   "})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if sims[0] != 0 {
		t.Errorf("got %v, want 0 for degenerate candidate", sims[0])
	}
}

func TestScore_embedderFailurePropagates(t *testing.T) {
	ce := &countingEmbedder{inner: embedding.NewMockEmbedder(16), failBatch: true}
	s := NewScorer(ce)
	_, err := s.Score(context.Background(), "reference", []string{"candidate"})
	if err == nil {
		t.Fatal("expected error from failing embedder")
	}
}
