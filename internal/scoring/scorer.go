// Package scoring computes semantic similarity of candidate texts against a reference.
package scoring

import (
	"context"
	"fmt"

	"github.com/shortlist-hq/shortlist/internal/embedding"
	"github.com/shortlist-hq/shortlist/internal/vector"
)

// Scorer scores candidate texts against a reference text using an injected
// embedding backend.
type Scorer struct {
	embedder embedding.Embedder
}

// NewScorer creates a scorer backed by the given embedder.
func NewScorer(embedder embedding.Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Score returns the cosine similarity of each candidate text to referenceText,
// index-aligned with candidateTexts. The reference is encoded with one Embed
// call and all candidates with one EmbedBatch call; per-candidate encode calls
// would multiply the model's per-call overhead and are deliberately avoided.
// An empty candidate slice returns an empty result without touching the embedder.
func (s *Scorer) Score(ctx context.Context, referenceText string, candidateTexts []string) ([]float64, error) {
	if len(candidateTexts) == 0 {
		return []float64{}, nil
	}

	refEmbedding, err := s.embedder.Embed(ctx, referenceText)
	if err != nil {
		return nil, fmt.Errorf("embed reference: %w", err)
	}
	candidateEmbeddings, err := s.embedder.EmbedBatch(ctx, candidateTexts)
	if err != nil {
		return nil, fmt.Errorf("embed candidates: %w", err)
	}
	if len(candidateEmbeddings) != len(candidateTexts) {
		return nil, fmt.Errorf("embedder returned %d embeddings for %d texts",
			len(candidateEmbeddings), len(candidateTexts))
	}

	similarities := make([]float64, len(candidateEmbeddings))
	for i, emb := range candidateEmbeddings {
		similarities[i] = vector.Cosine(refEmbedding, emb)
	}
	return similarities, nil
}
