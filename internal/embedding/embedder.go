// Package embedding provides text embedding via ONNX with a deterministic fallback.
package embedding

import "context"

// Embedder produces vector embeddings for text. One instance is constructed at
// process start, shared across requests, and closed at shutdown.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}
