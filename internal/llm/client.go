package llm

import (
	"context"
)

type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EmbedderClient computes one fixed-dimension vector per input text,
// order-preserving, in a single request.
type EmbedderClient interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
