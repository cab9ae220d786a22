package core

import "context"

type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
