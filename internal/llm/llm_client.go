package llm

import "context"

// CompletionClient is the boundary to the hosted completion service. The
// prompt goes in, the raw text of the model's reply comes out; everything else
// (transport, auth, model selection) lives behind the implementation.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
