package ai

import "context"

// Client is the single round-trip surface to the upstream chat-completion
// provider. Implementations return the completion text, or an empty string
// when the upstream answered without usable content.
type Client interface {
	Chat(ctx context.Context, prompt string) (string, error)
}
