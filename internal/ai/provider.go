package ai

import "context"

// Message is one conversation turn as seen by a completion provider.
type Message struct {
	Role    string
	Content string
}

// Provider takes an ordered message list and returns a single best-effort
// reply. Implementations carry their own model and sampling configuration.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
