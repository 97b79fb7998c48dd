// Package store defines the durable key-value backing for conversation
// state: one JSON record per session with a sliding expiry, plus a single
// well-known key holding the shared system prompt.
package store

import (
	"context"
	"time"
)

// Store is the contract both drivers satisfy. Session payloads are opaque
// bytes so that record decoding (and repair of malformed records) stays with
// the caller.
type Store interface {
	// LoadSession returns the raw record for id, or nil when absent.
	LoadSession(ctx context.Context, id string) ([]byte, error)

	// SaveSession writes the record and resets its sliding expiry to ttl.
	SaveSession(ctx context.Context, id string, data []byte, ttl time.Duration) error

	// LoadPrompt returns the shared prompt, or "" when absent.
	LoadPrompt(ctx context.Context) (string, error)

	// SavePrompt overwrites the shared prompt. No expiry; last write wins.
	SavePrompt(ctx context.Context, text string) error

	// SeedPrompt writes text only if no prompt exists yet. Reports whether
	// the write happened.
	SeedPrompt(ctx context.Context, text string) (bool, error)

	Close() error
}
