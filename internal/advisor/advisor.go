// Package advisor generates assistant replies for the reference backend.
package advisor

import "context"

// Message is one prior conversation turn given to a provider for context.
type Message struct {
	Role    string
	Content string
}

// Provider defines the interface for reply generators.
type Provider interface {
	// Reply produces an assistant reply to message, given prior history.
	Reply(ctx context.Context, message string, history []Message) (string, error)
	// Name returns the name of this provider.
	Name() string
}
