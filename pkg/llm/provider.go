package llm

import "context"

// Provider is a single LLM backend capable of answering a prompt.
// Implementations own their HTTP shape and timeout; the gateway only sees
// the assistant text or an error.
type Provider interface {
	// Name identifies the provider in logs and persisted results
	Name() string

	// Available reports whether the provider is configured with a usable
	// credential. Unavailable providers are skipped, not treated as errors.
	Available() bool

	// Complete sends the prompt and returns the raw assistant content
	Complete(ctx context.Context, prompt string) (string, error)
}

// placeholder credentials that ship in .env.example and must not count as
// configured
var placeholderKeys = map[string]struct{}{
	"":                {},
	"your-groq-key":   {},
	"your-google-key": {},
	"changeme":        {},
}

// credentialUsable reports whether an API key is real
func credentialUsable(key string) bool {
	_, placeholder := placeholderKeys[key]
	return !placeholder
}
