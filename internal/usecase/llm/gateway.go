package llm

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/pkg/llm"
)

const (
	// minTranscriptChars and minTranscriptWords gate extraction before any
	// provider is called
	minTranscriptChars = 50
	minTranscriptWords = 20

	// providerCallTimeout bounds each individual provider attempt
	providerCallTimeout = 30 * time.Second
)

// Gateway owns provider selection, per-call timeouts and the fallback-to-mock
// policy. Given a transcript it always returns a structured result unless the
// transcript itself fails the input gate.
type Gateway struct {
	providers  []llm.Provider
	normalizer *Normalizer
	fallback   *MockFallback
	logger     *zap.Logger
	now        func() time.Time
}

// NewGateway constructs a Gateway over an ordered provider chain. Providers
// are attempted in slice order; unavailable ones are skipped at call time.
func NewGateway(providers []llm.Provider, logger *zap.Logger) *Gateway {
	return &Gateway{
		providers:  providers,
		normalizer: NewNormalizer(),
		fallback:   NewMockFallback(),
		logger:     logger,
		now:        time.Now,
	}
}

// Extract runs the provider chain over a transcript and returns the
// normalized result. Provider failures are logged and the next provider is
// tried; when every provider is unavailable or fails, the deterministic mock
// result is returned. The only error is ErrTranscriptTooShort.
func (g *Gateway) Extract(ctx context.Context, transcript string) (*entities.ExtractionResult, error) {
	trimmed := strings.TrimSpace(transcript)
	if len(trimmed) < minTranscriptChars || len(strings.Fields(trimmed)) < minTranscriptWords {
		return nil, entities.ErrTranscriptTooShort
	}

	prompt := BuildPrompt(transcript, g.now())

	for _, provider := range g.providers {
		if !provider.Available() {
			g.logger.Debug("skipping unavailable provider", zap.String("provider", provider.Name()))
			continue
		}

		result, err := g.attempt(ctx, provider, prompt)
		if err != nil {
			g.logger.Error("provider attempt failed",
				zap.String("provider", provider.Name()),
				zap.Error(err))
			continue
		}

		g.logger.Info("transcript processed",
			zap.String("provider", provider.Name()),
			zap.Int("action_items", len(result.ActionItems)))
		return result, nil
	}

	g.logger.Warn("no provider available or all failed, using mock fallback")
	return g.fallback.Generate(transcript), nil
}

// attempt runs a single provider call under its own timeout and normalizes
// the reply
func (g *Gateway) attempt(ctx context.Context, provider llm.Provider, prompt string) (*entities.ExtractionResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, providerCallTimeout)
	defer cancel()

	raw, err := provider.Complete(callCtx, prompt)
	if err != nil {
		return nil, err
	}

	result := g.normalizer.Normalize(raw)
	result.Provider = provider.Name()
	return result, nil
}
