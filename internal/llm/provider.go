// Package llm implements the completion backends that power discussion
// participants. Each backend exposes the same capability: turn an ordered
// list of role-tagged messages into generated text.
//
// Two backends exist, selected by a string tag from configuration:
//
//   - "openai-chatgpt": the OpenAI chat-completions API. Transport or API
//     failures are returned as errors and abort the run.
//   - "anthropic-claude": the Anthropic messages API. Failures are logged
//     and degrade to an empty response, which the orchestrator records as
//     zero convergence and the run continues.
//
// The orchestration core tolerates either failure policy; the asymmetry
// is a property of the backends, not of the loop.
package llm

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/parley/internal/config"
	"github.com/Iron-Ham/parley/internal/errors"
	"github.com/Iron-Ham/parley/internal/logging"
)

// ProviderName identifies a supported completion backend.
type ProviderName string

const (
	ProviderOpenAI    ProviderName = "openai-chatgpt"
	ProviderAnthropic ProviderName = "anthropic-claude"
)

// Message is one role-tagged entry in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider generates a completion from an ordered message sequence.
// Implementations must tolerate arbitrary UTF-8 content lengths.
type Provider interface {
	Name() ProviderName

	// GenerateCompletion returns the generated text for the given
	// conversation. A nil error with an empty string is a valid result
	// and is treated upstream as a response with zero convergence.
	GenerateCompletion(ctx context.Context, messages []Message) (string, error)
}

// NewFromConfig builds a Provider for one configured model. An
// unsupported provider tag is a fatal configuration error.
func NewFromConfig(m config.Model, log *logging.Logger) (Provider, error) {
	switch ProviderName(m.Provider) {
	case ProviderOpenAI:
		return NewOpenAIProvider(m.APIKey, m.Version), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(m.APIKey, m.Version, log), nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownProvider, m.Provider)
	}
}
