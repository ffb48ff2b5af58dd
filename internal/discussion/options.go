package discussion

import (
	"github.com/Iron-Ham/parley/internal/config"
	"github.com/Iron-Ham/parley/internal/llm"
	"github.com/Iron-Ham/parley/internal/logging"
)

// ProviderFactory builds a completion backend for one configured model.
type ProviderFactory func(m config.Model, log *logging.Logger) (llm.Provider, error)

// Option configures a Session at construction time.
type Option func(*sessionOptions)

type sessionOptions struct {
	providerFactory ProviderFactory
}

func defaultOptions() sessionOptions {
	return sessionOptions{
		providerFactory: llm.NewFromConfig,
	}
}

// WithProviderFactory overrides how participant backends are built.
// Tests use this to substitute scripted providers for real API clients.
func WithProviderFactory(factory ProviderFactory) Option {
	return func(o *sessionOptions) {
		o.providerFactory = factory
	}
}
