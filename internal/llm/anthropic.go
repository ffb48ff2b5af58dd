package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Iron-Ham/parley/internal/logging"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	anthropicMaxTokens      = 1024
)

// AnthropicProvider implements Provider for the Anthropic messages API.
// Unlike the OpenAI backend, failures here are logged and degrade to an
// empty response: the run continues and the round is recorded with zero
// convergence.
type AnthropicProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	log     *logging.Logger
}

// NewAnthropicProvider creates an Anthropic backend for the given model
// version.
func NewAnthropicProvider(apiKey, model string, log *logging.Logger) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultAnthropicBaseURL,
		client:  &http.Client{Timeout: 5 * time.Minute},
		log:     log,
	}
}

func (p *AnthropicProvider) Name() ProviderName { return ProviderAnthropic }

type anthropicRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// GenerateCompletion flattens the conversation into a single user message
// and sends it to the messages endpoint. On any failure it logs the cause
// and returns an empty string with a nil error.
func (p *AnthropicProvider) GenerateCompletion(ctx context.Context, messages []Message) (string, error) {
	// The messages API enforces strict role alternation, so the whole
	// conversation is collapsed into one role-prefixed user prompt.
	var prompt strings.Builder
	for _, msg := range messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		prompt.WriteString("\n\n")
		prompt.WriteString(strings.ToUpper(role))
		prompt.WriteString(": ")
		prompt.WriteString(msg.Content)
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     p.model,
		MaxTokens: anthropicMaxTokens,
		Messages:  []Message{{Role: "user", Content: prompt.String()}},
	})
	if err != nil {
		p.logError("encoding anthropic request", err)
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		p.logError("building anthropic request", err)
		return "", nil
	}
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logError("calling anthropic", err)
		return "", nil
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		p.logError("reading anthropic response", err)
		return "", nil
	}

	if resp.StatusCode != http.StatusOK {
		p.logError("anthropic api error",
			fmt.Errorf("status %d: %s", resp.StatusCode, respBody))
		return "", nil
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		p.logError("decoding anthropic response", err)
		return "", nil
	}

	if len(parsed.Content) == 0 {
		p.logError("anthropic response missing content", fmt.Errorf("body: %s", respBody))
		return "", nil
	}
	return parsed.Content[0].Text, nil
}

func (p *AnthropicProvider) logError(msg string, err error) {
	if p.log == nil {
		return
	}
	p.log.Error(msg, "error", err.Error(), "model", p.model)
}
