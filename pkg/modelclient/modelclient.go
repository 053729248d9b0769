// Package modelclient provides a nodetype.ModelInvoker backed by the
// OpenAI chat completions API. It is a concrete reference implementation;
// pkg/runtime and pkg/nodes depend only on the nodetype.ModelInvoker
// interface and never on this package.
package modelclient

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/weavegraph/weave/pkg/paramtype"
)

// Config configures the OpenAI-backed model invoker.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultConfig returns a Config using gpt-4o-mini with conservative defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:      apiKey,
		Model:       openai.GPT4oMini,
		Temperature: 0.7,
		MaxTokens:   1024,
	}
}

// Client invokes chat completions for the model_invoke node kind.
type Client struct {
	config Config
	api    *openai.Client
}

// New creates a Client. It returns an error if no API key is configured.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("modelclient: API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		config: cfg,
		api:    openai.NewClientWithConfig(clientConfig),
	}, nil
}

// Invoke sends prompt as a single user message and returns the first choice's
// content. params may override model, temperature and max_tokens per call.
func (c *Client) Invoke(ctx context.Context, prompt string, params map[string]paramtype.Value) (string, error) {
	model := c.config.Model
	temperature := c.config.Temperature
	maxTokens := c.config.MaxTokens

	if v, ok := params["model"]; ok {
		if s, ok := v.Payload.(string); ok && s != "" {
			model = s
		}
	}
	if v, ok := params["temperature"]; ok {
		if f, ok := v.Payload.(float64); ok {
			temperature = float32(f)
		}
	}
	if v, ok := params["max_tokens"]; ok {
		if f, ok := v.Payload.(float64); ok {
			maxTokens = int(f)
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("modelclient: chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("modelclient: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
