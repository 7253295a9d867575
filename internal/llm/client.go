package llm

import (
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps OpenAI client and answers oceanographic queries
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new LLM client. An empty baseURL keeps the SDK default.
// The SDK retry loop is disabled: the dispatcher makes exactly one attempt.
func NewClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &Client{
		client: &client,
		model:  model,
	}
}
