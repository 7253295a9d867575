package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/vokinneberg/ocean-query/internal/remote"
	"github.com/vokinneberg/ocean-query/internal/types"
)

const defaultSystemPrompt = `You are an expert oceanographer answering questions about ocean data such as temperature, salinity, chlorophyll and ARGO floats.
Reply with ONLY a JSON object with these fields:
- "answer": a concise, informative answer for the user (required)
- "structured_query": {"variable": string or null, "location": string or null, "time_period": string or null, "additional_context": string}
Do not invent dataset identifiers or row counts. Return only the JSON, no explanations.`

// Resolve answers query with a chat completion shaped like the remote /query contract
func (c *Client) Resolve(ctx context.Context, query string) (types.QueryResult, error) {
	systemPrompt := defaultSystemPrompt

	// Try multiple possible paths
	promptPaths := []string{
		"prompts/system_prompt.txt",
		"../prompts/system_prompt.txt",
	}
	for _, path := range promptPaths {
		if p, err := loadPrompt(path); err == nil {
			systemPrompt = p
			break
		}
	}

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(query),
		},
		Temperature: param.Opt[float64]{Value: 0.3},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return types.QueryResult{}, &remote.ProtocolError{StatusCode: apiErr.StatusCode}
		}
		return types.QueryResult{}, &remote.NetworkError{Err: fmt.Errorf("failed to generate completion: %w", err)}
	}

	if len(res.Choices) == 0 {
		return types.QueryResult{}, &remote.ParseError{Err: errors.New("no choices in response")}
	}

	return remote.Decode([]byte(stripCodeFence(res.Choices[0].Message.Content)))
}

// stripCodeFence removes a surrounding ```json ... ``` block if present
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// loadPrompt loads a prompt from a file
func loadPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
