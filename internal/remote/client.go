package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vokinneberg/ocean-query/internal/types"
)

// maxBodySize caps how much of a remote response is read
const maxBodySize = 4 << 20

// Client sends queries to the remote /query backend
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for baseURL with a per-request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   strings.TrimRight(baseURL, "/") + "/query",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the full URL queries are posted to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Resolve makes a single attempt to answer query remotely
func (c *Client) Resolve(ctx context.Context, query string) (types.QueryResult, error) {
	jsonData, err := json.Marshal(QueryReq{Query: query})
	if err != nil {
		return types.QueryResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return types.QueryResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.QueryResult{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.QueryResult{}, &ProtocolError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return types.QueryResult{}, &NetworkError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return Decode(body)
}
