package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vokinneberg/ocean-query/internal/remote"
	"github.com/vokinneberg/ocean-query/internal/types"
)

func completionBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4.1-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal completion: %v", err)
	}
	return body
}

func TestClient_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		content     string
		wantErrAs   any
		wantAnswer  string
		wantSource  types.DataSource
		wantVarName string
	}{
		{
			name:        "plain JSON answer",
			status:      http.StatusOK,
			content:     `{"answer":"Chlorophyll peaks during the monsoon.","structured_query":{"variable":"chlorophyll_a","location":"Indian Ocean"}}`,
			wantAnswer:  "Chlorophyll peaks during the monsoon.",
			wantSource:  types.DataSourceRemote,
			wantVarName: "chlorophyll_a",
		},
		{
			name:       "fenced JSON answer",
			status:     http.StatusOK,
			content:    "```json\n{\"answer\":\"Salinity is about 35 PSU.\",\"data_source\":\"gemini\"}\n```",
			wantAnswer: "Salinity is about 35 PSU.",
			wantSource: "gemini",
		},
		{
			name:      "free text instead of JSON",
			status:    http.StatusOK,
			content:   "Sure! The ocean is big.",
			wantErrAs: new(*remote.ParseError),
		},
		{
			name:      "upstream failure",
			status:    http.StatusInternalServerError,
			wantErrAs: new(*remote.ProtocolError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/chat/completions" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_, _ = w.Write(completionBody(t, tt.content))
					return
				}
				_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			}))
			defer server.Close()

			client := NewClient("test-key", "gpt-4.1-mini", server.URL+"/", time.Second)
			got, err := client.Resolve(context.Background(), "chlorophyll in the Indian Ocean")

			if tt.wantErrAs != nil {
				if err == nil {
					t.Fatal("Resolve() expected error but got nil")
				}
				if !errors.As(err, tt.wantErrAs) {
					t.Errorf("Resolve() error = %T %v, want %T", err, err, tt.wantErrAs)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if got.Answer != tt.wantAnswer {
				t.Errorf("Resolve() Answer = %q, want %q", got.Answer, tt.wantAnswer)
			}
			if got.DataSource != tt.wantSource {
				t.Errorf("Resolve() DataSource = %q, want %q", got.DataSource, tt.wantSource)
			}
			if tt.wantVarName != "" {
				if got.StructuredQuery == nil || got.StructuredQuery.Variable == nil || *got.StructuredQuery.Variable != tt.wantVarName {
					t.Errorf("Resolve() StructuredQuery = %+v, want variable %q", got.StructuredQuery, tt.wantVarName)
				}
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no fence", content: `{"answer":"a"}`, want: `{"answer":"a"}`},
		{name: "json fence", content: "```json\n{\"answer\":\"a\"}\n```", want: `{"answer":"a"}`},
		{name: "bare fence", content: "```\n{\"answer\":\"a\"}\n```", want: `{"answer":"a"}`},
		{name: "surrounding space", content: "  {}  \n", want: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.content); got != tt.want {
				t.Errorf("stripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}
