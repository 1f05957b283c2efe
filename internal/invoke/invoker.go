// In file: internal/invoke/invoker.go

// Package invoke is the client for the tool-execution service: the external,
// independently trusted system that actually performs tool calls. The gateway
// forwards the model's proposed call with a session-scoped credential and
// normalizes the service's result or error.
package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	executePath    = "/api/tool-execute"
	invokeTimeout  = 30 * time.Second
	maxDetailBytes = 4096
)

// ExecutionError reports a non-success response from the tool-execution
// service. The status code is propagated verbatim to the gateway's caller
// rather than collapsed to 500.
type ExecutionError struct {
	StatusCode int
	Detail     string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("tool-execution service returned status %d: %s", e.StatusCode, e.Detail)
}

// Result is the normalized outcome of a successful invocation. Payload is the
// decoded "result" field of the response body; a missing field yields a nil
// payload, not an error.
type Result struct {
	Payload any
}

// Invoker performs authenticated calls to the tool-execution service.
type Invoker struct {
	baseURL    string
	httpClient *http.Client
}

func NewInvoker(baseURL string) *Invoker {
	return &Invoker{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: invokeTimeout,
		},
	}
}

type executeRequest struct {
	ToolName  string          `json:"tool_name"`
	Arguments json.RawMessage `json:"arguments"`
}

type executeResponse struct {
	Result any `json:"result"`
}

// Invoke forwards one tool call to the service's single entry point. The
// credential rides in the Authorization header; argsJSON must be a JSON
// object string as produced by the model. Failures are not retried: an
// expired or mis-scoped credential is a hard authorization failure, and
// anything else aborts the request immediately.
func (iv *Invoker) Invoke(ctx context.Context, token, toolName, argsJSON string) (*Result, error) {
	if argsJSON == "" {
		argsJSON = "{}"
	}
	payload, err := json.Marshal(executeRequest{
		ToolName:  toolName,
		Arguments: json.RawMessage(argsJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool execution payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, iv.baseURL+executePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create tool execution request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := iv.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call tool-execution service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read tool-execution response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ExecutionError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(body),
		}
	}

	var execResp executeResponse
	if err := json.Unmarshal(body, &execResp); err != nil {
		return nil, fmt.Errorf("failed to parse tool-execution response: %w", err)
	}
	return &Result{Payload: execResp.Result}, nil
}

// extractDetail pulls a human-readable message out of an error body: the
// structured "detail" field when present, the raw body text otherwise.
func extractDetail(body []byte) string {
	var structured struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.Detail != "" {
		return structured.Detail
	}
	detail := strings.TrimSpace(string(body))
	if len(detail) > maxDetailBytes {
		detail = detail[:maxDetailBytes]
	}
	return detail
}
