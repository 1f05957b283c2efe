// In file: internal/llm/client.go

// Package llm wraps the two model operations the gateway needs: an initial
// turn with the tool catalog attached, and a follow-up turn that feeds a tool
// result back to the model. It also owns the conversation assembly between
// the two turns.
package llm

import (
	"context"
	"fmt"

	"github.com/toolbridge/gateway/internal/api"
	"github.com/toolbridge/gateway/internal/tools"

	"github.com/google/generative-ai-go/genai"
)

// Role represents the originator of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ToolResponse is the payload of a tool-result turn: the executed tool's
// name and its wrapped result, which the model associates with the call it
// issued in its prior turn.
type ToolResponse struct {
	Name    string
	Payload map[string]any
}

// Turn is one entry of the conversation handed to a follow-up model call.
// Exactly one of Text, ToolResponse, or Raw is set. Raw carries a model turn
// verbatim so any continuity markers the provider attached survive the
// round-trip.
type Turn struct {
	Role         Role
	Text         string
	ToolResponse *ToolResponse
	Raw          *genai.Content
}

// ModelTurn is the outcome of one model call.
type ModelTurn struct {
	// Text is the model's direct answer, empty when the model chose to
	// propose a tool call instead.
	Text string
	// ToolCalls are the calls the model proposed, in the order it emitted
	// them. The orchestration protocol honors at most one per turn.
	ToolCalls []*tools.ToolCall
	// Raw is the provider's turn content, kept verbatim for follow-up
	// conversation assembly.
	Raw   *genai.Content
	Usage api.Usage
}

// ProposedToolCall returns the first tool call of the turn, or nil when the
// model answered directly. Additional calls are dropped by the protocol;
// callers that care can inspect ToolCalls.
func (t *ModelTurn) ProposedToolCall() *tools.ToolCall {
	if len(t.ToolCalls) == 0 {
		return nil
	}
	return t.ToolCalls[0]
}

// ModelClient is the interface the orchestrator depends on.
type ModelClient interface {
	// Ask performs the first model turn. The full catalog is offered so the
	// model is free to answer directly instead of calling a tool.
	Ask(ctx context.Context, prompt string, catalog []tools.Tool) (*ModelTurn, error)

	// AskFollowUp performs the second model turn over the assembled
	// conversation. No tools are offered: the protocol forbids chained
	// tool calls.
	AskFollowUp(ctx context.Context, turns []Turn) (*ModelTurn, error)
}

// UpstreamError reports a failed or timed-out call to the model provider.
// The gateway surfaces it as a 500 and never retries.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API call failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
