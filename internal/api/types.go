// In file: internal/api/types.go

// Package api defines the JSON contract between the gateway and its callers,
// plus the shared usage-accounting type reported by model clients.
package api

// ProcessRequest is the body of POST /api/process.
type ProcessRequest struct {
	// UserPrompt is the caller's natural-language question. Required and non-empty.
	UserPrompt string `json:"user_prompt" binding:"required"`
}

// ProcessResponse is the success body of POST /api/process.
//
// Action is either the literal "Direct LLM Response" or a string naming the
// tool that was invoked on the caller's behalf. ToolResult is present only on
// the tool-mediated path and carries the tool service's raw result payload.
type ProcessResponse struct {
	Message    string  `json:"message"`
	Action     string  `json:"action"`
	ToolResult any     `json:"tool_result,omitempty"`
	LLMResult  *string `json:"llm_result"`
}

// ErrorResponse is the body of every non-2xx response from the gateway.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Usage holds token accounting for a single model turn.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another turn's usage into u.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}
