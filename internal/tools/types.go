// In file: internal/tools/types.go

// Package tools defines the gateway's capability catalog: provider-agnostic
// declarations of the external capabilities the model may ask for. The gateway
// never executes a tool itself; declarations are shown to the model, and
// proposed calls are forwarded to the tool-execution service.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool declares one invocable capability to the model.
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function holds the name, description, and parameter schema of a capability.
// The description is what the model reads when deciding whether to call it.
type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"`
}

// JSONSchema is a structured subset of JSON Schema sufficient for declaring
// tool parameters. The top-level parameters node is always an "object".
type JSONSchema struct {
	Type        string                 `json:"type" yaml:"type"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required    []string               `json:"required,omitempty" yaml:"required,omitempty"`
}

// ToolCall is a request authored by the model to invoke one declared
// capability with specific arguments.
type ToolCall struct {
	// ID ties the tool result turn back to the call the model issued.
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction names the capability the model chose and carries its
// arguments as a JSON object string.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewFunctionTool builds a Tool with the standard "function" type.
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}
