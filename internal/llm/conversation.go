// In file: internal/llm/conversation.go
package llm

// BuildFollowUp reconstructs the conversation for the second model turn:
//
//  1. the original user prompt,
//  2. the model's own prior turn, verbatim,
//  3. the tool result, tagged with the tool's name.
//
// The ordering is load-bearing. The model's turn passes through as raw
// content rather than being re-derived from text, so provider-internal
// continuity markers (thought signatures) survive; the result rides in a
// {"result": ...} envelope matching what the tool-execution service returned.
func BuildFollowUp(prompt string, modelTurn *ModelTurn, toolName string, result any) []Turn {
	return []Turn{
		{Role: RoleUser, Text: prompt},
		{Role: RoleModel, Raw: modelTurn.Raw},
		{
			Role: RoleUser,
			ToolResponse: &ToolResponse{
				Name:    toolName,
				Payload: map[string]any{"result": result},
			},
		},
	}
}
