// In file: internal/llm/conversation_test.go
package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFollowUpOrdering(t *testing.T) {
	raw := &genai.Content{
		Role: "model",
		Parts: []genai.Part{genai.FunctionCall{
			Name: "get_google_calendar_events",
			Args: map[string]any{"date": "tomorrow"},
		}},
	}
	modelTurn := &ModelTurn{Raw: raw}
	payload := map[string]any{"events": []any{}}

	turns := BuildFollowUp("What's on my calendar tomorrow?", modelTurn, "get_google_calendar_events", payload)
	require.Len(t, turns, 3)

	// 1. The original user prompt.
	assert.Equal(t, RoleUser, turns[0].Role)
	assert.Equal(t, "What's on my calendar tomorrow?", turns[0].Text)
	assert.Nil(t, turns[0].Raw)

	// 2. The model's own turn, verbatim.
	assert.Equal(t, RoleModel, turns[1].Role)
	assert.Same(t, raw, turns[1].Raw)

	// 3. The tool result, wrapped and tagged with the tool's name.
	assert.Equal(t, RoleUser, turns[2].Role)
	require.NotNil(t, turns[2].ToolResponse)
	assert.Equal(t, "get_google_calendar_events", turns[2].ToolResponse.Name)
	assert.Equal(t, map[string]any{"result": payload}, turns[2].ToolResponse.Payload)
}

func TestBuildFollowUpNilResult(t *testing.T) {
	modelTurn := &ModelTurn{Raw: &genai.Content{Role: "model"}}

	turns := BuildFollowUp("search something", modelTurn, "search_the_web", nil)
	require.Len(t, turns, 3)
	assert.Equal(t, map[string]any{"result": nil}, turns[2].ToolResponse.Payload)
}
