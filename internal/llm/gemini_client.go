// In file: internal/llm/gemini_client.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/toolbridge/gateway/internal/tools"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements ModelClient against Google's Gemini models.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

var _ ModelClient = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelName: modelName}, nil
}

// Close releases the underlying API connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Ask performs the first model turn with the tool catalog attached.
func (c *GeminiClient) Ask(ctx context.Context, prompt string, catalog []tools.Tool) (*ModelTurn, error) {
	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	model := c.newModel()
	if len(catalog) > 0 {
		model.Tools = toGeminiTools(catalog)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &UpstreamError{Provider: "gemini", Err: err}
	}
	return parseModelTurn(resp)
}

// AskFollowUp replays the assembled conversation and sends its final turn.
// No tools are attached, so the model cannot chain another tool call.
func (c *GeminiClient) AskFollowUp(ctx context.Context, turns []Turn) (*ModelTurn, error) {
	if len(turns) == 0 {
		return nil, errors.New("follow-up conversation is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	model := c.newModel()
	chat := model.StartChat()
	chat.History = turnsToContents(turns[:len(turns)-1])

	last := toGeminiContent(turns[len(turns)-1])
	resp, err := chat.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, &UpstreamError{Provider: "gemini", Err: err}
	}
	return parseModelTurn(resp)
}

// newModel builds a fresh GenerativeModel per call. The SDK model value
// carries mutable tool/config state, so sharing one across concurrent
// requests would race.
func (c *GeminiClient) newModel() *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.modelName)
	model.SetMaxOutputTokens(defaultMaxOutputTokens)
	return model
}

// toGeminiTools converts catalog declarations to the Gemini SDK's format.
func toGeminiTools(catalog []tools.Tool) []*genai.Tool {
	declarations := make([]*genai.FunctionDeclaration, 0, len(catalog))
	for _, t := range catalog {
		declarations = append(declarations, &genai.FunctionDeclaration{
			Name:        t.Function.Name,
			Description: t.Function.Description,
			Parameters:  convertSchema(t.Function.Parameters),
		})
	}
	return []*genai.Tool{{FunctionDeclarations: declarations}}
}

// convertSchema converts our JSONSchema to the Gemini SDK's schema type.
func convertSchema(s tools.JSONSchema) *genai.Schema {
	schema := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case "object":
		schema.Type = genai.TypeObject
	case "string":
		schema.Type = genai.TypeString
	case "number":
		schema.Type = genai.TypeNumber
	case "integer":
		schema.Type = genai.TypeInteger
	case "boolean":
		schema.Type = genai.TypeBoolean
	case "array":
		schema.Type = genai.TypeArray
	}
	if s.Properties != nil {
		schema.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			schema.Properties[name] = convertSchema(*prop)
		}
	}
	return schema
}

// toGeminiContent converts one conversation turn to SDK content. Raw turns
// pass through untouched.
func toGeminiContent(turn Turn) *genai.Content {
	if turn.Raw != nil {
		return turn.Raw
	}
	content := &genai.Content{Role: string(turn.Role)}
	if turn.ToolResponse != nil {
		content.Parts = []genai.Part{genai.FunctionResponse{
			Name:     turn.ToolResponse.Name,
			Response: turn.ToolResponse.Payload,
		}}
		return content
	}
	content.Parts = []genai.Part{genai.Text(turn.Text)}
	return content
}

func turnsToContents(turns []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		contents = append(contents, toGeminiContent(turn))
	}
	return contents
}

// parseModelTurn converts a Gemini response into our internal ModelTurn.
func parseModelTurn(resp *genai.GenerateContentResponse) (*ModelTurn, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, &UpstreamError{Provider: "gemini", Err: errors.New("no content returned")}
	}

	candidate := resp.Candidates[0]
	var contentBuilder strings.Builder
	var toolCalls []*tools.ToolCall

	for _, part := range candidate.Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			contentBuilder.WriteString(string(v))
		case genai.FunctionCall:
			args, err := json.Marshal(v.Args)
			if err != nil {
				log.Printf("WARNING: could not marshal tool call args for %s: %v", v.Name, err)
				continue
			}
			toolCalls = append(toolCalls, &tools.ToolCall{
				ID:   fmt.Sprintf("gemini-toolcall-%s", v.Name),
				Type: tools.ToolTypeFunction,
				Function: tools.ToolCallFunction{
					Name:      v.Name,
					Arguments: string(args),
				},
			})
		}
	}

	turn := &ModelTurn{
		Text:      strings.TrimSpace(contentBuilder.String()),
		ToolCalls: toolCalls,
		Raw:       candidate.Content,
	}
	if resp.UsageMetadata != nil {
		turn.Usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		turn.Usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		turn.Usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return turn, nil
}
