// In file: cmd/gateway/handler.go
package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/toolbridge/gateway/internal/api"
	"github.com/toolbridge/gateway/internal/auth"
	"github.com/toolbridge/gateway/internal/cache"
	"github.com/toolbridge/gateway/internal/invoke"
	"github.com/toolbridge/gateway/internal/llm"
	"github.com/toolbridge/gateway/internal/tools"
	versionpkg "github.com/toolbridge/gateway/internal/version"

	"github.com/gin-gonic/gin"
)

const (
	actionDirect        = "Direct LLM Response"
	actionToolPrefix    = "Called tool service for tool: "
	messageDirect       = "Answer provided directly by LLM."
	messageToolMediated = "Tool executed via tool service, final answer generated by LLM."
	responseCachePrefix = "llmcache"
	staticIndexPath     = "static/index.html"
)

// GatewayHandler sequences one orchestration request: first model turn,
// then conditionally credential issuance, tool invocation, conversation
// reassembly, and the follow-up model turn. All dependencies are injected at
// construction; the handler itself holds no per-request state.
type GatewayHandler struct {
	model   llm.ModelClient
	issuer  *auth.Issuer
	invoker *invoke.Invoker
	catalog *tools.Catalog
	cache   *cache.ResponseCache
	config  *AppConfig
}

func NewGatewayHandler(model llm.ModelClient, issuer *auth.Issuer, invoker *invoke.Invoker, catalog *tools.Catalog, respCache *cache.ResponseCache, config *AppConfig) *GatewayHandler {
	return &GatewayHandler{
		model:   model,
		issuer:  issuer,
		invoker: invoker,
		catalog: catalog,
		cache:   respCache,
		config:  config,
	}
}

// HandleProcess is POST /api/process.
func (h *GatewayHandler) HandleProcess(c *gin.Context) {
	var req api.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid request: " + err.Error()})
		return
	}

	if h.config.ToolServiceURL == "" {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Server configuration is incomplete (TOOL_SERVICE_URL)."})
		return
	}

	ctx := c.Request.Context()
	log.Printf("--- New Request (Prompt: '%.40s...') ---", req.UserPrompt)

	// Only direct answers ever land in the cache, so a hit short-circuits
	// the whole pipeline without consuming a credential.
	cacheKey := versionpkg.GenerateVersionedCacheKey(responseCachePrefix, req.UserPrompt)
	if cachedVal, found := h.cache.Check(ctx, cacheKey); found {
		var cachedResp api.ProcessResponse
		if json.Unmarshal([]byte(cachedVal), &cachedResp) == nil {
			log.Println("✅ Cache HIT")
			c.JSON(http.StatusOK, cachedResp)
			return
		}
	}

	sessionID := auth.NewSessionID()

	turn, err := h.model.Ask(ctx, req.UserPrompt, h.catalog.Definitions())
	if err != nil {
		h.respondError(c, err)
		return
	}

	call := turn.ProposedToolCall()
	if call == nil {
		resp := api.ProcessResponse{
			Message:   messageDirect,
			Action:    actionDirect,
			LLMResult: &turn.Text,
		}
		h.cacheResponse(c, cacheKey, resp)
		c.JSON(http.StatusOK, resp)
		return
	}

	// Current contract: one tool call per turn. Anything beyond the first
	// is dropped, with a log line so the lost intent is visible.
	if extra := len(turn.ToolCalls) - 1; extra > 0 {
		log.Printf("WARNING: model proposed %d additional tool calls; honoring only %q", extra, call.Function.Name)
	}

	toolName := call.Function.Name
	log.Printf("🔧 Model decided to call tool: %s(%s)", toolName, call.Function.Arguments)

	if !h.catalog.Has(toolName) {
		log.Printf("Internal Error: model requested undeclared tool %q", toolName)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal Server Error: model requested an unknown tool."})
		return
	}

	token, err := h.issuer.Issue(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.invoker.Invoke(ctx, token, toolName, call.Function.Arguments)
	if err != nil {
		h.respondError(c, err)
		return
	}

	followUp := llm.BuildFollowUp(req.UserPrompt, turn, toolName, result.Payload)
	final, err := h.model.AskFollowUp(ctx, followUp)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.ProcessResponse{
		Message:    messageToolMediated,
		Action:     actionToolPrefix + toolName,
		ToolResult: result.Payload,
		LLMResult:  &final.Text,
	})
}

// respondError maps the error taxonomy onto HTTP responses. The tool
// service's own status code passes through verbatim; everything else is
// a 500 with a best-effort detail.
func (h *GatewayHandler) respondError(c *gin.Context, err error) {
	var execErr *invoke.ExecutionError
	var upstreamErr *llm.UpstreamError

	switch {
	case errors.As(err, &execErr):
		c.JSON(execErr.StatusCode, api.ErrorResponse{
			Detail: "Error communicating with tool service: " + execErr.Detail,
		})
	case errors.Is(err, auth.ErrSecretUnset):
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Detail: "Server configuration is incomplete (JWT_SECRET).",
		})
	case errors.As(err, &upstreamErr):
		log.Printf("Upstream model error: %v", upstreamErr)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: upstreamErr.Error()})
	default:
		log.Printf("Internal Error: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Internal Server Error: " + err.Error()})
	}
}

func (h *GatewayHandler) cacheResponse(c *gin.Context, key string, resp api.ProcessResponse) {
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Printf("WARNING: Failed to marshal response for caching: %v", err)
		return
	}
	h.cache.Set(c.Request.Context(), key, string(respBytes))
}

// HandleIndex is GET /, the static landing page.
func (h *GatewayHandler) HandleIndex(c *gin.Context) {
	index := filepath.Clean(staticIndexPath)
	if _, err := os.Stat(index); err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "index.html not found"})
		return
	}
	c.File(index)
}
