// In file: internal/invoke/invoker_test.go
package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeSendsAuthenticatedRequest(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": {"events": ["Standup at 9am"]}}`))
	}))
	defer server.Close()

	invoker := NewInvoker(server.URL)
	result, err := invoker.Invoke(context.Background(), "tok-123", "get_google_calendar_events", `{"date":"tomorrow"}`)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/tool-execute", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	var body map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, "get_google_calendar_events", body["tool_name"])
	assert.Equal(t, map[string]any{"date": "tomorrow"}, body["arguments"])

	assert.Equal(t, map[string]any{"events": []any{"Standup at 9am"}}, result.Payload)
}

func TestInvokeMissingResultFieldIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "done"}`))
	}))
	defer server.Close()

	result, err := NewInvoker(server.URL).Invoke(context.Background(), "tok", "search_the_web", `{"query":"go"}`)
	require.NoError(t, err)
	assert.Nil(t, result.Payload)
}

func TestInvokeEmptyArgumentsDefaultToObject(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"result": null}`))
	}))
	defer server.Close()

	_, err := NewInvoker(server.URL).Invoke(context.Background(), "tok", "search_the_web", "")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, map[string]any{}, body["arguments"])
}

func TestInvokeStructuredErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"detail": "service unavailable"}`))
	}))
	defer server.Close()

	_, err := NewInvoker(server.URL).Invoke(context.Background(), "tok", "search_the_web", `{}`)
	require.Error(t, err)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, http.StatusServiceUnavailable, execErr.StatusCode)
	assert.Equal(t, "service unavailable", execErr.Detail)
}

func TestInvokeRawBodyFallbackDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded\n"))
	}))
	defer server.Close()

	_, err := NewInvoker(server.URL).Invoke(context.Background(), "tok", "search_the_web", `{}`)
	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, http.StatusBadGateway, execErr.StatusCode)
	assert.Equal(t, "upstream exploded", execErr.Detail)
}

func TestInvokeIsNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "boom"}`))
	}))
	defer server.Close()

	_, err := NewInvoker(server.URL).Invoke(context.Background(), "tok", "search_the_web", `{}`)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestInvokeMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewInvoker(server.URL).Invoke(context.Background(), "tok", "search_the_web", `{}`)
	require.Error(t, err)

	var execErr *ExecutionError
	assert.False(t, errors.As(err, &execErr), "a decode failure is not a tool-execution error")
}
