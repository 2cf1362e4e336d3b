package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/labstack/echo/v4"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.MCPServer {
	t.Helper()
	client, err := vaiz.NewClient(vaiz.Config{APIKey: "key", SpaceID: "space-1", BaseURL: "http://127.0.0.1:1"}, vaiz.WithRetryMax(0))
	require.NoError(t, err)
	return NewMCPServer(client)
}

// call отправляет JSON-RPC сообщение и возвращает поле result
func call(t *testing.T, srv *server.MCPServer, method string, params any) map[string]any {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	resp := srv.HandleMessage(context.Background(), msg)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Result map[string]any `json:"result"`
		Error  map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Nil(t, decoded.Error, string(raw))
	return decoded.Result
}

func initialize(t *testing.T, srv *server.MCPServer) map[string]any {
	return call(t, srv, "initialize", map[string]any{
		"protocolVersion": "2025-03-26",
		"clientInfo":      map[string]any{"name": "test", "version": "1"},
		"capabilities":    map[string]any{},
	})
}

func TestServerInitialize(t *testing.T) {
	srv := newTestServer(t)
	result := initialize(t, srv)

	info := result["serverInfo"].(map[string]any)
	assert.Equal(t, serverName, info["name"])
	assert.Equal(t, vaiz.Version(), info["version"])
	assert.Contains(t, result["instructions"], "clear_tasks_cache")
}

func TestServerListsTools(t *testing.T) {
	srv := newTestServer(t)
	initialize(t, srv)

	result := call(t, srv, "tools/list", map[string]any{})
	list := result["tools"].([]any)

	names := map[string]bool{}
	for _, item := range list {
		names[item.(map[string]any)["name"].(string)] = true
	}
	for _, name := range []string{"get_tasks", "replace_json_document", "add_reaction", "download_image", "get_space_history"} {
		assert.True(t, names[name], name)
	}
}

func TestServerCallTool(t *testing.T) {
	srv := newTestServer(t)
	initialize(t, srv)

	result := call(t, srv, "tools/call", map[string]any{
		"name":      "clear_tasks_cache",
		"arguments": map[string]any{},
	})
	content := result["content"].([]any)
	require.NotEmpty(t, content)
	assert.Contains(t, content[0].(map[string]any)["text"], "Tasks cache cleared successfully")

	result = call(t, srv, "tools/call", map[string]any{
		"name":      "get_task",
		"arguments": map[string]any{},
	})
	assert.Equal(t, true, result["isError"])
}

func TestServerReadsGuides(t *testing.T) {
	srv := newTestServer(t)
	initialize(t, srv)

	result := call(t, srv, "resources/list", map[string]any{})
	assert.Len(t, result["resources"], 8)

	result = call(t, srv, "resources/read", map[string]any{"uri": "vaiz://guides/quick-start"})
	contents := result["contents"].([]any)
	require.Len(t, contents, 1)
	text := contents[0].(map[string]any)["text"].(string)
	assert.True(t, strings.HasPrefix(text, "# Quick Start Guide"))
}

func TestHTTPHandler(t *testing.T) {
	e := echo.New()
	e.POST("/mcp", NewHTTPHandler(newTestServer(t)))

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","clientInfo":{"name":"test","version":"1"},"capabilities":{}}}`
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), serverName)
}
