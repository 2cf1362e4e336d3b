package tools

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc func(body map[string]any) (int, any)

// fakeVaiz отвечает на POST /{endpoint} и запоминает тела запросов
type fakeVaiz struct {
	mu       sync.Mutex
	bodies   map[string][]map[string]any
	handlers map[string]handlerFunc
}

func (f *fakeVaiz) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	endpoint := strings.TrimPrefix(r.URL.Path, "/")
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.bodies[endpoint] = append(f.bodies[endpoint], body)
	h, ok := f.handlers[endpoint]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	status, resp := h(body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeVaiz) last(endpoint string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := f.bodies[endpoint]
	if len(calls) == 0 {
		return nil
	}
	return calls[len(calls)-1]
}

func (f *fakeVaiz) count(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bodies[endpoint])
}

func reply(resp any) handlerFunc {
	return func(map[string]any) (int, any) { return http.StatusOK, resp }
}

func setupClient(t *testing.T, handlers map[string]handlerFunc) (*vaiz.Client, *fakeVaiz) {
	t.Helper()
	api := &fakeVaiz{bodies: map[string][]map[string]any{}, handlers: handlers}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client, err := vaiz.NewClient(
		vaiz.Config{APIKey: "test-key", SpaceID: "space-1", BaseURL: srv.URL},
		vaiz.WithRetryMax(0),
		vaiz.WithRetryWait(time.Millisecond, time.Millisecond),
	)
	require.NoError(t, err)
	return client, api
}

// createTestRequest создает MCP CallToolRequest с заданными аргументами
func createTestRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return content.Text
}

func decodeResult(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	require.False(t, result.IsError, resultText(t, result))
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), v))
}

func TestRequired(t *testing.T) {
	args := map[string]interface{}{"a": "x", "b": "  ", "c": 1}

	assert.Nil(t, required(args, "a"))

	res := required(args, "b")
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Equal(t, "[2007] invalid request: b is required", resultText(t, res))

	res = required(args, "a", "b", "c", "d")
	assert.Equal(t, "[2007] invalid request: b, c, d are required", resultText(t, res))
}

func TestArgHelpers(t *testing.T) {
	args := map[string]interface{}{
		"list":   []interface{}{"a", 1, "b"},
		"empty":  []interface{}{},
		"typed":  []string{"x"},
		"num":    float64(7),
		"flag":   false,
		"number": json.Number("12"),
	}

	assert.Equal(t, []string{"a", "b"}, stringsArg(args, "list"))
	assert.Equal(t, []string{}, stringsArg(args, "empty"))
	assert.Equal(t, []string{"x"}, stringsArg(args, "typed"))
	assert.Nil(t, stringsArg(args, "missing"))

	assert.Equal(t, []string{}, firstStrings(args, "missing", "empty", "list"))
	assert.Nil(t, firstStrings(args, "missing"))

	n, ok := intArg(args, "num")
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	n, ok = intArg(args, "number")
	assert.True(t, ok)
	assert.Equal(t, 12, n)
	_, ok = intArg(args, "flag")
	assert.False(t, ok)

	require.NotNil(t, boolArg(args, "flag"))
	assert.False(t, *boolArg(args, "flag"))
	assert.Nil(t, boolArg(args, "num"))
}

func TestDefinitions(t *testing.T) {
	want := []string{
		"get_tasks", "clear_tasks_cache", "get_task", "create_task", "edit_task", "set_task_blocker",
		"get_history", "get_task_history", "get_document_history", "get_project_history",
		"get_milestone_history", "get_member_history", "get_space_history",
		"get_documents", "get_document", "create_document", "append_to_document", "replace_document",
		"replace_json_document", "append_json_document", "get_document_content",
		"post_comment", "get_comments", "edit_comment", "delete_comment", "add_reaction",
		"get_projects", "get_project", "get_profile", "get_space", "get_space_members", "get_boards",
		"create_board_group", "edit_board_group", "create_board_type", "edit_board_type",
		"get_milestones", "create_milestone", "download_image",
	}

	var names []string
	for _, d := range Definitions() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Description, d.Name)
	}
	assert.ElementsMatch(t, want, names)
}
