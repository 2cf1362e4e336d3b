package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolHandler определяет сигнатуру функции-обработчика MCP инструмента.
// Получает контекст, клиент API Vaiz и параметры запроса.
type ToolHandler func(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Tool представляет MCP инструмент с его обработчиком.
type Tool struct {
	Tool    mcp.Tool
	Handler ToolHandler
}

// WrapTool оборачивает обработчик инструмента, передавая ему клиент и логируя длительность вызова.
func WrapTool(client *vaiz.Client, handler ToolHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := handler(ctx, client, request)
		slog.Debug("MCP tool call",
			"tool", request.Params.Name,
			"duration", time.Since(start),
			"isError", result != nil && result.IsError,
		)
		return result, err
	}
}

func serverTools(client *vaiz.Client, tools []Tool) []server.ServerTool {
	var resources []server.ServerTool
	for _, t := range tools {
		resources = append(resources, server.ServerTool{
			Tool:    t.Tool,
			Handler: WrapTool(client, t.Handler),
		})
	}
	return resources
}

// Definitions описания всех инструментов, используется в справочных ресурсах
func Definitions() []mcp.Tool {
	var defs []mcp.Tool
	for _, group := range [][]Tool{tasksTools, docsTools, commentsTools, spaceTools} {
		for _, t := range group {
			defs = append(defs, t.Tool)
		}
	}
	return defs
}

// required проверяет, что строковые аргументы заданы и не пусты
func required(args map[string]interface{}, keys ...string) *mcp.CallToolResult {
	var missing []string
	for _, k := range keys {
		if s, _ := args[k].(string); strings.TrimSpace(s) == "" {
			missing = append(missing, k)
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return apierrors.ErrInvalidRequest.WithFormattedMessage(missing[0] + " is required").MCPError()
	}
	return apierrors.ErrInvalidRequest.WithFormattedMessage(strings.Join(missing, ", ") + " are required").MCPError()
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

// stringsArg nil, если аргумент не передан, пустой срез для пустого массива
func stringsArg(args map[string]interface{}, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// firstStrings первый переданный массив из списка ключей
func firstStrings(args map[string]interface{}, keys ...string) []string {
	for _, k := range keys {
		if v := stringsArg(args, k); v != nil {
			return v
		}
	}
	return nil
}

// intArg числа из JSON приходят как float64
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	}
	return 0, false
}

func boolArg(args map[string]interface{}, key string) *bool {
	if v, ok := args[key].(bool); ok {
		return &v
	}
	return nil
}

func success(message string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(map[string]any{
		"success": true,
		"message": message,
	})
}
