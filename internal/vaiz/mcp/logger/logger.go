package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/mark3labs/mcp-go/mcp"
)

// mcpError ошибки SDK, которые умеют превращаться в результат инструмента
type mcpError interface {
	error
	MCPError(hints ...string) *mcp.CallToolResult
}

// Error превращает ошибку SDK в результат инструмента с IsError.
// Неизвестные ошибки логируются с местом вызова и скрываются от модели.
func Error(err error, hints ...string) *mcp.CallToolResult {
	var definedErr mcpError
	if errors.As(err, &definedErr) {
		return definedErr.MCPError(hints...)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return mcp.NewToolResultError("request canceled")
	}
	slog.Error("MCP internal error", "file", getCallerFile(), "err", err)
	return mcp.NewToolResultError("internal error")
}

func getCallerFile() slog.Attr {
	_, path, no, ok := runtime.Caller(2)
	if !ok {
		return slog.Attr{}
	}
	_, file := filepath.Split(path)
	return slog.String("caller", fmt.Sprintf("%s:%d", file, no))
}
