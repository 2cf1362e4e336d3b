package mcp

import (
	"context"
	"log/slog"

	"github.com/aisa-it/vaiz.go/internal/vaiz/mcp/resources"
	"github.com/aisa-it/vaiz.go/internal/vaiz/mcp/tools"
	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/labstack/echo/v4"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// mcpInstructions содержит описание MCP сервера для LLM-моделей.
const mcpInstructions = `MCP сервер для работы с задачами, документами и комментариями Vaiz

## Структура данных

### Иерархия сущностей
- Space (пространство) → Project (проект) → Board (доска) → Task (задача)
- У доски есть группы (колонки) и типы задач
- Milestone (веха) принадлежит проекту и доске
- Описание задачи хранится в отдельном документе, его ID лежит в task.document

### Документы
- Документы принадлежат Project, Space или Member
- replace_document и append_to_document принимают текст или Markdown
- Для описаний задач используйте replace_json_document и append_json_document
- Структура узлов описана в ресурсе vaiz://guides/document-builders

### Приоритеты задач (priority)
- urgent, high — высокий (3)
- medium — средний (2)
- normal — обычный (1)
- low — низкий (0)

## Идентификаторы
- Задачи можно получать по slug (например: TASK-123) или по ID
- Для assignees используйте Member.id из get_space_members, а не _id
- Список задач кешируется на 5 минут, после изменений вызывайте clear_tasks_cache
`

const serverName = "vaiz-mcp"

// NewMCPServer создаёт MCP сервер поверх клиента API Vaiz.
func NewMCPServer(client *vaiz.Client) *server.MCPServer {
	hooks := &server.Hooks{}
	hooks.AddOnError(ErrorLoggerHook)

	srv := server.NewMCPServer(
		serverName,
		vaiz.Version(),
		server.WithInstructions(mcpInstructions),
		server.WithHooks(hooks),
		server.WithRecovery(),
	)
	srv.AddTools(tools.GetTasksTools(client)...)
	srv.AddTools(tools.GetDocsTools(client)...)
	srv.AddTools(tools.GetCommentsTools(client)...)
	srv.AddTools(tools.GetSpaceTools(client)...)

	srv.AddResources(resources.GetGuidesResources()...)
	return srv
}

// NewHTTPHandler streamable HTTP транспорт для echo
func NewHTTPHandler(srv *server.MCPServer) echo.HandlerFunc {
	httpServer := server.NewStreamableHTTPServer(srv)
	return func(c echo.Context) error {
		sessionCtx := context.WithValue(c.Request().Context(), remoteAddrKey{}, c.RealIP())
		httpServer.ServeHTTP(c.Response(), c.Request().WithContext(sessionCtx))
		return nil
	}
}

type remoteAddrKey struct{}

func ErrorLoggerHook(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
	remote, _ := ctx.Value(remoteAddrKey{}).(string)
	slog.Error("MCP Error", "remote", remote, "id", id, "method", method, "message", message, "err", err)
}
