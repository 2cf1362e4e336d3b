package resources

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	md "github.com/nao1215/markdown"
)

type ResourceHandler func(request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

type Resource struct {
	Resource mcp.Resource
	Handler  ResourceHandler
}

func WrapResource(handler ResourceHandler) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		slog.Debug("MCP resource read", "uri", request.Params.URI)
		return handler(request)
	}
}

func serverResources(resources []Resource) []server.ServerResource {
	var out []server.ServerResource
	for _, r := range resources {
		out = append(out, server.ServerResource{
			Resource: r.Resource,
			Handler:  WrapResource(r.Handler),
		})
	}
	return out
}

// markdownHandler рендерит справку при каждом чтении
func markdownHandler(build func(m *md.Markdown) *md.Markdown) ResourceHandler {
	return func(request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := render(build)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/markdown",
				Text:     text,
			},
		}, nil
	}
}

func render(build func(m *md.Markdown) *md.Markdown) (string, error) {
	var buf bytes.Buffer
	if err := build(md.NewMarkdown(&buf)).Build(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
