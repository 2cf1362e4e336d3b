package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aisa-it/vaiz.go/internal/vaiz/mcp/logger"
	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/docnodes"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/aisa-it/vaiz.go/pkg/vaiz"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var docScopes = []string{string(models.KindProject), string(models.KindSpace), string(models.KindMember)}

var docsTools = []Tool{
	{
		mcp.NewTool(
			"get_documents",
			mcp.WithDescription("Get a list of documents filtered by scope (Space/Member/Project) and scope ID."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("kind",
				mcp.Required(),
				mcp.Description("Document scope: \"Project\", \"Space\", or \"Member\""),
				mcp.Enum(docScopes...),
			),
			mcp.WithString("kindId", mcp.Required(), mcp.Description("ID of the project/space/member")),
		),
		getDocuments,
	},
	{
		mcp.NewTool(
			"get_document",
			mcp.WithDescription("Get a specific document by its ID. Returns the document with its full content."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("documentId", mcp.Required(), mcp.Description("The document ID")),
		),
		getDocument,
	},
	{
		mcp.NewTool(
			"create_document",
			mcp.WithDescription("Create a new document in Vaiz. Returns the created document with its ID."),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("kind",
				mcp.Required(),
				mcp.Description("Document scope: \"Project\", \"Space\", or \"Member\""),
				mcp.Enum(docScopes...),
			),
			mcp.WithString("kindId", mcp.Required(), mcp.Description("ID of the project/space/member")),
			mcp.WithString("title", mcp.Required(), mcp.Description("Document title")),
			mcp.WithNumber("index", mcp.Required(), mcp.Description("Position in document list (use 0 for first position)")),
			mcp.WithString("parentDocumentId", mcp.Description("Optional parent document ID for nesting")),
		),
		createDocument,
	},
	{
		mcp.NewTool(
			"append_to_document",
			mcp.WithDescription("Append content to the end of an existing document. For task descriptions use append_json_document instead. Plain text/Markdown only."),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("documentId", mcp.Required(), mcp.Description("The document ID")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Plain text or Markdown content to append")),
		),
		appendToDocument,
	},
	{
		mcp.NewTool(
			"replace_document",
			mcp.WithDescription("Replace the entire content of an existing document. Plain text/Markdown only. For task descriptions prefer replace_json_document."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(true),
			mcp.WithString("documentId", mcp.Required(), mcp.Description("The document ID")),
			mcp.WithString("content", mcp.Required(), mcp.Description("Plain text or Markdown content to replace with")),
		),
		replaceDocument,
	},
	{
		mcp.NewTool(
			"replace_json_document",
			mcp.WithDescription("Replace document content with JSON structure. Use this for checklists, tables and other rich content. RECOMMENDED for task descriptions. See vaiz://guides/document-builders for node structure."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(true),
			mcp.WithString("documentId", mcp.Required(), mcp.Description("The document ID")),
			mcp.WithArray("content",
				mcp.Required(),
				mcp.Description("Array of document nodes (heading, paragraph, taskList, etc.) in proper JSON structure"),
				mcp.Items(map[string]interface{}{"type": "object"}),
			),
		),
		replaceJSONDocument,
	},
	{
		mcp.NewTool(
			"append_json_document",
			mcp.WithDescription("Append content to document using JSON structure. RECOMMENDED for task descriptions, plain text append does not work for task documents."),
			mcp.WithIdempotentHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("documentId", mcp.Required(), mcp.Description("The document ID")),
			mcp.WithArray("content",
				mcp.Required(),
				mcp.Description("Array of document nodes to append in proper JSON structure"),
				mcp.Items(map[string]interface{}{"type": "object"}),
			),
		),
		appendJSONDocument,
	},
	{
		mcp.NewTool(
			"get_document_content",
			mcp.WithDescription("Get the JSON content structure of a document. Works for task descriptions and standalone documents."),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithString("documentId", mcp.Required(), mcp.Description("The document ID (can be task description ID or standalone document ID)")),
		),
		getDocumentContent,
	},
}

func GetDocsTools(client *vaiz.Client) []server.ServerTool {
	return serverTools(client, docsTools)
}

func getDocuments(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "kind", "kindId"); res != nil {
		return res, nil
	}
	resp, err := client.GetDocuments(ctx, models.GetDocumentsRequest{
		Kind:   models.Kind(stringArg(args, "kind")),
		KindID: stringArg(args, "kindId"),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func getDocument(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "documentId"); res != nil {
		return res, nil
	}
	resp, err := client.GetDocument(ctx, stringArg(args, "documentId"))
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func createDocument(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "kind", "kindId", "title"); res != nil {
		return res, nil
	}
	index, ok := intArg(args, "index")
	if !ok {
		return apierrors.ErrInvalidRequest.WithFormattedMessage("index is required").MCPError(), nil
	}
	resp, err := client.CreateDocument(ctx, models.CreateDocumentRequest{
		Kind:             models.Kind(stringArg(args, "kind")),
		KindID:           stringArg(args, "kindId"),
		Title:            stringArg(args, "title"),
		Index:            index,
		ParentDocumentID: stringArg(args, "parentDocumentId"),
	})
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(resp)
}

func appendToDocument(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "documentId", "content"); res != nil {
		return res, nil
	}
	if err := client.AppendDocument(ctx, stringArg(args, "documentId"), stringArg(args, "content")); err != nil {
		return logger.Error(err), nil
	}
	return success("Content appended")
}

func replaceDocument(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "documentId", "content"); res != nil {
		return res, nil
	}
	if err := client.ReplaceDocument(ctx, stringArg(args, "documentId"), stringArg(args, "content")); err != nil {
		return logger.Error(err), nil
	}
	return success("Document replaced")
}

// contentNodes разбирает аргумент content в узлы документа
func contentNodes(args map[string]interface{}) ([]docnodes.Node, *mcp.CallToolResult) {
	raw, ok := args["content"].([]interface{})
	if !ok || len(raw) == 0 {
		return nil, apierrors.ErrInvalidRequest.WithFormattedMessage("content must be a non-empty array of nodes").MCPError()
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, apierrors.ErrInvalidDocument.WithFormattedMessage(err.Error()).MCPError()
	}
	nodes, err := docnodes.Decode(data)
	if err != nil {
		return nil, logger.Error(err)
	}
	return docnodes.AsNodes(nodes), nil
}

func replaceJSONDocument(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "documentId"); res != nil {
		return res, nil
	}
	nodes, res := contentNodes(args)
	if res != nil {
		return res, nil
	}
	if err := client.ReplaceJSONDocument(ctx, stringArg(args, "documentId"), nodes...); err != nil {
		return logger.Error(err), nil
	}
	return success(fmt.Sprintf("Document replaced with %d nodes", len(nodes)))
}

func appendJSONDocument(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "documentId"); res != nil {
		return res, nil
	}
	nodes, res := contentNodes(args)
	if res != nil {
		return res, nil
	}
	if err := client.AppendJSONDocument(ctx, stringArg(args, "documentId"), nodes...); err != nil {
		return logger.Error(err), nil
	}
	return success(fmt.Sprintf("Appended %d nodes", len(nodes)))
}

func getDocumentContent(ctx context.Context, client *vaiz.Client, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if res := required(args, "documentId"); res != nil {
		return res, nil
	}
	nodes, err := client.GetJSONDocument(ctx, stringArg(args, "documentId"))
	if err != nil {
		return logger.Error(err), nil
	}
	return mcp.NewToolResultJSON(nodes)
}
