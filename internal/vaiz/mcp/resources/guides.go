package resources

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aisa-it/vaiz.go/internal/vaiz/config"
	"github.com/aisa-it/vaiz.go/internal/vaiz/mcp/tools"
	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/docnodes"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	md "github.com/nao1215/markdown"
)

const (
	goCode   md.SyntaxHighlight = "go"
	jsonCode md.SyntaxHighlight = "json"
)

var guides = []Resource{
	guide("quick-start", "Quick Start Guide", "Get started with the Vaiz Go SDK quickly", quickStart),
	guide("environment-setup", "Environment Setup", "Environment variables of the SDK and MCP server", environmentSetup),
	guide("common-patterns", "Common Patterns", "Pagination, caching, and ID management patterns", commonPatterns),
	guide("working-with-documents", "Working with Documents", "Document hierarchies and content management", workingWithDocuments),
	guide("document-builders", "Document Builders", "Catalogue of document node builders with JSON examples", documentBuilders),
	guide("markdown-formatting", "Markdown Formatting Guide", "Formatting plain documents and comments", markdownFormatting),
	guide("error-handling", "Error Handling", "Error classes returned by the API and the SDK", errorHandling),
	guide("vaiz-mcp-usage", "Vaiz MCP Usage Guide", "How to use the Vaiz MCP server effectively", mcpUsage),
}

func GetGuidesResources() []server.ServerResource {
	return serverResources(guides)
}

func guide(slug, name, description string, build func(m *md.Markdown) *md.Markdown) Resource {
	return Resource{
		mcp.NewResource(
			"vaiz://guides/"+slug,
			name,
			mcp.WithResourceDescription(description),
			mcp.WithMIMEType("text/markdown"),
		),
		markdownHandler(build),
	}
}

func quickStart(m *md.Markdown) *md.Markdown {
	return m.H1("Quick Start Guide").
		H2("Installation").
		CodeBlocks(md.SyntaxHighlight("bash"), "go get github.com/aisa-it/vaiz.go").
		H2("Basic Usage").
		CodeBlocks(goCode, `client, err := vaiz.NewClient(vaiz.Config{
	APIKey:  os.Getenv("VAIZ_API_KEY"),
	SpaceID: os.Getenv("VAIZ_SPACE_ID"),
})
if err != nil {
	return err
}

tasks, err := client.GetTasks(ctx, models.GetTasksRequest{Limit: 10})
if err != nil {
	return err
}
for _, t := range tasks.Tasks {
	fmt.Println(t.Slug, t.Name)
}`).
		H2("Next Steps").
		BulletList(
			md.Code("vaiz://guides/working-with-documents")+" for document content",
			md.Code("vaiz://guides/document-builders")+" for rich task descriptions",
			md.Code("vaiz://guides/error-handling")+" for error classes",
		)
}

func environmentSetup(m *md.Markdown) *md.Markdown {
	var rows [][]string
	for _, v := range config.Variables() {
		def := v.Default
		if def == "" {
			def = "-"
		}
		rows = append(rows, []string{md.Code(v.Name), def, v.Description})
	}
	return m.H1("Environment Setup").
		PlainText("The MCP server reads its configuration from environment variables.").
		CustomTable(md.TableSet{
			Header: []string{"Variable", "Default", "Description"},
			Rows:   rows,
		}, md.TableOptions{AutoWrapText: false}).
		H2("Transport").
		BulletList(
			"Empty "+md.Code("MCP_HTTP_ADDR")+" runs the server over stdio, logs go to stderr",
			"Otherwise the streamable HTTP endpoint is served at "+md.Code("/mcp"),
			"Prometheus metrics are served at "+md.Code("/metrics")+" on "+md.Code("METRICS_ADDR"),
		)
}

func commonPatterns(m *md.Markdown) *md.Markdown {
	return m.H1("Common Patterns").
		H2("Pagination").
		PlainText(md.Code("get_tasks")+" returns at most 50 tasks per call. Use "+md.Code("limit")+" and "+md.Code("skip")+" to page through results.").
		CodeBlocks(goCode, `for skip := 0; ; skip += 50 {
	resp, err := client.GetTasks(ctx, models.GetTasksRequest{Limit: 50, Skip: skip})
	if err != nil {
		return err
	}
	if len(resp.Tasks) == 0 {
		break
	}
}`).
		H2("Caching").
		BulletList(
			"Task lists are cached per space and filter set",
			"Expired entries are purged every minute",
			"Call "+md.Code("clear_tasks_cache")+" after creating or editing tasks",
		).
		H2("IDs").
		BulletList(
			"Assignees use "+md.Code("Member.id")+" from "+md.Code("get_space_members")+", not "+md.Code("_id"),
			"Task tools accept the slug (TASK-123) or the database ID",
			"A task description is a document, its ID is "+md.Code("task.document"),
		)
}

func workingWithDocuments(m *md.Markdown) *md.Markdown {
	return m.H1("Working with Documents").
		H2("Scopes").
		PlainText("Documents belong to a Project, a Space or a Member. Nested documents reference "+md.Code("parentDocumentId")+".").
		H2("Content").
		BulletList(
			md.Code("replace_document")+" and "+md.Code("append_to_document")+" accept plain text or Markdown",
			md.Code("replace_json_document")+" and "+md.Code("append_json_document")+" accept an array of nodes",
			md.Code("get_document_content")+" returns the top level nodes of a document",
		).
		CodeBlocks(goCode, `err := client.ReplaceJSONDocument(ctx, task.Document,
	docnodes.Heading(2, "Checklist"),
	docnodes.TaskList("Write tests", docnodes.TaskItem("Ship", true)),
)`)
}

type builderExample struct {
	title string
	code  string
	node  docnodes.Node
}

func builderExamples() []builderExample {
	return []builderExample{
		{"Paragraph with marks", `docnodes.Paragraph("Plain ", docnodes.Text("bold", docnodes.Bold()), " and ", docnodes.Text("link", docnodes.Link("https://vaiz.com")))`,
			docnodes.Paragraph("Plain ", docnodes.Text("bold", docnodes.Bold()), " and ", docnodes.Text("link", docnodes.Link("https://vaiz.com")))},
		{"Heading", `docnodes.Heading(2, "Subtitle")`, docnodes.Heading(2, "Subtitle")},
		{"Bullet list", `docnodes.BulletList("First", "Second")`, docnodes.BulletList("First", "Second")},
		{"Ordered list", `docnodes.OrderedListFrom(3, "Third", "Fourth")`, docnodes.OrderedListFrom(3, "Third", "Fourth")},
		{"Task list", `docnodes.TaskList(docnodes.TaskItem("Todo", false), docnodes.TaskItem("Done", true))`,
			docnodes.TaskList(docnodes.TaskItem("Todo", false), docnodes.TaskItem("Done", true))},
		{"Table", `docnodes.Table(docnodes.TableRow(docnodes.TableHeader("Name"), docnodes.TableHeader("Status")), docnodes.TableRow("Task 1", "Done"))`,
			docnodes.Table(docnodes.TableRow(docnodes.TableHeader("Name"), docnodes.TableHeader("Status")), docnodes.TableRow("Task 1", "Done"))},
		{"Mention", `docnodes.Paragraph("See ", docnodes.MentionTask("65f0c1d2e3a4b5c6d7e8f901"))`,
			docnodes.Paragraph("See ", docnodes.MentionTask("65f0c1d2e3a4b5c6d7e8f901"))},
		{"Details", `docnodes.Details("Summary", "Hidden text")`, docnodes.Details("Summary", "Hidden text")},
		{"Code block", `docnodes.CodeBlock("fmt.Println(1)", "go")`, docnodes.CodeBlock("fmt.Println(1)", "go")},
		{"Embed", `docnodes.EmbedBlock("https://www.youtube.com/watch?v=dQw4w9WgXcQ", models.EmbedYouTube)`,
			docnodes.EmbedBlock("https://www.youtube.com/watch?v=dQw4w9WgXcQ", models.EmbedYouTube)},
		{"Table of contents", `docnodes.TocBlock()`, docnodes.TocBlock()},
	}
}

func documentBuilders(m *md.Markdown) *md.Markdown {
	m = m.H1("Document Builders").
		PlainText("Each builder in " + md.Code("pkg/docnodes") + " produces one node. The JSON below is what " + md.Code("replace_json_document") + " expects in " + md.Code("content") + ".")
	for _, ex := range builderExamples() {
		m = m.H2(ex.title).CodeBlocks(goCode, ex.code)
		if js, err := indentedJSON(ex.node); err == nil {
			m = m.CodeBlocks(jsonCode, js)
		}
	}
	return m
}

func indentedJSON(node docnodes.Node) (string, error) {
	data, err := docnodes.Marshal(node)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}

func markdownFormatting(m *md.Markdown) *md.Markdown {
	return m.H1("Markdown Formatting Guide").
		PlainText(md.Code("replace_document")+" and "+md.Code("append_to_document")+" store Markdown as is. HTML in comments is sanitized, scripts and event handlers are removed.").
		BulletList(
			md.Code("# Title")+" headings",
			md.Code("**bold**")+" and "+md.Code("_italic_"),
			md.Code("- item")+" lists and "+md.Code("1. item")+" numbered lists",
			md.Code("[text](https://vaiz.com)")+" links",
		).
		PlainText("For checklists, tables and mentions use the JSON tools, see " + md.Code("vaiz://guides/document-builders") + ".")
}

func errorHandling(m *md.Markdown) *md.Markdown {
	var rows [][]string
	for _, code := range apierrors.RemoteCodes() {
		class := (&apierrors.APIError{Code: code}).Class()
		rows = append(rows, []string{md.Code(code), md.Bold(fmt.Sprint(class.Code)), class.Err})
	}
	local := []apierrors.DefinedError{
		apierrors.ErrOptionNotFound,
		apierrors.ErrTaskRelationNotFound,
		apierrors.ErrMemberNotFound,
		apierrors.ErrInvalidOption,
		apierrors.ErrUnknownReaction,
		apierrors.ErrFileNotFound,
		apierrors.ErrInvalidRequest,
		apierrors.ErrInvalidDocument,
	}
	var localRows [][]string
	for _, e := range local {
		localRows = append(localRows, []string{md.Bold(fmt.Sprint(e.Code)), e.Err})
	}

	return m.H1("Error Handling").
		PlainText("Tool errors start with the error code in brackets, e.g. "+md.Code("[1003] resource not found: Task not found")+".").
		H2("API errors").
		CustomTable(md.TableSet{
			Header: []string{"API code", "Class", "Message"},
			Rows:   rows,
		}, md.TableOptions{AutoWrapText: false}).
		PlainText("Unknown API codes map to "+md.Bold(fmt.Sprint(apierrors.ErrSDK.Code))+". Network failures and unsuccessful statuses map to "+md.Bold(fmt.Sprint(apierrors.ErrHTTP.Code))+".").
		H2("SDK errors").
		CustomTable(md.TableSet{
			Header: []string{"Code", "Message"},
			Rows:   localRows,
		}, md.TableOptions{AutoWrapText: false}).
		H2("In Go").
		CodeBlocks(goCode, `_, err := client.GetTask(ctx, "TASK-1")
switch {
case errors.Is(err, apierrors.ErrNotFound):
	// нет такой задачи
case errors.Is(err, apierrors.ErrRateLimit):
	// повторить позже
}`)
}

func mcpUsage(m *md.Markdown) *md.Markdown {
	var rows [][]string
	for _, t := range tools.Definitions() {
		rows = append(rows, []string{md.Code(t.Name), t.Description})
	}
	return m.H1("Vaiz MCP Usage Guide").
		H2("Available Tools").
		CustomTable(md.TableSet{
			Header: []string{"Tool", "Description"},
			Rows:   rows,
		}, md.TableOptions{AutoWrapText: false}).
		H2("Tips").
		OrderedList(
			"Use Member.id for assignees (not _id)",
			"Images are deleted after download_image returns them",
			"Use the JSON document tools for task descriptions",
			"History entries reference creatorId, resolve it with get_space_members",
		)
}
