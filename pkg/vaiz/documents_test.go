package vaiz

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/docnodes"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONDocument(t *testing.T) {
	inner := `{"default":{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hi"}]}]}}`
	tests := []struct {
		name string
		resp any
		want []docnodes.RawNode
	}{
		{
			name: "payload json string",
			resp: map[string]any{"payload": map[string]any{"json": inner}},
			want: []docnodes.RawNode{{Kind: docnodes.TypeParagraph, Content: []docnodes.RawNode{{Kind: docnodes.TypeText, Text: "Hi"}}}},
		},
		{
			name: "payload content",
			resp: map[string]any{"payload": map[string]any{"content": []any{map[string]any{"type": "horizontalRule"}}}},
			want: []docnodes.RawNode{{Kind: docnodes.TypeHorizontalRule}},
		},
		{
			name: "top level content",
			resp: map[string]any{"content": []any{map[string]any{"type": "horizontalRule"}}},
			want: []docnodes.RawNode{{Kind: docnodes.TypeHorizontalRule}},
		},
		{
			name: "broken json",
			resp: map[string]any{"payload": map[string]any{"json": "{not json"}},
			want: []docnodes.RawNode{},
		},
		{
			name: "empty",
			resp: map[string]any{},
			want: []docnodes.RawNode{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, api := newTestClient(t, map[string]func(map[string]any) (int, any){
				"getJSONDocument": ok(tt.resp),
			})
			nodes, err := c.GetJSONDocument(context.Background(), "doc-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, nodes)
			assert.Equal(t, "doc-1", api.calls("getJSONDocument")[0].Body["documentId"])
		})
	}
}

func TestReplaceJSONDocument(t *testing.T) {
	c, api := newTestClient(t, map[string]func(map[string]any) (int, any){
		"replaceJSONDocument": ok(map[string]any{}),
		"appendJSONDocument":  ok(map[string]any{}),
	})

	nodes := []docnodes.Node{
		docnodes.Heading(1, "Title"),
		docnodes.Paragraph("Body ", docnodes.Text("bold", docnodes.Bold())),
		docnodes.EmbedBlock("https://gist.github.com/u/abc", models.EmbedGitHubGist),
	}
	require.NoError(t, c.ReplaceJSONDocument(context.Background(), "doc-1", nodes...))

	call := api.calls("replaceJSONDocument")[0]
	assert.Equal(t, "doc-1", call.Body["documentId"])
	assert.Contains(t, call.Raw, "<script")

	want, err := docnodes.Marshal(nodes...)
	require.NoError(t, err)
	got, err := json.Marshal(call.Body["content"])
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))

	require.NoError(t, c.AppendJSONDocument(context.Background(), "doc-1", docnodes.HorizontalRule()))
	assert.Len(t, api.calls("appendJSONDocument"), 1)

	err = c.AppendJSONDocument(context.Background(), "doc-1")
	assert.ErrorIs(t, err, apierrors.ErrInvalidDocument)
	err = c.ReplaceJSONDocument(context.Background(), "", docnodes.HorizontalRule())
	assert.ErrorIs(t, err, apierrors.ErrInvalidRequest)
}

func TestReplaceDocumentSanitizes(t *testing.T) {
	c, api := newTestClient(t, map[string]func(map[string]any) (int, any){
		"replaceDocument": ok(map[string]any{}),
		"appendDocument":  ok(map[string]any{}),
	})
	require.NoError(t, c.ReplaceDocument(context.Background(), "doc-1", `<p>ok</p><script>x()</script>`))
	assert.Equal(t, "<p>ok</p>", api.calls("replaceDocument")[0].Body["description"])

	require.NoError(t, c.AppendDocument(context.Background(), "doc-1", `<p onclick="x()">more</p>`))
	assert.Equal(t, "<p>more</p>", api.calls("appendDocument")[0].Body["content"])
}

func TestDocumentsCRUD(t *testing.T) {
	c, api := newTestClient(t, map[string]func(map[string]any) (int, any){
		"getDocument":    ok(map[string]any{"document": map[string]any{"id": "d1", "name": "Spec"}}),
		"getDocuments":   ok(map[string]any{"documents": []any{map[string]any{"id": "d1"}}, "total": 1}),
		"createDocument": ok(map[string]any{"document": map[string]any{"id": "d2"}}),
		"editDocument":   ok(map[string]any{"document": map[string]any{"id": "d2", "name": "New"}}),
		"getHistory":     ok(map[string]any{"histories": []any{map[string]any{"id": "h1"}}, "total": 1}),
	})
	ctx := context.Background()

	doc, err := c.GetDocument(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Spec", doc.Document.Name)

	docs, err := c.GetDocuments(ctx, models.GetDocumentsRequest{Kind: models.KindProject, KindID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, 1, docs.Total)

	_, err = c.GetDocuments(ctx, models.GetDocumentsRequest{Kind: models.KindProject})
	assert.ErrorIs(t, err, apierrors.ErrInvalidRequest)

	created, err := c.CreateDocument(ctx, models.CreateDocumentRequest{Kind: models.KindProject, KindID: "p1", Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "d2", created.Document.ID)
	body := api.calls("createDocument")[0].Body
	assert.Equal(t, float64(0), body["index"])

	edited, err := c.EditDocument(ctx, models.EditDocumentRequest{DocumentID: "d2", Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", edited.Document.Name)

	hist, err := c.GetDocumentHistory(ctx, models.GetDocumentHistoryRequest{DocumentID: "d1", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, hist.Histories, 1)
	hb := api.calls("getHistory")[0].Body
	assert.Equal(t, "Document", hb["kind"])
	assert.Equal(t, "d1", hb["kindId"])
	assert.Equal(t, float64(10), hb["limit"])
}

func TestGetDocumentNotFound(t *testing.T) {
	c, _ := newTestClient(t, map[string]func(map[string]any) (int, any){
		"getDocument": func(map[string]any) (int, any) {
			return http.StatusOK, map[string]any{"error": map[string]any{"code": "NotFound", "meta": map[string]any{"description": "Document not found"}}}
		},
	})
	_, err := c.GetDocument(context.Background(), "nope")
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
	assert.Contains(t, err.Error(), "Document not found")
}
