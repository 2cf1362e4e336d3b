package docnodes

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUID(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		uid := NewUID()
		require.Len(t, uid, UIDLength)
		for _, r := range uid {
			assert.True(t, strings.ContainsRune(uidAlphabet, r), "unexpected rune %q", r)
		}
		seen[uid] = struct{}{}
	}
	// коллизии возможны, но на такой выборке не ожидаются
	assert.Greater(t, len(seen), 990)
}

func TestText(t *testing.T) {
	tests := []struct {
		name      string
		node      *TextNode
		wantText  string
		wantMarks []Mark
	}{
		{
			name:     "empty text becomes space",
			node:     Text(""),
			wantText: " ",
		},
		{
			name:     "plain",
			node:     Text("hello"),
			wantText: "hello",
		},
		{
			name:     "marks in fixed order",
			node:     Text("x", Link("https://vaiz.com"), Code(), Italic(), Bold()),
			wantText: "x",
			wantMarks: []Mark{
				{Type: MarkBold},
				{Type: MarkItalic},
				{Type: MarkCode},
				{Type: MarkLink, Attrs: &LinkAttrs{Href: "https://vaiz.com", Target: "_blank"}},
			},
		},
		{
			name:      "link text with target",
			node:      LinkText("docs", "https://vaiz.com/docs", "_self", true, false),
			wantText:  "docs",
			wantMarks: []Mark{{Type: MarkBold}, {Type: MarkLink, Attrs: &LinkAttrs{Href: "https://vaiz.com/docs", Target: "_self"}}},
		},
		{
			name:      "positional form defaults target",
			node:      FormattedText("", false, true, false, "https://a.b", ""),
			wantText:  " ",
			wantMarks: []Mark{{Type: MarkItalic}, {Type: MarkLink, Attrs: &LinkAttrs{Href: "https://a.b", Target: "_blank"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.node.raw()
			assert.Equal(t, TypeText, raw.Kind)
			assert.Equal(t, tt.wantText, raw.Text)
			assert.Equal(t, tt.wantMarks, raw.Marks)
		})
	}
}

func TestTextWithoutMarksOmitsField(t *testing.T) {
	b, err := json.Marshal(Text("a"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","text":"a"}`, string(b))
}

func TestParagraphAndContainers(t *testing.T) {
	p := Paragraph("a", Text("b", Bold()))
	raw := p.raw()
	require.Len(t, raw.Content, 2)
	assert.Equal(t, TypeText, raw.Content[0].Kind)
	assert.Equal(t, "a", raw.Content[0].Text)
	assert.Equal(t, MarkBold, raw.Content[1].Marks[0].Type)

	b, err := json.Marshal(Paragraph())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"paragraph"}`, string(b))

	bq := Blockquote("quote").raw()
	require.Len(t, bq.Content, 1)
	assert.Equal(t, TypeParagraph, bq.Content[0].Kind)

	assert.Equal(t, TypeText, DetailsSummary("s").raw().Content[0].Kind)
	assert.Equal(t, TypeParagraph, DetailsContent("c").raw().Content[0].Kind)
}

func TestUnsupportedChildSkipped(t *testing.T) {
	p := Paragraph("a", 42, struct{}{}, "b")
	assert.Len(t, p.Content, 2)
}

func TestNilChildSkipped(t *testing.T) {
	var nilParagraph *ParagraphNode
	tests := []struct {
		name string
		node Node
		want int
	}{
		{"blockquote", Blockquote(nilParagraph, "a"), 1},
		{"paragraph", Paragraph((*TextNode)(nil)), 0},
		{"bullet list", BulletList((*ListItemNode)(nil), "a"), 1},
		{"task list", TaskList((*TaskItemNode)(nil)), 0},
		{"table row", TableRow((*TableCellNode)(nil), "a"), 1},
		{"table", Table(nil, TableRow("a")), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw []RawNode
			require.NotPanics(t, func() { raw = ToRaw(tt.node) })
			require.Len(t, raw, 1)
			assert.Len(t, raw[0].Content, tt.want)
		})
	}

	t.Run("top level", func(t *testing.T) {
		b, err := Marshal(nilParagraph, Paragraph("x"))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(b), `"type":"paragraph"`))
	})
}

func TestHeading(t *testing.T) {
	h1 := Heading(2, "Title")
	h2 := Heading(2, "Title")
	assert.NotEqual(t, h1.UID, h2.UID)
	raw := h1.raw()
	assert.Equal(t, 2, raw.Attrs["level"])
	assert.Equal(t, h1.UID, raw.Attrs["uid"])
	assert.Len(t, raw.Attrs["uid"], UIDLength)

	assert.Equal(t, 6, Heading(9).Level)
	assert.Equal(t, 1, Heading(0).Level)
	assert.Nil(t, Heading(1).raw().Content)
}

func TestLists(t *testing.T) {
	t.Run("bullet list wraps strings", func(t *testing.T) {
		raw := BulletList("a", ListItem(Paragraph("b"))).raw()
		require.Len(t, raw.Content, 2)
		item := raw.Content[0]
		assert.Equal(t, TypeListItem, item.Kind)
		require.Len(t, item.Content, 1)
		assert.Equal(t, TypeParagraph, item.Content[0].Kind)
		assert.Equal(t, "a", item.Content[0].Content[0].Text)
	})

	t.Run("empty list item omits content", func(t *testing.T) {
		b, err := json.Marshal(ListItem())
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"listItem"}`, string(b))
	})

	t.Run("ordered list with start", func(t *testing.T) {
		raw := OrderedList(5, "a", "b").raw()
		assert.Equal(t, 5, raw.Attrs["start"])
		assert.Len(t, raw.Content, 2)
	})

	t.Run("ordered list without start", func(t *testing.T) {
		l := OrderedList("a", "b")
		b, err := json.Marshal(l)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "start")
		assert.NotContains(t, string(b), "attrs")
		assert.Len(t, l.Items, 2)
	})

	t.Run("explicit start of one is omitted", func(t *testing.T) {
		assert.Nil(t, OrderedListFrom(1, "a").raw().Attrs)
		assert.Equal(t, 3, OrderedListFrom(3, "a").raw().Attrs["start"])
	})

	t.Run("start of zero and negative kept", func(t *testing.T) {
		tests := []struct {
			name string
			node *OrderedListNode
			want int
		}{
			{"zero", OrderedList(0, "a"), 0},
			{"zero explicit", OrderedListFrom(0, "a"), 0},
			{"negative", OrderedList(-3, "a"), -3},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				raw := tt.node.raw()
				require.Contains(t, raw.Attrs, "start")
				assert.Equal(t, tt.want, raw.Attrs["start"])
			})
		}
	})

	t.Run("float start from decoded json", func(t *testing.T) {
		assert.Equal(t, 2, OrderedList(float64(2), "a").Start)
	})
}

func TestTaskItem(t *testing.T) {
	unchecked := TaskItem("x").raw()
	assert.Equal(t, false, unchecked.Attrs["checked"])
	require.Len(t, unchecked.Content, 1)
	assert.Equal(t, TypeParagraph, unchecked.Content[0].Kind)

	checked := TaskItem("x", true).raw()
	assert.Equal(t, true, checked.Attrs["checked"])
	require.Len(t, checked.Content, 1, "checked flag must not leak into content")

	empty, err := json.Marshal(TaskItem())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"taskItem","attrs":{"checked":false}}`, string(empty))
}

func TestTaskList(t *testing.T) {
	l := TaskList("a", TaskItem("b", true))
	raw := l.raw()
	assert.Len(t, raw.Attrs["uid"], UIDLength)
	require.Len(t, raw.Content, 2)
	assert.Equal(t, false, raw.Content[0].Attrs["checked"])
	assert.Equal(t, true, raw.Content[1].Attrs["checked"])
}

func TestTableCell(t *testing.T) {
	spanned := TableCell(2, 3, "x").raw()
	assert.Equal(t, map[string]any{"colspan": 2, "rowspan": 3}, spanned.Attrs)
	require.Len(t, spanned.Content, 1)
	assert.Equal(t, TypeParagraph, spanned.Content[0].Kind)

	plain := TableCell("x").raw()
	assert.Equal(t, map[string]any{"colspan": 1, "rowspan": 1}, plain.Attrs)

	// одно число не считается спаном
	single := TableCell(2)
	assert.Equal(t, 1, single.Colspan)
	assert.Empty(t, single.Content)

	h := TableHeaderSpan(2, 1, "H").raw()
	assert.Equal(t, TypeTableHeader, h.Kind)
	assert.Equal(t, 2, h.Attrs["colspan"])
}

func TestTable(t *testing.T) {
	tbl := Table(
		TableRow(TableHeader("A"), TableHeader("B")),
		TableRow("1", "2"),
	)
	raw := tbl.raw()
	assert.Equal(t, TypeTable, raw.Kind)
	assert.Equal(t, false, raw.Attrs["showRowNumbers"])
	assert.Len(t, raw.Attrs["uid"], UIDLength)
	require.Len(t, raw.Content, 2)

	header := raw.Content[0]
	assert.Equal(t, false, header.Attrs["showRowNumbers"])
	for _, c := range header.Content {
		assert.Equal(t, TypeTableHeader, c.Kind)
		assert.Equal(t, map[string]any{"colspan": 1, "rowspan": 1}, c.Attrs)
	}

	body := raw.Content[1]
	require.Len(t, body.Content, 2)
	for i, want := range []string{"1", "2"} {
		cell := body.Content[i]
		assert.Equal(t, TypeTableCell, cell.Kind)
		assert.Equal(t, TypeParagraph, cell.Content[0].Kind)
		assert.Equal(t, want, cell.Content[0].Content[0].Text)
	}
}

func TestMention(t *testing.T) {
	raw := MentionTask("task-1").raw()
	assert.Equal(t, TypeMention, raw.Kind)
	assert.Equal(t, 1, raw.Attrs["custom"])
	assert.Equal(t, true, raw.Attrs["inline"])
	data := raw.Attrs["data"].(map[string]any)
	item := data["item"].(map[string]any)
	assert.Equal(t, "task-1", item["id"])
	assert.Equal(t, models.KindTask, item["kind"])
	assert.Equal(t, []RawNode{{Kind: TypeText, Text: " "}}, raw.Content)

	assert.Equal(t, models.KindUser, MentionUser("u").Kind)
	assert.Equal(t, models.KindDocument, MentionDocument("d").Kind)
	assert.Equal(t, models.KindMilestone, MentionMilestone("m").Kind)
}

func TestDetails(t *testing.T) {
	t.Run("strings grouped into one content", func(t *testing.T) {
		raw := Details("Title", "body1", "body2").raw()
		require.Len(t, raw.Content, 2)
		assert.Equal(t, TypeDetailsSummary, raw.Content[0].Kind)
		assert.Equal(t, "Title", raw.Content[0].Content[0].Text)
		body := raw.Content[1]
		assert.Equal(t, TypeDetailsContent, body.Kind)
		require.Len(t, body.Content, 2)
		assert.Equal(t, TypeParagraph, body.Content[0].Kind)
		assert.Equal(t, TypeParagraph, body.Content[1].Kind)
	})

	t.Run("prebuilt content used as is", func(t *testing.T) {
		content := DetailsContent("x")
		d := Details(DetailsSummary("S"), content)
		assert.Same(t, content, d.Body)
	})

	t.Run("first content wins", func(t *testing.T) {
		first := DetailsContent("a")
		d := Details("S", "dropped", first, DetailsContent("b", "c"))
		assert.Same(t, first, d.Body)
		raw := d.raw()
		require.Len(t, raw.Content, 2)
		require.Len(t, raw.Content[1].Content, 1)
		assert.Equal(t, "a", raw.Content[1].Content[0].Content[0].Text)
	})

	t.Run("no body", func(t *testing.T) {
		raw := Details("S").raw()
		require.Len(t, raw.Content, 2)
		assert.Nil(t, raw.Content[1].Content)
	})
}

func TestImageBlock(t *testing.T) {
	file := models.UploadedFile{
		ID:        "file-1",
		URL:       "https://files.vaiz.com/a.png",
		Name:      "a.png",
		Ext:       "png",
		Size:      2048,
		Dimension: []int{1920, 1080},
	}
	b := ImageBlock(file, Caption("Screenshot"))
	raw := b.raw()
	assert.Equal(t, 100, raw.Attrs["widthPercent"])
	assert.Equal(t, "false", raw.Attrs["contenteditable"])
	assert.Equal(t, 1, raw.Attrs["custom"])

	img, err := DecodeImagePayload(raw)
	require.NoError(t, err)
	assert.InDelta(t, 1.7778, img.AspectRatio, 0.0001)
	assert.Equal(t, "image/png", img.FileType)
	assert.Equal(t, "Screenshot", img.Caption)
	assert.Equal(t, "a.png", img.Title)
	assert.Equal(t, "file-1", img.FileID)
	assert.NotEqual(t, "file-1", img.ID)
	assert.NotEqual(t, b.UID, img.ID)
	assert.Len(t, img.ID, UIDLength)

	t.Run("no caption no ratio", func(t *testing.T) {
		f := file
		f.Dimension = []int{100, 0}
		f.Mime = "image/jpeg"
		raw := ImageBlock(f, WidthPercent(50)).raw()
		assert.Equal(t, 50, raw.Attrs["widthPercent"])
		text := raw.Content[0].Text
		assert.NotContains(t, text, "caption")
		assert.NotContains(t, text, "aspectRatio")
		assert.Contains(t, text, `"fileType":"image/jpeg"`)
	})
}

func TestFilesBlock(t *testing.T) {
	timeNow = func() time.Time { return time.UnixMilli(1700000000000) }
	defer func() { timeNow = time.Now }()

	b := FilesBlock(
		FileItem{FileID: "f1", URL: "u1", Extension: "pdf", Name: "a.pdf", Size: 10, Type: "Pdf"},
		FileItemFromUpload(models.UploadedFile{ID: "f2", URL: "u2", Ext: "txt", Name: "b.txt", Size: 5, Type: "File"}),
	)
	payload, err := DecodeFilesPayload(b.raw())
	require.NoError(t, err)
	require.Len(t, payload.Files, 2)
	for i, want := range []string{"f1", "f2"} {
		f := payload.Files[i]
		assert.Equal(t, want, f.FileID)
		assert.NotEqual(t, want, f.ID)
		assert.Equal(t, int64(1700000000000), f.CreateAt)
	}
	assert.NotEqual(t, payload.Files[0].ID, payload.Files[1].ID)
	assert.Nil(t, payload.Files[0].DominantColor)
}

func TestDocSiblings(t *testing.T) {
	for _, tt := range []struct {
		node *DocSiblingsNode
		want SiblingsType
	}{
		{TocBlock(), SiblingsToc},
		{AnchorsBlock(), SiblingsAnchors},
		{SiblingsBlock(), SiblingsSiblings},
	} {
		t.Run(string(tt.want), func(t *testing.T) {
			raw := tt.node.raw()
			assert.Equal(t, TypeDocSiblings, raw.Kind)
			assert.Equal(t, `{"type":"`+string(tt.want)+`"}`, raw.Content[0].Text)
		})
	}
}

func TestCodeBlock(t *testing.T) {
	b, err := json.Marshal(CodeBlock("", ""))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "content")
	assert.NotContains(t, m["attrs"], "language")

	raw := CodeBlock("fmt.Println(1)", "go").raw()
	assert.Equal(t, "go", raw.Attrs["language"])
	assert.Equal(t, "fmt.Println(1)", raw.Content[0].Text)
}

func TestEmbedBlock(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		embedType     models.EmbedType
		opts          []EmbedOption
		wantExtracted string
		wantHidden    bool
	}{
		{
			name:          "youtube watch",
			url:           "https://youtube.com/watch?v=abc123",
			embedType:     models.EmbedYouTube,
			wantExtracted: "https://www.youtube.com/embed/abc123",
		},
		{
			name:          "youtube short",
			url:           "https://youtu.be/x_Y-9",
			embedType:     models.EmbedYouTube,
			wantExtracted: "https://www.youtube.com/embed/x_Y-9",
		},
		{
			name:          "youtube unmatched",
			url:           "https://youtube.com/channel/1",
			embedType:     models.EmbedYouTube,
			wantExtracted: "https://youtube.com/channel/1",
		},
		{
			name:          "figma forces hidden",
			url:           "https://www.figma.com/design/KEY/design/x",
			embedType:     models.EmbedFigma,
			opts:          []EmbedOption{ContentHidden(false)},
			wantExtracted: "https://www.figma.com/embed?embed_host=share&url=https://www.figma.com/file/KEY/design/x",
			wantHidden:    true,
		},
		{
			name:          "miro honors flag",
			url:           "https://miro.com/app/board/1",
			embedType:     models.EmbedMiro,
			opts:          []EmbedOption{ContentHidden(true)},
			wantExtracted: "https://miro.com/app/board/1",
			wantHidden:    true,
		},
		{
			name:          "vimeo passthrough",
			url:           "https://vimeo.com/1",
			embedType:     models.EmbedVimeo,
			opts:          []EmbedOption{ContentHidden(true)},
			wantExtracted: "https://vimeo.com/1",
		},
		{
			name:          "default iframe",
			url:           "https://example.com",
			wantExtracted: "https://example.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := EmbedBlock(tt.url, tt.embedType, tt.opts...).raw()
			payload, err := DecodeEmbedPayload(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.url, payload.URL)
			assert.Equal(t, tt.wantExtracted, payload.ExtractedURL)
			assert.Equal(t, tt.wantHidden, payload.IsContentHidden)
			assert.Equal(t, EmbedMedium, raw.Attrs["size"])
		})
	}
}

func TestEmbedAttrsEchoCallerFlag(t *testing.T) {
	raw := EmbedBlock("https://figma.com/design/a", models.EmbedFigma, WithSize(EmbedLarge)).raw()
	assert.Equal(t, false, raw.Attrs["isContentHidden"])
	assert.Equal(t, EmbedLarge, raw.Attrs["size"])
	assert.Contains(t, raw.Content[0].Text, `"isContentHidden":true`)
}

func TestGistEmbed(t *testing.T) {
	raw := EmbedBlock("https://gist.github.com/u/1", models.EmbedGitHubGist).raw()
	text := raw.Content[0].Text
	assert.Contains(t, text, "<script src='https://gist.github.com/u/1.js'></script>")
	assert.NotContains(t, text, `\u003c`)

	payload, err := DecodeEmbedPayload(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload.ExtractedURL, "data:text/html;charset=utf-8,\n"))
	assert.Contains(t, payload.ExtractedURL, "<head><base target='_blank'/></head>")
	assert.Equal(t, models.EmbedGitHubGist, payload.Type)
}

func TestMarshalJSONMatchesMarshal(t *testing.T) {
	embed := EmbedBlock("https://gist.github.com/u/1", models.EmbedGitHubGist)
	direct, err := embed.MarshalJSON()
	require.NoError(t, err)
	viaMarshal, err := Marshal(embed)
	require.NoError(t, err)

	assert.Equal(t, "["+string(direct)+"]", string(viaMarshal))
	assert.NotContains(t, string(direct), `\u003c`)
	assert.Contains(t, string(direct), "<script src=")
}

func TestMarshalAndDecode(t *testing.T) {
	data, err := Marshal(
		Heading(1, "Plan"),
		Paragraph("See ", MentionUser("m1")),
		HorizontalRule(),
		nil,
	)
	require.NoError(t, err)

	nodes, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, TypeHeading, nodes[0].Type())
	assert.Equal(t, TypeMention, nodes[1].Content[1].Kind)

	again, err := Marshal(AsNodes(nodes)...)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{"type":"paragraph"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`[{"type":"paragraph","content":[{"text":"x"}]}]`))
	assert.ErrorContains(t, err, "missing type")

	_, err = DecodeImagePayload(RawNode{Kind: TypeParagraph})
	assert.Error(t, err)

	_, err = DecodeEmbedPayload(RawNode{Kind: TypeEmbed, Content: []RawNode{{Kind: TypeText, Text: "{bad"}}})
	assert.Error(t, err)
}
