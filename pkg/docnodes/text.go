package docnodes

type TextOption func(*TextNode)

func Bold() TextOption   { return func(t *TextNode) { t.Bold = true } }
func Italic() TextOption { return func(t *TextNode) { t.Italic = true } }
func Code() TextOption   { return func(t *TextNode) { t.Code = true } }

// Link добавляет ссылку, target по умолчанию _blank
func Link(href string) TextOption {
	return func(t *TextNode) {
		t.Href = href
		if t.Target == "" {
			t.Target = DefaultLinkTarget
		}
	}
}

func LinkTarget(target string) TextOption {
	return func(t *TextNode) { t.Target = target }
}

// Text создает текстовый узел. Пустая строка заменяется пробелом.
func Text(content string, opts ...TextOption) *TextNode {
	t := &TextNode{Text: content}
	for _, opt := range opts {
		opt(t)
	}
	if t.Text == "" {
		t.Text = " "
	}
	return t
}

// FormattedText позиционная форма Text.
func FormattedText(content string, bold, italic, code bool, link, target string) *TextNode {
	if target == "" {
		target = DefaultLinkTarget
	}
	t := Text(content)
	t.Bold, t.Italic, t.Code = bold, italic, code
	if link != "" {
		t.Href, t.Target = link, target
	}
	return t
}

// LinkText текст-ссылка
func LinkText(content, href, target string, bold, italic bool) *TextNode {
	return FormattedText(content, bold, italic, false, href, target)
}

func (t *TextNode) Type() NodeType { return TypeText }

func (t *TextNode) raw() RawNode {
	n := RawNode{Kind: TypeText, Text: t.Text}
	if n.Text == "" {
		n.Text = " "
	}
	if t.Bold {
		n.Marks = append(n.Marks, Mark{Type: MarkBold})
	}
	if t.Italic {
		n.Marks = append(n.Marks, Mark{Type: MarkItalic})
	}
	if t.Code {
		n.Marks = append(n.Marks, Mark{Type: MarkCode})
	}
	if t.Href != "" {
		target := t.Target
		if target == "" {
			target = DefaultLinkTarget
		}
		n.Marks = append(n.Marks, Mark{Type: MarkLink, Attrs: &LinkAttrs{Href: t.Href, Target: target}})
	}
	return n
}

// Paragraph строки оборачиваются в Text
func Paragraph(children ...any) *ParagraphNode {
	return &ParagraphNode{Content: inlineChildren(TypeParagraph, children)}
}

func (p *ParagraphNode) Type() NodeType { return TypeParagraph }

func (p *ParagraphNode) raw() RawNode {
	return RawNode{Kind: TypeParagraph, Content: rawNodes(p.Content)}
}

// Heading заголовок с новым uid. Уровень ограничивается диапазоном 1..6.
func Heading(level int, children ...any) *HeadingNode {
	return &HeadingNode{
		Level:   clampLevel(level),
		UID:     NewUID(),
		Content: inlineChildren(TypeHeading, children),
	}
}

func clampLevel(level int) int {
	return min(max(level, 1), 6)
}

func (h *HeadingNode) Type() NodeType { return TypeHeading }

func (h *HeadingNode) raw() RawNode {
	return RawNode{
		Kind:    TypeHeading,
		Attrs:   map[string]any{"level": clampLevel(h.Level), "uid": h.UID},
		Content: rawNodes(h.Content),
	}
}

// Blockquote строки оборачиваются в Paragraph
func Blockquote(children ...any) *BlockquoteNode {
	return &BlockquoteNode{Content: blockChildren(TypeBlockquote, children)}
}

func (b *BlockquoteNode) Type() NodeType { return TypeBlockquote }

func (b *BlockquoteNode) raw() RawNode {
	return RawNode{Kind: TypeBlockquote, Content: rawNodes(b.Content)}
}

func HorizontalRule() *HorizontalRuleNode { return &HorizontalRuleNode{} }

func (*HorizontalRuleNode) Type() NodeType { return TypeHorizontalRule }
func (*HorizontalRuleNode) raw() RawNode   { return RawNode{Kind: TypeHorizontalRule} }
