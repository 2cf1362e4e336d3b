package docnodes

import (
	"log/slog"

	"github.com/aisa-it/vaiz.go/pkg/models"
)

// MentionNode упоминание сущности. Отображается по attrs.data, текст всегда пробел.
type MentionNode struct {
	UID  string
	ID   string
	Kind models.Kind
}

func Mention(id string, kind models.Kind) *MentionNode {
	return &MentionNode{UID: NewUID(), ID: id, Kind: kind}
}

func MentionUser(memberID string) *MentionNode       { return Mention(memberID, models.KindUser) }
func MentionDocument(documentID string) *MentionNode { return Mention(documentID, models.KindDocument) }
func MentionTask(taskID string) *MentionNode         { return Mention(taskID, models.KindTask) }
func MentionMilestone(milestoneID string) *MentionNode {
	return Mention(milestoneID, models.KindMilestone)
}

func (m *MentionNode) Type() NodeType { return TypeMention }

func (m *MentionNode) raw() RawNode {
	return RawNode{
		Kind: TypeMention,
		Attrs: map[string]any{
			"uid":    m.UID,
			"custom": 1,
			"inline": true,
			"data": map[string]any{
				"item": map[string]any{"id": m.ID, "kind": m.Kind},
			},
		},
		Content: []RawNode{{Kind: TypeText, Text: " "}},
	}
}

// DetailsSummary строки оборачиваются в Text
func DetailsSummary(children ...any) *DetailsSummaryNode {
	return &DetailsSummaryNode{Content: inlineChildren(TypeDetailsSummary, children)}
}

func (s *DetailsSummaryNode) Type() NodeType { return TypeDetailsSummary }

func (s *DetailsSummaryNode) raw() RawNode {
	return RawNode{Kind: TypeDetailsSummary, Content: rawNodes(s.Content)}
}

// DetailsContent строки оборачиваются в Paragraph
func DetailsContent(children ...any) *DetailsContentNode {
	return &DetailsContentNode{Content: blockChildren(TypeDetailsContent, children)}
}

func (c *DetailsContentNode) Type() NodeType { return TypeDetailsContent }

func (c *DetailsContentNode) raw() RawNode {
	return RawNode{Kind: TypeDetailsContent, Content: rawNodes(c.Content)}
}

// Details раскрывающийся блок. summary строка или *DetailsSummaryNode.
// Тело собирается в один DetailsContent. Если переданы готовые DetailsContent,
// используется первый из них, а прочие элементы тела отбрасываются.
func Details(summary any, body ...any) *DetailsNode {
	d := &DetailsNode{}
	switch v := summary.(type) {
	case string:
		d.Summary = DetailsSummary(v)
	case *DetailsSummaryNode:
		d.Summary = v
	default:
		slog.Warn("Unsupported details summary", "type", typeName(summary))
		d.Summary = DetailsSummary()
	}

	for _, item := range body {
		if c, ok := item.(*DetailsContentNode); ok && c != nil {
			d.Body = c
			break
		}
	}
	if d.Body == nil {
		d.Body = DetailsContent(body...)
	} else if len(body) > 1 {
		slog.Warn("Details body has detailsContent, extra nodes dropped", "dropped", len(body)-1)
	}
	return d
}

func (d *DetailsNode) Type() NodeType { return TypeDetails }

func (d *DetailsNode) raw() RawNode {
	summary, body := d.Summary, d.Body
	if summary == nil {
		summary = &DetailsSummaryNode{}
	}
	if body == nil {
		body = &DetailsContentNode{}
	}
	return RawNode{Kind: TypeDetails, Content: []RawNode{summary.raw(), body.raw()}}
}

// CodeBlock блок кода. Пустой code не создает содержимого, пустой language не сериализуется.
func CodeBlock(code, language string) *CodeBlockNode {
	return &CodeBlockNode{UID: NewUID(), Code: code, Language: language}
}

func (c *CodeBlockNode) Type() NodeType { return TypeCodeBlock }

func (c *CodeBlockNode) raw() RawNode {
	n := RawNode{Kind: TypeCodeBlock, Attrs: map[string]any{"uid": c.UID}}
	if c.Language != "" {
		n.Attrs["language"] = c.Language
	}
	if c.Code != "" {
		n.Content = []RawNode{{Kind: TypeText, Text: c.Code}}
	}
	return n
}
