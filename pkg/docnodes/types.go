// Пакет docnodes собирает JSON-дерево документа Vaiz (формат TipTap/ProseMirror) для
// методов replaceJSONDocument и appendJSONDocument.
//
// Каждый вид узла представлен отдельной структурой, реализующей закрытый интерфейс Node.
// Сериализация проходит через единую проводную форму RawNode. Блоки с метаданными
// (изображения, файлы, embed, навигация) хранят типизированный payload, который
// кодируется в JSON-строку текстового потомка только при сериализации.
package docnodes

// NodeType дискриминатор узла в поле type
type NodeType string

const (
	TypeText           NodeType = "text"
	TypeParagraph      NodeType = "paragraph"
	TypeHeading        NodeType = "heading"
	TypeBulletList     NodeType = "bulletList"
	TypeOrderedList    NodeType = "orderedList"
	TypeListItem       NodeType = "listItem"
	TypeTaskList       NodeType = "taskList"
	TypeTaskItem       NodeType = "taskItem"
	TypeTable          NodeType = "extension-table"
	TypeTableRow       NodeType = "tableRow"
	TypeTableCell      NodeType = "tableCell"
	TypeTableHeader    NodeType = "tableHeader"
	TypeBlockquote     NodeType = "blockquote"
	TypeHorizontalRule NodeType = "horizontalRule"
	TypeDetails        NodeType = "details"
	TypeDetailsSummary NodeType = "detailsSummary"
	TypeDetailsContent NodeType = "detailsContent"
	TypeMention        NodeType = "custom-mention"
	TypeImageBlock     NodeType = "image-block"
	TypeFilesBlock     NodeType = "files"
	TypeDocSiblings    NodeType = "doc-siblings"
	TypeCodeBlock      NodeType = "codeBlock"
	TypeEmbed          NodeType = "embed"
)

// Node узел документа. Реализуется только типами этого пакета.
type Node interface {
	Type() NodeType
	raw() RawNode
}

// RawNode проводная форма любого узла.
// Также используется для узлов, пришедших извне (getJSONDocument, MCP клиенты),
// которые передаются дальше без изменений.
type RawNode struct {
	Kind    NodeType       `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []RawNode      `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

func (n RawNode) Type() NodeType { return n.Kind }
func (n RawNode) raw() RawNode   { return n }

type MarkType string

const (
	MarkBold   MarkType = "bold"
	MarkItalic MarkType = "italic"
	MarkCode   MarkType = "code"
	MarkLink   MarkType = "link"
)

// Mark форматирование текстового узла
type Mark struct {
	Type  MarkType   `json:"type"`
	Attrs *LinkAttrs `json:"attrs,omitempty"`
}

type LinkAttrs struct {
	Href   string `json:"href"`
	Target string `json:"target,omitempty"`
}

const DefaultLinkTarget = "_blank"

type TextNode struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Href   string
	Target string
}

type ParagraphNode struct {
	Content []Node
}

type HeadingNode struct {
	Level   int
	UID     string
	Content []Node
}

type ListItemNode struct {
	Content []Node
}

type BulletListNode struct {
	Items []*ListItemNode
}

// OrderedListNode Start 1 считается значением по умолчанию и не сериализуется.
// Собирается через OrderedList/OrderedListFrom: нулевое значение Start сериализуется как 0.
type OrderedListNode struct {
	Start int
	Items []*ListItemNode
}

type TaskItemNode struct {
	Checked bool
	Content []Node
}

type TaskListNode struct {
	UID   string
	Items []*TaskItemNode
}

type TableNode struct {
	UID  string
	Rows []*TableRowNode
}

type TableRowNode struct {
	Cells []*TableCellNode
}

// TableCellNode при Header сериализуется как tableHeader
type TableCellNode struct {
	Header  bool
	Colspan int
	Rowspan int
	Content []Node
}

type BlockquoteNode struct {
	Content []Node
}

type HorizontalRuleNode struct{}

// DetailsNode раскрывающийся блок, всегда ровно два потомка
type DetailsNode struct {
	Summary *DetailsSummaryNode
	Body    *DetailsContentNode
}

type DetailsSummaryNode struct {
	Content []Node
}

type DetailsContentNode struct {
	Content []Node
}

type CodeBlockNode struct {
	UID      string
	Language string
	Code     string
}
