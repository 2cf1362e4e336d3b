package docnodes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
)

// ToRaw переводит узлы в проводную форму
func ToRaw(nodes ...Node) []RawNode {
	out := make([]RawNode, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if nilNode(n) {
			slog.Warn("Nil node skipped", "type", typeName(n))
			continue
		}
		out = append(out, n.raw())
	}
	return out
}

// Marshal сериализует массив узлов для replaceJSONDocument/appendJSONDocument.
func Marshal(nodes ...Node) ([]byte, error) {
	return encode(ToRaw(nodes...))
}

// encode общий путь для Marshal и MarshalJSON узлов, HTML не экранируется
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode разбирает массив узлов, полученный извне. Проверяется только наличие type.
func Decode(data []byte) ([]RawNode, error) {
	var nodes []RawNode
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, apierrors.ErrInvalidDocument.WithFormattedMessage(err.Error())
	}
	for i, n := range nodes {
		if err := checkTypes(n); err != nil {
			return nil, apierrors.ErrInvalidDocument.WithFormattedMessage(fmt.Sprintf("node %d: %s", i, err))
		}
	}
	return nodes, nil
}

func checkTypes(n RawNode) error {
	if n.Kind == "" {
		return fmt.Errorf("missing type")
	}
	for _, c := range n.Content {
		if err := checkTypes(c); err != nil {
			return err
		}
	}
	return nil
}

// AsNodes приводит RawNode к Node
func AsNodes(raw []RawNode) []Node {
	out := make([]Node, len(raw))
	for i, r := range raw {
		out[i] = r
	}
	return out
}

func rawNodes(nodes []Node) []RawNode {
	if len(nodes) == 0 {
		return nil
	}
	return ToRaw(nodes...)
}

func rawOf[T Node](nodes []T) []RawNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]RawNode, 0, len(nodes))
	for _, n := range nodes {
		if nilNode(n) {
			slog.Warn("Nil node skipped", "type", typeName(n))
			continue
		}
		out = append(out, n.raw())
	}
	return out
}

// inlineChildren строки становятся Text
func inlineChildren(owner NodeType, items []any) []Node {
	return children(owner, items, func(s string) Node { return Text(s) })
}

// blockChildren строки становятся Paragraph
func blockChildren(owner NodeType, items []any) []Node {
	return children(owner, items, func(s string) Node { return Paragraph(s) })
}

func children(owner NodeType, items []any, wrap func(string) Node) []Node {
	if len(items) == 0 {
		return nil
	}
	out := make([]Node, 0, len(items))
	for _, item := range items {
		if nilNode(item) {
			slog.Warn("Nil child skipped", "container", owner, "type", typeName(item))
			continue
		}
		switch v := item.(type) {
		case string:
			out = append(out, wrap(v))
		case Node:
			out = append(out, v)
		default:
			slog.Warn("Unsupported child type", "container", owner, "type", typeName(item))
		}
	}
	return out
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}

// nilNode типизированный nil, например (*ParagraphNode)(nil), проходит проверку на Node
func nilNode(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

func (n *TextNode) MarshalJSON() ([]byte, error)           { return encode(n.raw()) }
func (n *ParagraphNode) MarshalJSON() ([]byte, error)      { return encode(n.raw()) }
func (n *HeadingNode) MarshalJSON() ([]byte, error)        { return encode(n.raw()) }
func (n *ListItemNode) MarshalJSON() ([]byte, error)       { return encode(n.raw()) }
func (n *BulletListNode) MarshalJSON() ([]byte, error)     { return encode(n.raw()) }
func (n *OrderedListNode) MarshalJSON() ([]byte, error)    { return encode(n.raw()) }
func (n *TaskItemNode) MarshalJSON() ([]byte, error)       { return encode(n.raw()) }
func (n *TaskListNode) MarshalJSON() ([]byte, error)       { return encode(n.raw()) }
func (n *TableNode) MarshalJSON() ([]byte, error)          { return encode(n.raw()) }
func (n *TableRowNode) MarshalJSON() ([]byte, error)       { return encode(n.raw()) }
func (n *TableCellNode) MarshalJSON() ([]byte, error)      { return encode(n.raw()) }
func (n *BlockquoteNode) MarshalJSON() ([]byte, error)     { return encode(n.raw()) }
func (n *HorizontalRuleNode) MarshalJSON() ([]byte, error) { return encode(n.raw()) }
func (n *DetailsNode) MarshalJSON() ([]byte, error)        { return encode(n.raw()) }
func (n *DetailsSummaryNode) MarshalJSON() ([]byte, error) { return encode(n.raw()) }
func (n *DetailsContentNode) MarshalJSON() ([]byte, error) { return encode(n.raw()) }
func (n *MentionNode) MarshalJSON() ([]byte, error)        { return encode(n.raw()) }
func (n *ImageBlockNode) MarshalJSON() ([]byte, error)     { return encode(n.raw()) }
func (n *FilesBlockNode) MarshalJSON() ([]byte, error)     { return encode(n.raw()) }
func (n *DocSiblingsNode) MarshalJSON() ([]byte, error)    { return encode(n.raw()) }
func (n *CodeBlockNode) MarshalJSON() ([]byte, error)      { return encode(n.raw()) }
func (n *EmbedBlockNode) MarshalJSON() ([]byte, error)     { return encode(n.raw()) }
