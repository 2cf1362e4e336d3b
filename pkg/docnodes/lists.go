package docnodes

import "log/slog"

// ListItem строки оборачиваются в Paragraph
func ListItem(children ...any) *ListItemNode {
	return &ListItemNode{Content: blockChildren(TypeListItem, children)}
}

func (li *ListItemNode) Type() NodeType { return TypeListItem }

func (li *ListItemNode) raw() RawNode {
	return RawNode{Kind: TypeListItem, Content: rawNodes(li.Content)}
}

// BulletList строка превращается в ListItem(Paragraph(s))
func BulletList(items ...any) *BulletListNode {
	return &BulletListNode{Items: listItems(TypeBulletList, items)}
}

func (l *BulletListNode) Type() NodeType { return TypeBulletList }

func (l *BulletListNode) raw() RawNode {
	return RawNode{Kind: TypeBulletList, Content: rawOf(l.Items)}
}

// OrderedList нумерованный список. Если первый аргумент число, он считается
// начальным номером: OrderedList(5, "a", "b") равносилен OrderedListFrom(5, "a", "b").
func OrderedList(args ...any) *OrderedListNode {
	if len(args) > 0 {
		if start, ok := asInt(args[0]); ok {
			return OrderedListFrom(start, args[1:]...)
		}
	}
	return OrderedListFrom(1, args...)
}

// OrderedListFrom нумерованный список с явным начальным номером
func OrderedListFrom(start int, items ...any) *OrderedListNode {
	return &OrderedListNode{Start: start, Items: listItems(TypeOrderedList, items)}
}

func (l *OrderedListNode) Type() NodeType { return TypeOrderedList }

func (l *OrderedListNode) raw() RawNode {
	n := RawNode{Kind: TypeOrderedList, Content: rawOf(l.Items)}
	if l.Start != 1 {
		n.Attrs = map[string]any{"start": l.Start}
	}
	return n
}

func listItems(owner NodeType, items []any) []*ListItemNode {
	out := make([]*ListItemNode, 0, len(items))
	for _, item := range items {
		if nilNode(item) {
			slog.Warn("Nil list item skipped", "container", owner, "type", typeName(item))
			continue
		}
		switch v := item.(type) {
		case string:
			out = append(out, ListItem(Paragraph(v)))
		case *ListItemNode:
			out = append(out, v)
		default:
			slog.Warn("Unsupported list item", "container", owner, "type", typeName(item))
		}
	}
	return out
}

// TaskItem пункт чек-листа. Завершающий bool аргумент задает checked (по умолчанию false)
// и не попадает в содержимое. Строки оборачиваются в Paragraph.
func TaskItem(args ...any) *TaskItemNode {
	checked := false
	if len(args) > 0 {
		if b, ok := args[len(args)-1].(bool); ok {
			checked = b
			args = args[:len(args)-1]
		}
	}
	return TaskItemChecked(checked, args...)
}

func TaskItemChecked(checked bool, children ...any) *TaskItemNode {
	return &TaskItemNode{Checked: checked, Content: blockChildren(TypeTaskItem, children)}
}

func (ti *TaskItemNode) Type() NodeType { return TypeTaskItem }

func (ti *TaskItemNode) raw() RawNode {
	return RawNode{
		Kind:    TypeTaskItem,
		Attrs:   map[string]any{"checked": ti.Checked},
		Content: rawNodes(ti.Content),
	}
}

// TaskList чек-лист с новым uid. Строка превращается в TaskItem(s, false).
func TaskList(items ...any) *TaskListNode {
	l := &TaskListNode{UID: NewUID()}
	for _, item := range items {
		if nilNode(item) {
			slog.Warn("Nil task list item skipped", "type", typeName(item))
			continue
		}
		switch v := item.(type) {
		case string:
			l.Items = append(l.Items, TaskItem(v, false))
		case *TaskItemNode:
			l.Items = append(l.Items, v)
		default:
			slog.Warn("Unsupported task list item", "type", typeName(item))
		}
	}
	return l
}

func (l *TaskListNode) Type() NodeType { return TypeTaskList }

func (l *TaskListNode) raw() RawNode {
	return RawNode{
		Kind:    TypeTaskList,
		Attrs:   map[string]any{"uid": l.UID},
		Content: rawOf(l.Items),
	}
}
