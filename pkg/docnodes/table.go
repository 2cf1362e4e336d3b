package docnodes

import "log/slog"

// TableCell ячейка таблицы. Если первые два аргумента числа, это colspan и rowspan,
// иначе оба равны 1. Строки оборачиваются в Paragraph.
func TableCell(args ...any) *TableCellNode {
	return tableCell(false, args)
}

// TableHeader ячейка заголовка, правила аргументов как у TableCell
func TableHeader(args ...any) *TableCellNode {
	return tableCell(true, args)
}

func TableCellSpan(colspan, rowspan int, content ...any) *TableCellNode {
	return &TableCellNode{Colspan: colspan, Rowspan: rowspan, Content: blockChildren(TypeTableCell, content)}
}

func TableHeaderSpan(colspan, rowspan int, content ...any) *TableCellNode {
	return &TableCellNode{Header: true, Colspan: colspan, Rowspan: rowspan, Content: blockChildren(TypeTableHeader, content)}
}

func tableCell(header bool, args []any) *TableCellNode {
	colspan, rowspan := 1, 1
	if len(args) >= 2 {
		c, okC := asInt(args[0])
		r, okR := asInt(args[1])
		if okC && okR {
			colspan, rowspan = c, r
			args = args[2:]
		}
	}
	if header {
		return TableHeaderSpan(colspan, rowspan, args...)
	}
	return TableCellSpan(colspan, rowspan, args...)
}

func (c *TableCellNode) Type() NodeType {
	if c.Header {
		return TypeTableHeader
	}
	return TypeTableCell
}

func (c *TableCellNode) raw() RawNode {
	colspan, rowspan := c.Colspan, c.Rowspan
	if colspan < 1 {
		colspan = 1
	}
	if rowspan < 1 {
		rowspan = 1
	}
	return RawNode{
		Kind:    c.Type(),
		Attrs:   map[string]any{"colspan": colspan, "rowspan": rowspan},
		Content: rawNodes(c.Content),
	}
}

// TableRow строка превращается в TableCell(s)
func TableRow(cells ...any) *TableRowNode {
	row := &TableRowNode{}
	for _, cell := range cells {
		if nilNode(cell) {
			slog.Warn("Nil table row cell skipped", "type", typeName(cell))
			continue
		}
		switch v := cell.(type) {
		case string:
			row.Cells = append(row.Cells, TableCell(v))
		case *TableCellNode:
			row.Cells = append(row.Cells, v)
		default:
			slog.Warn("Unsupported table row cell", "type", typeName(cell))
		}
	}
	return row
}

func (r *TableRowNode) Type() NodeType { return TypeTableRow }

func (r *TableRowNode) raw() RawNode {
	return RawNode{
		Kind:    TypeTableRow,
		Attrs:   map[string]any{"showRowNumbers": false},
		Content: rawOf(r.Cells),
	}
}

// Table таблица с новым uid
func Table(rows ...*TableRowNode) *TableNode {
	return &TableNode{UID: NewUID(), Rows: rows}
}

func (t *TableNode) Type() NodeType { return TypeTable }

func (t *TableNode) raw() RawNode {
	return RawNode{
		Kind:    TypeTable,
		Attrs:   map[string]any{"uid": t.UID, "showRowNumbers": false},
		Content: rawOf(t.Rows),
	}
}
