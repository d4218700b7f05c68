package statements

import (
	"fmt"
	"strconv"
	"strings"
)

const dumpIndent = "  "

// Dump renders a statement as an indented tree, one node per line.
func Dump(stmt Statement) string {
	var b strings.Builder

	switch s := stmt.(type) {
	case *SelectStatement:
		b.WriteString("Select\n")
		writeLine(&b, 1, "columns: "+listOrNone(s.Columns, false))
		writeLine(&b, 1, "table: "+s.Table)
		if s.Selection == nil {
			writeLine(&b, 1, "selection: <none>")
		} else {
			writeLine(&b, 1, "selection:")
			dumpExpression(&b, s.Selection, 2)
		}
		writeLine(&b, 1, "order_by: "+listOrNone(s.OrderBy, true))
	case *CreateStatement:
		b.WriteString("CreateTable\n")
		writeLine(&b, 1, "table_name: "+s.TableName)
		writeLine(&b, 1, "columns:")
		for _, col := range s.Columns {
			writeLine(&b, 2, fmt.Sprintf("%s %s", col.Name, col.DataType))
			for _, c := range col.Constraints {
				if c.Kind != Check {
					writeLine(&b, 3, c.Kind.String())
					continue
				}
				writeLine(&b, 3, "CHECK")
				dumpExpression(&b, c.Check, 4)
			}
		}
	default:
		b.WriteString(fmt.Sprintf("<unknown statement %T>\n", stmt))
	}

	return b.String()
}

// DumpExpression renders an expression tree, one node per line.
func DumpExpression(expr Expression) string {
	var b strings.Builder
	dumpExpression(&b, expr, 0)
	return b.String()
}

func dumpExpression(b *strings.Builder, expr Expression, depth int) {
	switch e := expr.(type) {
	case *Identifier:
		writeLine(b, depth, "Identifier("+e.Name+")")
	case *NumberLiteral:
		writeLine(b, depth, "Number("+strconv.FormatUint(e.Value, 10)+")")
	case *StringLiteral:
		writeLine(b, depth, "String("+strconv.Quote(e.Value)+")")
	case *BooleanLiteral:
		writeLine(b, depth, "Boolean("+strconv.FormatBool(e.Value)+")")
	case *NullLiteral:
		writeLine(b, depth, "Null")
	case *UnaryExpression:
		name := "Not"
		if e.Operator == Negate {
			name = "Negate"
		}
		writeLine(b, depth, "Unary("+name+")")
		dumpExpression(b, e.Operand, depth+1)
	case *BinaryExpression:
		writeLine(b, depth, "Binary("+e.Operator.Name()+")")
		dumpExpression(b, e.Left, depth+1)
		dumpExpression(b, e.Right, depth+1)
	case *GroupedExpression:
		writeLine(b, depth, "Grouped")
		dumpExpression(b, e.Inner, depth+1)
	default:
		writeLine(b, depth, fmt.Sprintf("<unknown expression %T>", expr))
	}
}

func writeLine(b *strings.Builder, depth int, s string) {
	b.WriteString(strings.Repeat(dumpIndent, depth))
	b.WriteString(s)
	b.WriteByte('\n')
}

// listOrNone formats names as [a, b]. A nil slice prints <none> when optional.
func listOrNone(names []string, optional bool) string {
	if names == nil && optional {
		return "<none>"
	}
	return "[" + strings.Join(names, ", ") + "]"
}
