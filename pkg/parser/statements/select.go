package statements

import "strings"

// SelectStatement is a single-table projection with an optional filter and
// ordering. Columns may contain the "*" wildcard.
type SelectStatement struct {
	BaseStatement
	Columns []string
	Table   string
	// Selection is the WHERE predicate; nil when absent.
	Selection Expression
	// OrderBy is nil when the statement has no ORDER BY clause.
	OrderBy []string
}

func NewSelectStatement(table string) *SelectStatement {
	return &SelectStatement{
		BaseStatement: NewBaseStatement(Select),
		Table:         table,
	}
}

// HasWildcard reports whether the column list contains "*".
func (ss *SelectStatement) HasWildcard() bool {
	for _, c := range ss.Columns {
		if c == "*" {
			return true
		}
	}
	return false
}

func (ss *SelectStatement) String() string {
	var b statementBuilder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(ss.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(ss.Table)

	if ss.Selection != nil {
		b.writeClause("WHERE", ss.Selection.String())
	}
	b.writeIf(ss.OrderBy != nil, " ORDER BY "+strings.Join(ss.OrderBy, ", "))

	return b.String()
}

func (ss *SelectStatement) Validate() error {
	if err := ss.requireNonEmpty("table", ss.Table, "table name is required"); err != nil {
		return err
	}
	if err := ss.requireNonEmptySlice("columns", len(ss.Columns), "at least one column is required"); err != nil {
		return err
	}
	if err := ss.requireUnique("columns", ss.Columns); err != nil {
		return err
	}
	if ss.OrderBy != nil {
		if err := ss.requireNonEmptySlice("order by", len(ss.OrderBy), "at least one ordering column is required"); err != nil {
			return err
		}
		return ss.requireUnique("order by", ss.OrderBy)
	}
	return nil
}
