package statements

import (
	"fmt"
	"strings"
)

type DBType int

const (
	Int DBType = iota
	Bool
	Varchar
)

func (t DBType) String() string {
	switch t {
	case Int:
		return "INT"
	case Bool:
		return "BOOL"
	case Varchar:
		return "VARCHAR"
	default:
		return "UNKNOWN"
	}
}

type ConstraintKind int

const (
	NotNull ConstraintKind = iota
	PrimaryKey
	Check
)

func (k ConstraintKind) String() string {
	switch k {
	case NotNull:
		return "NOT NULL"
	case PrimaryKey:
		return "PRIMARY KEY"
	case Check:
		return "CHECK"
	default:
		return "UNKNOWN"
	}
}

// Constraint is a column-level rule. Check is set only for Kind == Check.
type Constraint struct {
	Kind  ConstraintKind
	Check Expression
}

func NotNullConstraint() Constraint { return Constraint{Kind: NotNull} }

func PrimaryKeyConstraint() Constraint { return Constraint{Kind: PrimaryKey} }

func CheckConstraint(expr Expression) Constraint {
	return Constraint{Kind: Check, Check: expr}
}

func (c Constraint) String() string {
	if c.Kind == Check {
		return "CHECK (" + c.Check.String() + ")"
	}
	return c.Kind.String()
}

type TableColumn struct {
	Name        string
	DataType    DBType
	Constraints []Constraint
}

// HasConstraint reports whether the column carries a constraint of the given kind.
func (tc TableColumn) HasConstraint(kind ConstraintKind) bool {
	for _, c := range tc.Constraints {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

type CreateStatement struct {
	BaseStatement
	TableName string
	Columns   []TableColumn
}

func NewCreateStatement(tableName string) *CreateStatement {
	return &CreateStatement{
		BaseStatement: NewBaseStatement(CreateTable),
		TableName:     tableName,
		Columns:       make([]TableColumn, 0),
	}
}

func (cts *CreateStatement) AddColumn(name string, dataType DBType, constraints []Constraint) {
	cts.Columns = append(cts.Columns, TableColumn{
		Name:        name,
		DataType:    dataType,
		Constraints: constraints,
	})
}

func (cts *CreateStatement) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("CREATE TABLE %s (\n", cts.TableName))

	for i, col := range cts.Columns {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(fmt.Sprintf("  %s %s", col.Name, col.DataType.String()))

		for _, c := range col.Constraints {
			sb.WriteString(" " + c.String())
		}
	}

	sb.WriteString("\n)")

	return sb.String()
}

func (cts *CreateStatement) Validate() error {
	if err := cts.requireNonEmpty("table", cts.TableName, "table name is required"); err != nil {
		return err
	}
	if err := cts.requireNonEmptySlice("columns", len(cts.Columns), "at least one column is required"); err != nil {
		return err
	}

	names := make([]string, len(cts.Columns))
	primaryKeys := 0
	for i, col := range cts.Columns {
		names[i] = col.Name
		if col.HasConstraint(PrimaryKey) {
			primaryKeys++
		}
	}
	if err := cts.requireUnique("columns", names); err != nil {
		return err
	}
	if primaryKeys > 1 {
		return NewValidationError(CreateTable, "constraints", "more than one PRIMARY KEY column")
	}
	return nil
}
