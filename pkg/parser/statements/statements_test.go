package statements

import (
	"errors"
	"testing"
)

func TestBaseStatement_GetType(t *testing.T) {
	base := NewBaseStatement(Select)
	if base.GetType() != Select {
		t.Errorf("Expected Select, got %v", base.GetType())
	}
}

func TestStatementType_String(t *testing.T) {
	tests := []struct {
		st       StatementType
		expected string
	}{
		{Select, "SELECT"},
		{CreateTable, "CREATE TABLE"},
		{StatementType(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.st.String(); got != tt.expected {
			t.Errorf("String() = %v, want %v", got, tt.expected)
		}
	}

	if !Select.IsDML() || Select.IsDDL() {
		t.Error("expected SELECT to be DML only")
	}
	if !CreateTable.IsDDL() || CreateTable.IsDML() {
		t.Error("expected CREATE TABLE to be DDL only")
	}
}

func TestSelectStatement_String(t *testing.T) {
	stmt := NewSelectStatement("users")
	stmt.Columns = []string{"id", "name"}
	stmt.Selection = NewBinary(
		NewGrouped(NewBinary(NewIdentifier("a"), Or, NewIdentifier("b"))),
		And,
		NewBinary(NewIdentifier("age"), GreaterThanOrEqual, NewNumber(18)),
	)
	stmt.OrderBy = []string{"name"}

	expected := "SELECT id, name FROM users WHERE (a OR b) AND age >= 18 ORDER BY name"
	if got := stmt.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestSelectStatement_HasWildcard(t *testing.T) {
	stmt := NewSelectStatement("t")
	stmt.Columns = []string{"a"}
	if stmt.HasWildcard() {
		t.Error("expected no wildcard")
	}
	stmt.Columns = append(stmt.Columns, "*")
	if !stmt.HasWildcard() {
		t.Error("expected wildcard")
	}
}

func TestSelectStatement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		columns []string
		orderBy []string
		wantErr bool
	}{
		{"Valid", "users", []string{"id"}, nil, false},
		{"ValidOrderBy", "users", []string{"id", "name"}, []string{"name"}, false},
		{"EmptyTable", "", []string{"id"}, nil, true},
		{"NoColumns", "users", nil, nil, true},
		{"DuplicateColumn", "users", []string{"id", "id"}, nil, true},
		{"DuplicateOrderBy", "users", []string{"id"}, []string{"id", "id"}, true},
		{"EmptyOrderBy", "users", []string{"id"}, []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := NewSelectStatement(tt.table)
			stmt.Columns = tt.columns
			stmt.OrderBy = tt.orderBy
			err := stmt.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var ve *ValidationError
			if err != nil && !errors.As(err, &ve) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestCreateStatement_String(t *testing.T) {
	stmt := NewCreateStatement("t")
	stmt.AddColumn("id", Int, []Constraint{PrimaryKeyConstraint()})
	stmt.AddColumn("name", Varchar, []Constraint{NotNullConstraint()})
	stmt.AddColumn("age", Int, []Constraint{
		CheckConstraint(NewBinary(NewIdentifier("age"), GreaterThanOrEqual, NewNumber(18))),
	})

	expected := "CREATE TABLE t (\n  id INT PRIMARY KEY,\n  name VARCHAR NOT NULL,\n  age INT CHECK (age >= 18)\n)"
	if got := stmt.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestCreateStatement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *CreateStatement
		wantErr bool
	}{
		{
			name: "Valid",
			build: func() *CreateStatement {
				s := NewCreateStatement("t")
				s.AddColumn("id", Int, []Constraint{PrimaryKeyConstraint()})
				s.AddColumn("ok", Bool, nil)
				return s
			},
		},
		{
			name:    "NoColumns",
			build:   func() *CreateStatement { return NewCreateStatement("t") },
			wantErr: true,
		},
		{
			name: "DuplicateColumn",
			build: func() *CreateStatement {
				s := NewCreateStatement("t")
				s.AddColumn("id", Int, nil)
				s.AddColumn("id", Varchar, nil)
				return s
			},
			wantErr: true,
		},
		{
			name: "TwoPrimaryKeys",
			build: func() *CreateStatement {
				s := NewCreateStatement("t")
				s.AddColumn("a", Int, []Constraint{PrimaryKeyConstraint()})
				s.AddColumn("b", Int, []Constraint{PrimaryKeyConstraint()})
				return s
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpression_String(t *testing.T) {
	tests := []struct {
		expr     Expression
		expected string
	}{
		{NewIdentifier("a"), "a"},
		{NewNumber(42), "42"},
		{NewString("x"), "'x'"},
		{NewString("it's"), `"it's"`},
		{NewBoolean(true), "TRUE"},
		{&NullLiteral{}, "NULL"},
		{NewUnary(Not, NewIdentifier("a")), "NOT a"},
		{NewUnary(Negate, NewNumber(1)), "-1"},
		{NewBinary(NewIdentifier("a"), Divide, NewNumber(2)), "a / 2"},
		{NewGrouped(NewBinary(NewIdentifier("a"), Subtract, NewNumber(1))), "(a - 1)"},
	}

	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestDump_Select(t *testing.T) {
	stmt := NewSelectStatement("users")
	stmt.Columns = []string{"*"}

	expected := "Select\n" +
		"  columns: [*]\n" +
		"  table: users\n" +
		"  selection: <none>\n" +
		"  order_by: <none>\n"
	if got := Dump(stmt); got != expected {
		t.Errorf("Dump() = %q, want %q", got, expected)
	}
}

func TestDump_CreateWithCheck(t *testing.T) {
	stmt := NewCreateStatement("t")
	stmt.AddColumn("age", Int, []Constraint{
		NotNullConstraint(),
		CheckConstraint(NewBinary(NewIdentifier("age"), GreaterThanOrEqual, NewNumber(18))),
	})

	expected := "CreateTable\n" +
		"  table_name: t\n" +
		"  columns:\n" +
		"    age INT\n" +
		"      NOT NULL\n" +
		"      CHECK\n" +
		"        Binary(GreaterThanOrEqual)\n" +
		"          Identifier(age)\n" +
		"          Number(18)\n"
	if got := Dump(stmt); got != expected {
		t.Errorf("Dump() = %q, want %q", got, expected)
	}
}

func TestDumpExpression(t *testing.T) {
	expr := NewUnary(Negate, NewGrouped(NewString("s")))
	expected := "Unary(Negate)\n  Grouped\n    String(\"s\")\n"
	if got := DumpExpression(expr); got != expected {
		t.Errorf("DumpExpression() = %q, want %q", got, expected)
	}
}
