package statements

import "strings"

// statementBuilder wraps strings.Builder with helpers that eliminate
// the repetitive if-then-WriteString pattern in Statement.String() methods.
type statementBuilder struct {
	strings.Builder
}

// writeIf appends s only when cond is true.
func (b *statementBuilder) writeIf(cond bool, s string) {
	if cond {
		b.WriteString(s)
	}
}

// writeClause appends " keyword value" only when value is non-empty.
func (b *statementBuilder) writeClause(keyword, value string) {
	if value != "" {
		b.WriteString(" " + keyword + " " + value)
	}
}

// BaseStatement provides common functionality for all statement types
type BaseStatement struct {
	stmtType StatementType
}

func NewBaseStatement(stmtType StatementType) BaseStatement {
	return BaseStatement{stmtType: stmtType}
}

func (bs *BaseStatement) GetType() StatementType {
	return bs.stmtType
}

// requireNonEmpty returns a ValidationError when value is empty.
func (bs *BaseStatement) requireNonEmpty(fieldName, value, msg string) error {
	if value == "" {
		return NewValidationError(bs.stmtType, fieldName, msg)
	}
	return nil
}

// requireNonEmptySlice returns a ValidationError when length is zero.
func (bs *BaseStatement) requireNonEmptySlice(fieldName string, length int, msg string) error {
	if length == 0 {
		return NewValidationError(bs.stmtType, fieldName, msg)
	}
	return nil
}

// requireUnique returns a ValidationError naming the first repeated value.
// Names are compared exactly; the parser preserves identifier spelling.
func (bs *BaseStatement) requireUnique(fieldName string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return NewValidationError(bs.stmtType, fieldName, "duplicate name "+v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
