package statements

import (
	"strconv"
	"strings"
)

// Expression is a node of a boolean or arithmetic expression tree.
// The set of implementations is closed; switch on the concrete type.
type Expression interface {
	// String renders the expression as SQL text.
	String() string
	expressionNode()
}

type UnaryOperator int

const (
	Not UnaryOperator = iota
	Negate
)

func (op UnaryOperator) String() string {
	switch op {
	case Not:
		return "NOT"
	case Negate:
		return "-"
	default:
		return "UNKNOWN"
	}
}

type BinaryOperator int

const (
	Equals BinaryOperator = iota
	NotEquals
	GreaterThan
	GreaterThanOrEqual
	LessThan
	LessThanOrEqual
	And
	Or
	Add
	Subtract
	Multiply
	Divide
)

func (op BinaryOperator) String() string {
	switch op {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case And:
		return "AND"
	case Or:
		return "OR"
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "UNKNOWN"
	}
}

// Name returns the Go-style operator name used in tree dumps.
func (op BinaryOperator) Name() string {
	return [...]string{
		"Equals", "NotEquals", "GreaterThan", "GreaterThanOrEqual",
		"LessThan", "LessThanOrEqual", "And", "Or",
		"Add", "Subtract", "Multiply", "Divide",
	}[op]
}

// Identifier references a column by name.
type Identifier struct {
	Name string
}

// NumberLiteral is an unsigned integer literal.
type NumberLiteral struct {
	Value uint64
}

// StringLiteral holds the text between the quotes.
type StringLiteral struct {
	Value string
}

type BooleanLiteral struct {
	Value bool
}

type NullLiteral struct{}

type UnaryExpression struct {
	Operator UnaryOperator
	Operand  Expression
}

type BinaryExpression struct {
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

// GroupedExpression marks explicit parentheses. It has no effect on meaning
// but keeps (a OR b) AND c distinguishable from the ungrouped tree.
type GroupedExpression struct {
	Inner Expression
}

func (*Identifier) expressionNode()        {}
func (*NumberLiteral) expressionNode()     {}
func (*StringLiteral) expressionNode()     {}
func (*BooleanLiteral) expressionNode()    {}
func (*NullLiteral) expressionNode()       {}
func (*UnaryExpression) expressionNode()   {}
func (*BinaryExpression) expressionNode()  {}
func (*GroupedExpression) expressionNode() {}

func (e *Identifier) String() string { return e.Name }

func (e *NumberLiteral) String() string { return strconv.FormatUint(e.Value, 10) }

// String quotes with single quotes; values containing one fall back to double quotes.
func (e *StringLiteral) String() string {
	if strings.ContainsRune(e.Value, '\'') {
		return `"` + e.Value + `"`
	}
	return "'" + e.Value + "'"
}

func (e *BooleanLiteral) String() string {
	if e.Value {
		return "TRUE"
	}
	return "FALSE"
}

func (e *NullLiteral) String() string { return "NULL" }

func (e *UnaryExpression) String() string {
	if e.Operator == Not {
		return "NOT " + e.Operand.String()
	}
	return "-" + e.Operand.String()
}

func (e *BinaryExpression) String() string {
	return e.Left.String() + " " + e.Operator.String() + " " + e.Right.String()
}

func (e *GroupedExpression) String() string {
	return "(" + e.Inner.String() + ")"
}

// NewIdentifier, NewNumber and friends keep test fixtures and callers short.
func NewIdentifier(name string) *Identifier { return &Identifier{Name: name} }

func NewNumber(v uint64) *NumberLiteral { return &NumberLiteral{Value: v} }

func NewString(v string) *StringLiteral { return &StringLiteral{Value: v} }

func NewBoolean(v bool) *BooleanLiteral { return &BooleanLiteral{Value: v} }

func NewUnary(op UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{Operator: op, Operand: operand}
}

func NewBinary(left Expression, op BinaryOperator, right Expression) *BinaryExpression {
	return &BinaryExpression{Left: left, Operator: op, Right: right}
}

func NewGrouped(inner Expression) *GroupedExpression {
	return &GroupedExpression{Inner: inner}
}
