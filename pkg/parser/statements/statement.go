package statements

type StatementType int

const (
	Select StatementType = iota
	CreateTable
)

func (st StatementType) String() string {
	switch st {
	case Select:
		return "SELECT"
	case CreateTable:
		return "CREATE TABLE"
	default:
		return "UNKNOWN"
	}
}

// IsDML returns true if the statement type is a query
func (st StatementType) IsDML() bool {
	return st == Select
}

// IsDDL returns true if the statement type changes the schema
func (st StatementType) IsDDL() bool {
	return st == CreateTable
}

// Statement is the interface that all SQL statements must implement
type Statement interface {
	// GetType returns the type of the statement
	GetType() StatementType
	// String returns a string representation of the statement
	String() string
	// Validate checks if the statement is valid and returns an error if not
	Validate() error
}
