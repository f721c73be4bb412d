// Package ilwd models row identifiers as class-tagged 64-bit integers.
//
// A Class stands for one (table, column) identifier column, e.g.
// ("sngl_inspiral", "event_id"). IDs minted by a Class render as the
// canonical "table:column:n" string form and validate against the Class by
// pointer identity: two Classes describing the same column are still distinct
// classes. Code that accepts IDs therefore compares id.Class() against the
// one Class it resolved at startup, which makes cross-table mixups a cheap
// runtime check instead of a silent integer reinterpretation.
package ilwd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformed is returned when an identifier string is not of the form
	// "table:column:n".
	ErrMalformed = errors.New("malformed ilwd identifier")

	// ErrWrongClass is returned when an identifier string names a different
	// (table, column) pair than the parsing Class.
	ErrWrongClass = errors.New("identifier belongs to a different class")
)

// Class identifies one identifier column. Classes are immutable; identity is
// pointer identity, not structural equality.
type Class struct {
	tableName  string
	columnName string
}

// NewClass creates a Class for the given table and column.
func NewClass(tableName, columnName string) *Class {
	return &Class{tableName: tableName, columnName: columnName}
}

// TableName returns the table the class belongs to.
func (c *Class) TableName() string { return c.tableName }

// ColumnName returns the column the class belongs to.
func (c *Class) ColumnName() string { return c.columnName }

// String returns "table:column".
func (c *Class) String() string {
	return c.tableName + ":" + c.columnName
}

// New mints an ID of this class with payload n. The full signed 64-bit range
// is valid.
func (c *Class) New(n int64) ID {
	return ID{class: c, n: n}
}

// Parse parses the canonical string form of an ID of this class.
// Strings naming another (table, column) pair fail with ErrWrongClass.
func (c *Class) Parse(s string) (ID, error) {
	table, rest, ok := strings.Cut(s, ":")
	if !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	column, num, ok := strings.Cut(rest, ":")
	if !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	if table != c.tableName || column != c.columnName {
		return ID{}, fmt.Errorf("%w: %q is not %s", ErrWrongClass, s, c)
	}
	return ID{class: c, n: n}, nil
}

// ID is one identifier value: an integer payload tagged with the Class that
// minted it. The zero ID has no class and stands for "no value".
type ID struct {
	class *Class
	n     int64
}

// Class returns the Class that minted the ID, or nil for the zero ID.
func (id ID) Class() *Class { return id.class }

// Int returns the integer payload.
func (id ID) Int() int64 { return id.n }

// IsZero reports whether the ID is the zero "no value" ID.
func (id ID) IsZero() bool { return id.class == nil }

// String returns "table:column:n", or "" for the zero ID.
func (id ID) String() string {
	if id.class == nil {
		return ""
	}
	return id.class.String() + ":" + strconv.FormatInt(id.n, 10)
}

// Well-known identifier columns.
const (
	ProcessTable       = "process"
	ProcessIDColumn    = "process_id"
	SnglInspiralTable  = "sngl_inspiral"
	EventIDColumn      = "event_id"
	CoincEventTable    = "coinc_event"
	CoincEventIDColumn = "coinc_event_id"
)

// Resolver produces the Class for a (table, column) pair. It is the seam for
// callers that manage identifier classes elsewhere; NewClass is the default.
type Resolver func(tableName, columnName string) (*Class, error)

// Registry holds the three well-known classes, resolved once at startup and
// read-only afterwards. Pass it explicitly to everything that validates
// identifiers.
type Registry struct {
	// Process is the class of process identifiers.
	Process *Class
	// SnglInspiral is the class of single-inspiral event identifiers.
	SnglInspiral *Class
	// CoincEvent is the class of coincidence-event identifiers.
	CoincEvent *Class
}

// NewRegistry resolves the three well-known classes through resolve.
// A nil resolve uses NewClass. Resolution errors propagate unchanged.
func NewRegistry(resolve Resolver) (*Registry, error) {
	if resolve == nil {
		resolve = func(tableName, columnName string) (*Class, error) {
			return NewClass(tableName, columnName), nil
		}
	}

	process, err := resolve(ProcessTable, ProcessIDColumn)
	if err != nil {
		return nil, fmt.Errorf("resolve %s:%s: %w", ProcessTable, ProcessIDColumn, err)
	}
	sngl, err := resolve(SnglInspiralTable, EventIDColumn)
	if err != nil {
		return nil, fmt.Errorf("resolve %s:%s: %w", SnglInspiralTable, EventIDColumn, err)
	}
	coinc, err := resolve(CoincEventTable, CoincEventIDColumn)
	if err != nil {
		return nil, fmt.Errorf("resolve %s:%s: %w", CoincEventTable, CoincEventIDColumn, err)
	}

	return &Registry{
		Process:      process,
		SnglInspiral: sngl,
		CoincEvent:   coinc,
	}, nil
}
