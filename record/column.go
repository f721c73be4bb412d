package record

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/gwtools/ilwd"
	"github.com/hupe1980/gwtools/layout"
)

var (
	// ErrUnknownColumn is returned for a column name the record kind does not
	// have.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrReadOnly is returned when setting a read-only column.
	ErrReadOnly = errors.New("column is read-only")

	// ErrNotInteger is returned when an integer column is assigned a
	// non-integer value.
	ErrNotInteger = errors.New("value is not an integer")

	// ErrOverflow is returned when a value does not fit the column's integer
	// width.
	ErrOverflow = errors.New("integer value out of range")

	// ErrWrongKind is returned when a column is assigned a value of an
	// incompatible kind.
	ErrWrongKind = errors.New("wrong value kind")

	// ErrWrongIDType is returned when an identifier column is assigned an ID
	// minted by a different class than the one the record's registry holds
	// for that column.
	ErrWrongIDType = errors.New("wrong identifier class")
)

// column binds one named column of a record kind to typed get/set functions.
// Tables of columns are static per kind; they are the record's entire dynamic
// surface, so every bounds, width, and class check lives in them.
type column[R any] struct {
	get func(r *R) (Value, error)
	set func(r *R, v Value) error
}

func getColumn[R any](table map[string]column[R], r *R, name string) (Value, error) {
	c, ok := table[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return c.get(r)
}

func setColumn[R any](table map[string]column[R], r *R, name string, v Value) error {
	c, ok := table[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if c.set == nil {
		return fmt.Errorf("%w: %q", ErrReadOnly, name)
	}
	return c.set(r, v)
}

func columnNames[R any](table map[string]column[R]) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// f32Col is a writable float32 column. Assignment narrows float64 storage to
// float32, matching the column's declared width.
func f32Col[R any](p func(*R) *float32) column[R] {
	return column[R]{
		get: func(r *R) (Value, error) {
			return Float(float64(*p(r))), nil
		},
		set: func(r *R, v Value) error {
			f, err := v.Float64()
			if err != nil {
				return err
			}
			*p(r) = float32(f)
			return nil
		},
	}
}

// f64Col is a writable float64 column.
func f64Col[R any](p func(*R) *float64) column[R] {
	return column[R]{
		get: func(r *R) (Value, error) {
			return Float(*p(r)), nil
		},
		set: func(r *R, v Value) error {
			f, err := v.Float64()
			if err != nil {
				return err
			}
			*p(r) = f
			return nil
		},
	}
}

// i32Col is a writable int32 column. Values outside the 32-bit signed range
// fail with ErrOverflow; the field is left unchanged.
func i32Col[R any](p func(*R) *int32) column[R] {
	return column[R]{
		get: func(r *R) (Value, error) {
			return Int(int64(*p(r))), nil
		},
		set: func(r *R, v Value) error {
			i, err := v.Int64()
			if err != nil {
				return err
			}
			if i < math.MinInt32 || i > math.MaxInt32 {
				return fmt.Errorf("%w: %d does not fit int32", ErrOverflow, i)
			}
			*p(r) = int32(i)
			return nil
		},
	}
}

// strCol is a writable inline string column stored at f inside the record's
// name block.
func strCol[R any](block func(*R) []byte, f layout.Field) column[R] {
	return column[R]{
		get: func(r *R) (Value, error) {
			s, err := layout.GetString(block(r), f)
			if err != nil {
				return Value{}, err
			}
			return String(s), nil
		},
		set: func(r *R, v Value) error {
			s, ok := v.AsString()
			if !ok {
				return fmt.Errorf("%w: kind %s is not a string", ErrWrongKind, v.Kind)
			}
			return layout.SetString(block(r), f, s)
		},
	}
}

// idCol is a writable identifier column backed by a raw int64 slot. class
// selects the registry class the assigned ID must have been minted by; the
// check is class identity, and a failed check leaves the raw slot unchanged.
func idCol[R any](class func(*R) *ilwd.Class, getRaw func(*R) int64, setRaw func(*R, int64)) column[R] {
	return column[R]{
		get: func(r *R) (Value, error) {
			return IDValue(class(r).New(getRaw(r))), nil
		},
		set: func(r *R, v Value) error {
			id, ok := v.AsID()
			if !ok {
				return fmt.Errorf("%w: kind %s is not an identifier", ErrWrongKind, v.Kind)
			}
			want := class(r)
			if id.Class() != want {
				return fmt.Errorf("%w: got %q, want class %s", ErrWrongIDType, id.String(), want)
			}
			setRaw(r, id.Int())
			return nil
		},
	}
}

// roF64Col is a read-only float64 column.
func roF64Col[R any](p func(*R) float64) column[R] {
	return column[R]{
		get: func(r *R) (Value, error) { return Float(p(r)), nil },
	}
}

// roF32Col is a read-only float32 column.
func roF32Col[R any](p func(*R) float32) column[R] {
	return column[R]{
		get: func(r *R) (Value, error) { return Float(float64(p(r))), nil },
	}
}

// roStrCol is a read-only string column.
func roStrCol[R any](p func(*R) string) column[R] {
	return column[R]{
		get: func(r *R) (Value, error) { return String(p(r)), nil },
	}
}
