package record

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hupe1980/gwtools/ilwd"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null ("no value") value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindID represents an ilwd identifier value.
	KindID
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindID:
		return "ID"
	default:
		return "Invalid"
	}
}

// Value is the small typed value that column tables trade in.
//
// Conversions are explicit: a column that stores integers rejects a float
// Value rather than truncating it, and nothing is stringified through fmt.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	S    string
	ID   ilwd.ID
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, S: v} }

// IDValue returns an identifier Value.
func IDValue(id ilwd.ID) Value { return Value{Kind: KindID, ID: id} }

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.S, true
}

// AsID returns the identifier value if Kind is KindID.
func (v Value) AsID() (ilwd.ID, bool) {
	if v.Kind != KindID {
		return ilwd.ID{}, false
	}
	return v.ID, true
}

// IsNull reports whether the Value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Int64 converts the Value to an int64.
//
// KindInt converts directly. KindFloat converts only when the payload is an
// integral value inside the signed 64-bit range; anything else fails with
// ErrOverflow. Remaining kinds fail with ErrNotInteger. There is no silent
// narrowing.
func (v Value) Int64() (int64, error) {
	switch v.Kind {
	case KindInt:
		return v.I64, nil
	case KindFloat:
		f := v.F64
		// Values at or beyond 2^63 are not representable; math.MinInt64 is.
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %g", ErrOverflow, f)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %g", ErrNotInteger, f)
		}
		return int64(f), nil
	default:
		return 0, fmt.Errorf("%w: kind %s", ErrNotInteger, v.Kind)
	}
}

// Float64 converts the Value to a float64. KindInt widens; KindFloat converts
// directly; remaining kinds fail with ErrWrongKind.
func (v Value) Float64() (float64, error) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), nil
	case KindFloat:
		return v.F64, nil
	default:
		return 0, fmt.Errorf("%w: kind %s is not numeric", ErrWrongKind, v.Kind)
	}
}

// GoString returns a debug representation of the Value.
func (v Value) GoString() string {
	switch v.Kind {
	case KindNull:
		return "Null()"
	case KindInt:
		return "Int(" + strconv.FormatInt(v.I64, 10) + ")"
	case KindFloat:
		return "Float(" + strconv.FormatFloat(v.F64, 'g', -1, 64) + ")"
	case KindString:
		return "String(" + strconv.Quote(v.S) + ")"
	case KindID:
		return "IDValue(" + v.ID.String() + ")"
	default:
		return "Value{}"
	}
}
