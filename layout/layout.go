// Package layout provides bounds-checked access to fixed-offset fields inside
// fixed-size byte blocks.
//
// Row types embed a small block of raw bytes holding their inline string
// columns and 64-bit identifier slots at fixed offsets. A Field describes
// where an inline, NUL-terminated string column lives inside such a block;
// GetString/SetString and GetInt64/PutInt64 are the only code that touches
// block bytes directly.
package layout

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrStringTooLong is returned by SetString when the value does not fit
	// the field, including the NUL terminator.
	ErrStringTooLong = errors.New("string too long")

	// ErrNoTerminator is returned by GetString when no NUL terminator exists
	// within the field bounds. The block is considered corrupt; the partial
	// contents are not returned.
	ErrNoTerminator = errors.New("inline string field has no terminator")

	// ErrOutOfBounds is returned when a field or offset does not lie within
	// the block.
	ErrOutOfBounds = errors.New("field outside block bounds")
)

// Field describes a fixed-size inline string field: a byte offset into the
// enclosing block and the field's total capacity in bytes, terminator
// included. Fields are static, per-column values; they never change at
// runtime.
type Field struct {
	Offset int
	MaxLen int
}

// check verifies the field lies inside buf.
func (f Field) check(buf []byte) error {
	if f.Offset < 0 || f.MaxLen <= 0 || f.Offset+f.MaxLen > len(buf) {
		return fmt.Errorf("%w: offset=%d maxlen=%d block=%d", ErrOutOfBounds, f.Offset, f.MaxLen, len(buf))
	}
	return nil
}

// GetString reads the NUL-terminated string stored in f within buf.
// A field with no terminator inside its bounds fails with ErrNoTerminator.
func GetString(buf []byte, f Field) (string, error) {
	if err := f.check(buf); err != nil {
		return "", err
	}
	b := buf[f.Offset : f.Offset+f.MaxLen]
	for i, c := range b {
		if c == 0 {
			return string(b[:i]), nil
		}
	}
	return "", fmt.Errorf("%w: offset=%d maxlen=%d", ErrNoTerminator, f.Offset, f.MaxLen)
}

// SetString stores s into f within buf, NUL-terminated. The value must be
// strictly shorter than the field capacity to leave room for the terminator;
// otherwise SetString fails with ErrStringTooLong and buf is unchanged.
// Bytes past the terminator are not cleared.
func SetString(buf []byte, f Field, s string) error {
	if err := f.check(buf); err != nil {
		return err
	}
	if len(s) >= f.MaxLen {
		return fmt.Errorf("%w: %q (max %d)", ErrStringTooLong, s, f.MaxLen-1)
	}
	b := buf[f.Offset : f.Offset+f.MaxLen]
	copy(b, s)
	b[len(s)] = 0
	return nil
}

// GetInt64 reads the little-endian int64 stored at off within buf.
func GetInt64(buf []byte, off int) (int64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, fmt.Errorf("%w: offset=%d block=%d", ErrOutOfBounds, off, len(buf))
	}
	return int64(binary.LittleEndian.Uint64(buf[off:])), nil
}

// PutInt64 stores v little-endian at off within buf. The full signed 64-bit
// range is preserved; no narrowing is performed.
func PutInt64(buf []byte, off int, v int64) error {
	if off < 0 || off+8 > len(buf) {
		return fmt.Errorf("%w: offset=%d block=%d", ErrOutOfBounds, off, len(buf))
	}
	binary.LittleEndian.PutUint64(buf[off:], uint64(v))
	return nil
}
