package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/gwtools/ilwd"
	"github.com/hupe1980/gwtools/record"
)

// Row is the surface the codec drives: any record kind with a column table.
type Row interface {
	Columns() []string
	Get(name string) (record.Value, error)
	Set(name string, v record.Value) error
}

// Table is one snapshot's contents.
type Table struct {
	Events []*record.SnglInspiral
	Coincs []*record.CoincMap
}

func encodeTable(t *Table) ([]byte, error) {
	// Rough guess to avoid early regrowth: each event row carries ~60
	// columns of a few bytes each.
	buf := make([]byte, 0, 256+len(t.Events)*512+len(t.Coincs)*64)

	buf = binary.AppendUvarint(buf, uint64(len(t.Events)))
	for _, row := range t.Events {
		var err error
		buf, err = appendRow(buf, row)
		if err != nil {
			return nil, err
		}
	}

	buf = binary.AppendUvarint(buf, uint64(len(t.Coincs)))
	for _, row := range t.Coincs {
		var err error
		buf, err = appendRow(buf, row)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func appendRow(buf []byte, row Row) ([]byte, error) {
	cols := row.Columns()
	buf = binary.AppendUvarint(buf, uint64(len(cols)))
	for _, name := range cols {
		v, err := row.Get(name)
		if err != nil {
			return nil, fmt.Errorf("encode column %q: %w", name, err)
		}
		buf = binary.AppendUvarint(buf, uint64(len(name)))
		buf = append(buf, name...)
		buf, err = appendValue(buf, v)
		if err != nil {
			return nil, fmt.Errorf("encode column %q: %w", name, err)
		}
	}
	return buf, nil
}

func appendValue(buf []byte, v record.Value) ([]byte, error) {
	buf = append(buf, byte(v.Kind))

	switch v.Kind {
	case record.KindNull:
		// No payload.
	case record.KindInt:
		buf = binary.AppendVarint(buf, v.I64)
	case record.KindFloat:
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.F64))
	case record.KindString:
		buf = binary.AppendUvarint(buf, uint64(len(v.S)))
		buf = append(buf, v.S...)
	case record.KindID:
		id := v.ID
		if id.IsZero() {
			return nil, errors.New("cannot encode zero identifier")
		}
		buf = appendString(buf, id.Class().TableName())
		buf = appendString(buf, id.Class().ColumnName())
		buf = binary.AppendVarint(buf, id.Int())
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.Kind)
	}
	return buf, nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// decoder decodes a snapshot payload against one registry. Identifier
// classes matching the registry's well-known columns decode to the
// registry's class instances, so decoded IDs pass the rows' identity
// checks; other (table, column) pairs get one freshly minted class per
// decode, shared across the snapshot's rows.
type decoder struct {
	reg   *ilwd.Registry
	extra map[string]*ilwd.Class
}

func newDecoder(reg *ilwd.Registry) *decoder {
	return &decoder{reg: reg, extra: make(map[string]*ilwd.Class)}
}

func (d *decoder) class(tableName, columnName string) *ilwd.Class {
	for _, c := range []*ilwd.Class{d.reg.Process, d.reg.SnglInspiral, d.reg.CoincEvent} {
		if c.TableName() == tableName && c.ColumnName() == columnName {
			return c
		}
	}
	key := tableName + ":" + columnName
	c, ok := d.extra[key]
	if !ok {
		c = ilwd.NewClass(tableName, columnName)
		d.extra[key] = c
	}
	return c
}

func (d *decoder) decodeTable(data []byte) (*Table, error) {
	t := &Table{}

	nEvents, data, err := parseUvarint(data)
	if err != nil {
		return nil, err
	}
	for range nEvents {
		row := record.NewSnglInspiral(d.reg)
		data, err = d.parseRow(data, row)
		if err != nil {
			return nil, err
		}
		t.Events = append(t.Events, row)
	}

	nCoincs, data, err := parseUvarint(data)
	if err != nil {
		return nil, err
	}
	for range nCoincs {
		row := record.NewCoincMap(d.reg)
		data, err = d.parseRow(data, row)
		if err != nil {
			return nil, err
		}
		t.Coincs = append(t.Coincs, row)
	}

	if len(data) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(data))
	}
	return t, nil
}

// parseRow decodes one row's columns into row. Null values are skipped
// (nothing was assigned), and read-only columns are skipped because their
// values are derived; everything else goes through Set and is validated by
// the row's column table.
func (d *decoder) parseRow(data []byte, row Row) ([]byte, error) {
	nCols, data, err := parseUvarint(data)
	if err != nil {
		return nil, err
	}
	for range nCols {
		var name string
		name, data, err = parseString(data)
		if err != nil {
			return nil, err
		}
		var v record.Value
		v, data, err = d.parseValue(data)
		if err != nil {
			return nil, fmt.Errorf("decode column %q: %w", name, err)
		}
		if v.IsNull() {
			continue
		}
		if err := row.Set(name, v); err != nil {
			if errors.Is(err, record.ErrReadOnly) {
				continue
			}
			return nil, fmt.Errorf("decode column %q: %w", name, err)
		}
	}
	return data, nil
}

func (d *decoder) parseValue(data []byte) (record.Value, []byte, error) {
	if len(data) == 0 {
		return record.Value{}, nil, fmt.Errorf("%w: short buffer for value kind", ErrCorrupt)
	}
	kind := record.Kind(data[0])
	data = data[1:]

	switch kind {
	case record.KindNull:
		return record.Null(), data, nil
	case record.KindInt:
		i, n := binary.Varint(data)
		if n <= 0 {
			return record.Value{}, nil, fmt.Errorf("%w: invalid int value", ErrCorrupt)
		}
		return record.Int(i), data[n:], nil
	case record.KindFloat:
		if len(data) < 8 {
			return record.Value{}, nil, fmt.Errorf("%w: short buffer for float", ErrCorrupt)
		}
		f := math.Float64frombits(binary.LittleEndian.Uint64(data))
		return record.Float(f), data[8:], nil
	case record.KindString:
		s, data, err := parseString(data)
		if err != nil {
			return record.Value{}, nil, err
		}
		return record.String(s), data, nil
	case record.KindID:
		tableName, data, err := parseString(data)
		if err != nil {
			return record.Value{}, nil, err
		}
		columnName, data, err := parseString(data)
		if err != nil {
			return record.Value{}, nil, err
		}
		i, n := binary.Varint(data)
		if n <= 0 {
			return record.Value{}, nil, fmt.Errorf("%w: invalid identifier payload", ErrCorrupt)
		}
		id := d.class(tableName, columnName).New(i)
		return record.IDValue(id), data[n:], nil
	default:
		return record.Value{}, nil, fmt.Errorf("%w: unknown value kind %d", ErrCorrupt, kind)
	}
}

func parseUvarint(data []byte) (uint64, []byte, error) {
	v, n := binary.Uvarint(data)
	if n <= 0 {
		return 0, nil, fmt.Errorf("%w: invalid varint", ErrCorrupt)
	}
	return v, data[n:], nil
}

func parseString(data []byte) (string, []byte, error) {
	sLen, data, err := parseUvarint(data)
	if err != nil {
		return "", nil, err
	}
	if uint64(len(data)) < sLen {
		return "", nil, fmt.Errorf("%w: short buffer for string", ErrCorrupt)
	}
	return string(data[:sLen]), data[sLen:], nil
}
