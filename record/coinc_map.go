package record

import (
	"fmt"

	"github.com/hupe1980/gwtools/ilwd"
)

// CoincMap is one row of the coinc_event_map table, linking an event row to a
// coincidence grouping.
//
// Rows of this table can reference events from different tables, so the
// event-id column does not validate against one fixed class: it records the
// class of whatever identifier was assigned, and the derived table_name
// column reports that class's table. Before the first assignment both yield
// "no value". The coinc_event_id column does validate, against the registry's
// coincidence-event class.
type CoincMap struct {
	reg *ilwd.Registry

	eventIDClass *ilwd.Class
	eventID      int64
	coincEventID int64
}

// NewCoincMap creates a zeroed row bound to reg.
func NewCoincMap(reg *ilwd.Registry) *CoincMap {
	return &CoincMap{reg: reg}
}

// Registry returns the identifier registry the row was built with.
func (m *CoincMap) Registry() *ilwd.Registry { return m.reg }

// EventID returns the linked event identifier. ok is false until an event
// identifier has been assigned.
func (m *CoincMap) EventID() (ilwd.ID, bool) {
	if m.eventIDClass == nil {
		return ilwd.ID{}, false
	}
	return m.eventIDClass.New(m.eventID), true
}

// SetEventID assigns the linked event identifier and records the class that
// minted it. The zero ID is rejected.
func (m *CoincMap) SetEventID(id ilwd.ID) error {
	return m.Set("event_id", IDValue(id))
}

// TableName returns the table name of the class that produced the event
// identifier. ok is false until an event identifier has been assigned.
func (m *CoincMap) TableName() (string, bool) {
	if m.eventIDClass == nil {
		return "", false
	}
	return m.eventIDClass.TableName(), true
}

// CoincEventID mints the row's coincidence-event identifier.
func (m *CoincMap) CoincEventID() ilwd.ID {
	return m.reg.CoincEvent.New(m.coincEventID)
}

// SetCoincEventID stores id's payload. id must have been minted by the
// registry's coincidence-event class.
func (m *CoincMap) SetCoincEventID(id ilwd.ID) error {
	return m.Set("coinc_event_id", IDValue(id))
}

var coincMapColumns = map[string]column[CoincMap]{
	"event_id": {
		get: func(m *CoincMap) (Value, error) {
			id, ok := m.EventID()
			if !ok {
				return Null(), nil
			}
			return IDValue(id), nil
		},
		set: func(m *CoincMap, v Value) error {
			id, ok := v.AsID()
			if !ok {
				return fmt.Errorf("%w: kind %s is not an identifier", ErrWrongKind, v.Kind)
			}
			if id.IsZero() {
				return fmt.Errorf("%w: zero identifier has no class", ErrWrongIDType)
			}
			m.eventIDClass = id.Class()
			m.eventID = id.Int()
			return nil
		},
	},
	"table_name": {
		get: func(m *CoincMap) (Value, error) {
			name, ok := m.TableName()
			if !ok {
				return Null(), nil
			}
			return String(name), nil
		},
	},
	"coinc_event_id": idCol(
		func(m *CoincMap) *ilwd.Class { return m.reg.CoincEvent },
		func(m *CoincMap) int64 { return m.coincEventID },
		func(m *CoincMap, v int64) { m.coincEventID = v },
	),
}

var coincMapColumnNames = columnNames(coincMapColumns)

// Get returns the named column's value.
func (m *CoincMap) Get(name string) (Value, error) {
	return getColumn(coincMapColumns, m, name)
}

// Set assigns the named column. A failed assignment leaves the column
// unchanged.
func (m *CoincMap) Set(name string, v Value) error {
	return setColumn(coincMapColumns, m, name, v)
}

// Columns returns the sorted column names of the coinc_event_map table.
func (m *CoincMap) Columns() []string {
	return coincMapColumnNames
}
