// Package coincindex groups coinc_event_map rows by coincidence identifier.
//
// The index assigns each added row a dense 32-bit row number and keeps one
// roaring bitmap of row numbers per coincidence identifier, so membership
// queries and per-coincidence iteration stay cheap for large maps.
package coincindex

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gwtools/ilwd"
	"github.com/hupe1980/gwtools/record"
)

var (
	// ErrUnsetEventID is returned when adding a row whose event identifier
	// has never been assigned.
	ErrUnsetEventID = errors.New("coinc map row has no event identifier")

	// ErrWrongRegistry is returned when adding a row bound to a different
	// registry than the index.
	ErrWrongRegistry = errors.New("row belongs to a different registry")
)

// Index is an in-memory index over CoincMap rows.
// It is not safe for concurrent mutation.
type Index struct {
	reg  *ilwd.Registry
	rows []*record.CoincMap

	// byCoinc maps a coincidence identifier payload to the rows linking
	// events into that coincidence.
	byCoinc map[int64]*roaring.Bitmap
}

// New creates an empty index bound to reg.
func New(reg *ilwd.Registry) *Index {
	return &Index{
		reg:     reg,
		byCoinc: make(map[int64]*roaring.Bitmap),
	}
}

// Add indexes row and returns its dense row number. The row must carry an
// assigned event identifier and belong to the index's registry.
func (ix *Index) Add(row *record.CoincMap) (uint32, error) {
	if row.Registry() != ix.reg {
		return 0, ErrWrongRegistry
	}
	if _, ok := row.EventID(); !ok {
		return 0, fmt.Errorf("%w: coinc %s", ErrUnsetEventID, row.CoincEventID())
	}

	n := uint32(len(ix.rows))
	ix.rows = append(ix.rows, row)

	key := row.CoincEventID().Int()
	bm, ok := ix.byCoinc[key]
	if !ok {
		bm = roaring.New()
		ix.byCoinc[key] = bm
	}
	bm.Add(n)

	return n, nil
}

// Len returns the number of indexed rows.
func (ix *Index) Len() int { return len(ix.rows) }

// Row returns the indexed row with the given dense row number.
func (ix *Index) Row(n uint32) *record.CoincMap {
	return ix.rows[n]
}

// Cardinality returns the number of rows linked into the coincidence.
func (ix *Index) Cardinality(coincID ilwd.ID) uint64 {
	bm, ok := ix.byCoinc[coincID.Int()]
	if !ok {
		return 0
	}
	return bm.GetCardinality()
}

// Rows iterates the rows linked into the coincidence in row-number order.
func (ix *Index) Rows(coincID ilwd.ID) iter.Seq2[uint32, *record.CoincMap] {
	return func(yield func(uint32, *record.CoincMap) bool) {
		bm, ok := ix.byCoinc[coincID.Int()]
		if !ok {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			n := it.Next()
			if !yield(n, ix.rows[n]) {
				return
			}
		}
	}
}

// EventIDs returns the event identifiers linked into the coincidence, in
// row-number order.
func (ix *Index) EventIDs(coincID ilwd.ID) []ilwd.ID {
	var ids []ilwd.ID
	for _, row := range ix.Rows(coincID) {
		id, _ := row.EventID()
		ids = append(ids, id)
	}
	return ids
}

// CoincIDs returns all coincidence identifiers present in the index, sorted
// by payload.
func (ix *Index) CoincIDs() []ilwd.ID {
	keys := make([]int64, 0, len(ix.byCoinc))
	for k := range ix.byCoinc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	ids := make([]ilwd.ID, len(keys))
	for i, k := range keys {
		ids[i] = ix.reg.CoincEvent.New(k)
	}
	return ids
}
