package coincindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gwtools/ilwd"
	"github.com/hupe1980/gwtools/record"
)

func newTestRegistry(t *testing.T) *ilwd.Registry {
	t.Helper()
	reg, err := ilwd.NewRegistry(nil)
	require.NoError(t, err)
	return reg
}

func newRow(t *testing.T, reg *ilwd.Registry, eventID, coincID int64) *record.CoincMap {
	t.Helper()
	m := record.NewCoincMap(reg)
	require.NoError(t, m.SetEventID(reg.SnglInspiral.New(eventID)))
	require.NoError(t, m.SetCoincEventID(reg.CoincEvent.New(coincID)))
	return m
}

func TestIndexGrouping(t *testing.T) {
	reg := newTestRegistry(t)
	ix := New(reg)

	rows := []*record.CoincMap{
		newRow(t, reg, 10, 1),
		newRow(t, reg, 11, 1),
		newRow(t, reg, 12, 2),
		newRow(t, reg, 13, 1),
	}
	for i, row := range rows {
		n, err := ix.Add(row)
		require.NoError(t, err)
		assert.Equal(t, uint32(i), n)
	}

	assert.Equal(t, 4, ix.Len())
	assert.Same(t, rows[2], ix.Row(2))

	c1 := reg.CoincEvent.New(1)
	c2 := reg.CoincEvent.New(2)
	c3 := reg.CoincEvent.New(3)

	assert.Equal(t, uint64(3), ix.Cardinality(c1))
	assert.Equal(t, uint64(1), ix.Cardinality(c2))
	assert.Equal(t, uint64(0), ix.Cardinality(c3))

	ids := ix.EventIDs(c1)
	require.Len(t, ids, 3)
	assert.Equal(t, "sngl_inspiral:event_id:10", ids[0].String())
	assert.Equal(t, "sngl_inspiral:event_id:11", ids[1].String())
	assert.Equal(t, "sngl_inspiral:event_id:13", ids[2].String())

	assert.Empty(t, ix.EventIDs(c3))
}

func TestIndexRowsIteration(t *testing.T) {
	reg := newTestRegistry(t)
	ix := New(reg)

	for i := int64(0); i < 5; i++ {
		_, err := ix.Add(newRow(t, reg, 100+i, i%2))
		require.NoError(t, err)
	}

	var nums []uint32
	for n, row := range ix.Rows(reg.CoincEvent.New(0)) {
		nums = append(nums, n)
		require.NotNil(t, row)
	}
	assert.Equal(t, []uint32{0, 2, 4}, nums)
}

func TestIndexCoincIDs(t *testing.T) {
	reg := newTestRegistry(t)
	ix := New(reg)

	for _, coinc := range []int64{5, -3, 5, 0} {
		_, err := ix.Add(newRow(t, reg, 1, coinc))
		require.NoError(t, err)
	}

	ids := ix.CoincIDs()
	require.Len(t, ids, 3)
	assert.Equal(t, int64(-3), ids[0].Int())
	assert.Equal(t, int64(0), ids[1].Int())
	assert.Equal(t, int64(5), ids[2].Int())
	assert.Same(t, reg.CoincEvent, ids[0].Class())
}

func TestIndexAddErrors(t *testing.T) {
	reg := newTestRegistry(t)
	ix := New(reg)

	// Row with no event identifier assigned.
	bare := record.NewCoincMap(reg)
	require.NoError(t, bare.SetCoincEventID(reg.CoincEvent.New(1)))
	_, err := ix.Add(bare)
	assert.ErrorIs(t, err, ErrUnsetEventID)

	// Row from a different registry.
	other := newTestRegistry(t)
	_, err = ix.Add(newRow(t, other, 1, 1))
	assert.ErrorIs(t, err, ErrWrongRegistry)

	assert.Equal(t, 0, ix.Len())
}
