package ethinca

import (
	"context"
	"math"
	"testing"
	"time"

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

func newEvent(t *testing.T, reg *ilwd.Registry, endTime int32, endTimeNS int32) *record.SnglInspiral {
	t.Helper()
	r := record.NewSnglInspiral(reg)
	r.EndTime = endTime
	r.EndTimeNS = endTimeNS
	require.NoError(t, r.SetIfo("H1"))
	return r
}

func TestFailNaN(t *testing.T) {
	assert.True(t, math.IsNaN(FailNaN()))
	assert.True(t, IsFailNaN(FailNaN()))

	// Ordinary NaNs and values are not the sentinel.
	assert.False(t, IsFailNaN(math.NaN()))
	assert.False(t, IsFailNaN(0))
	assert.False(t, IsFailNaN(math.Inf(1)))
}

func TestNewRequiresMetric(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoMetric)
}

func TestEThincaCoincident(t *testing.T) {
	reg := newTestRegistry(t)
	c, err := New(TimeWindow(50 * time.Millisecond))
	require.NoError(t, err)

	a := newEvent(t, reg, 873739000, 0)
	b := newEvent(t, reg, 873739000, 25_000_000)

	v, err := c.EThinca(a, b)
	require.NoError(t, err)
	assert.Equal(t, 25e6, v)

	// Symmetric.
	v, err = c.EThinca(b, a)
	require.NoError(t, err)
	assert.Equal(t, 25e6, v)
}

func TestEThincaNotCoincident(t *testing.T) {
	reg := newTestRegistry(t)
	c, err := New(TimeWindow(10 * time.Millisecond))
	require.NoError(t, err)

	a := newEvent(t, reg, 873739000, 0)
	b := newEvent(t, reg, 873739100, 0)

	_, err = c.EThinca(a, b)
	require.ErrorIs(t, err, ErrNotCoincident)
	assert.EqualError(t, err, "not coincident")
}

func TestEThincaFreshRowAgainstItself(t *testing.T) {
	// A freshly constructed row must be immediately usable by the metric.
	reg := newTestRegistry(t)
	c, err := New(TimeWindow(10 * time.Millisecond))
	require.NoError(t, err)

	r := record.NewSnglInspiral(reg)
	v, err := c.EThinca(r, r)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestEThincaNilRow(t *testing.T) {
	c, err := New(TimeWindow(time.Millisecond))
	require.NoError(t, err)

	_, err = c.EThinca(nil, nil)
	assert.ErrorIs(t, err, ErrNilRow)
}

func TestEThincaPopulatesAccuracyParams(t *testing.T) {
	reg := newTestRegistry(t)

	var seen *AccuracyParams
	metric := func(a, b *record.SnglInspiral, p *AccuracyParams) float64 {
		seen = p
		return 1.0
	}

	c, err := New(metric)
	require.NoError(t, err)

	_, err = c.EThinca(record.NewSnglInspiral(reg), record.NewSnglInspiral(reg))
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, 0.6, seen.IotaCutH1H2)
	assert.False(t, seen.Exttrig)
	assert.Contains(t, seen.Detectors, "H1")
	assert.Contains(t, seen.Detectors, "V1")
	assert.Equal(t, 10e6, seen.Detectors["L1"].DtNanoSec)
}

func TestEThincaCustomPopulate(t *testing.T) {
	reg := newTestRegistry(t)

	var got SnglAccuracy
	metric := func(a, b *record.SnglInspiral, p *AccuracyParams) float64 {
		got = p.Detectors["H1"]
		return 1.0
	}

	c, err := New(metric, func(o *Options) {
		o.Populate = func(p *AccuracyParams) {
			p.Detectors["H1"] = SnglAccuracy{DtNanoSec: 5e6, Epsilon: 1.0}
		}
	})
	require.NoError(t, err)

	_, err = c.EThinca(record.NewSnglInspiral(reg), record.NewSnglInspiral(reg))
	require.NoError(t, err)
	assert.Equal(t, SnglAccuracy{DtNanoSec: 5e6, Epsilon: 1.0}, got)

	// Pooled params are reset between calls: only the custom entry exists.
	_, err = c.EThinca(record.NewSnglInspiral(reg), record.NewSnglInspiral(reg))
	require.NoError(t, err)
	assert.Equal(t, SnglAccuracy{DtNanoSec: 5e6, Epsilon: 1.0}, got)
}

func TestScanPairs(t *testing.T) {
	reg := newTestRegistry(t)
	c, err := New(TimeWindow(20*time.Millisecond), func(o *Options) {
		o.ScanWorkers = 3
	})
	require.NoError(t, err)

	rowsA := []*record.SnglInspiral{
		newEvent(t, reg, 100, 0),
		newEvent(t, reg, 200, 0),
		newEvent(t, reg, 300, 0),
		newEvent(t, reg, 400, 0),
	}
	rowsB := []*record.SnglInspiral{
		newEvent(t, reg, 100, 10_000_000),
		newEvent(t, reg, 300, 0),
		newEvent(t, reg, 999, 0),
	}

	pairs, err := c.ScanPairs(context.Background(), rowsA, rowsB)
	require.NoError(t, err)

	assert.Equal(t, []Pair{
		{A: 0, B: 0, Value: 10e6},
		{A: 2, B: 1, Value: 0},
	}, pairs)
}

func TestScanPairsEmpty(t *testing.T) {
	c, err := New(TimeWindow(time.Millisecond))
	require.NoError(t, err)

	pairs, err := c.ScanPairs(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestScanPairsNilRow(t *testing.T) {
	reg := newTestRegistry(t)
	c, err := New(TimeWindow(time.Millisecond))
	require.NoError(t, err)

	_, err = c.ScanPairs(context.Background(), []*record.SnglInspiral{newEvent(t, reg, 1, 0)}, []*record.SnglInspiral{nil})
	assert.ErrorIs(t, err, ErrNilRow)
}

func TestScanPairsCancelled(t *testing.T) {
	reg := newTestRegistry(t)
	c, err := New(TimeWindow(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := []*record.SnglInspiral{newEvent(t, reg, 1, 0), newEvent(t, reg, 2, 0)}
	_, err = c.ScanPairs(ctx, rows, rows)
	assert.ErrorIs(t, err, context.Canceled)
}
