package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedDetectorsContents(t *testing.T) {
	detectors := CachedDetectors()

	expected := []string{"LHO_4k", "LHO_2k", "LLO_4k", "VIRGO", "GEO_600", "TAMA_300"}
	assert.Len(t, detectors, len(expected))
	for _, name := range expected {
		d, ok := detectors[name]
		require.True(t, ok, name)
		assert.Equal(t, name, d.Name())
	}

	assert.Equal(t, "H1", detectors["LHO_4k"].Prefix())
	assert.Equal(t, "L1", detectors["LLO_4k"].Prefix())
	assert.Equal(t, "V1", detectors["VIRGO"].Prefix())
}

func TestDetectorViews(t *testing.T) {
	for name, d := range CachedDetectors() {
		loc := d.Location()
		require.Len(t, loc, 3, name)

		resp := d.Response()
		require.Len(t, resp, 3, name)
		for _, row := range resp {
			require.Len(t, row, 3, name)
		}

		// The response tensor is symmetric and traceless.
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.Equal(t, resp[i][j], resp[j][i], name)
			}
		}
		assert.InDelta(t, 0, float64(resp[0][0]+resp[1][1]+resp[2][2]), 1e-5, name)
	}
}

func TestDetectorViewsAliasRecord(t *testing.T) {
	d := CachedDetectors()["LLO_4k"]

	assert.Same(t, &d.location[0], &d.Location()[0])
	assert.Same(t, &d.response[1][2], &d.Response()[1][2])
}

func TestDetectorCompiledInConstants(t *testing.T) {
	detectors := CachedDetectors()

	lho := detectors["LHO_4k"]
	assert.Equal(t, []float64{-2161414.92636, -3834695.17889, 4600350.22664}, lho.Location())
	assert.Equal(t, float32(-0.3926141), lho.Response()[0][0])
	assert.Equal(t, -2.08405676917, lho.VertexLongitudeRadians())

	llo := detectors["LLO_4k"]
	assert.Equal(t, []float64{-74276.0447238, -5496283.71971, 3224257.01744}, llo.Location())
	assert.Equal(t, float32(0.4112809), llo.Response()[0][0])

	virgo := detectors["VIRGO"]
	assert.Equal(t, []float64{4546374.099, 842989.697626, 4378576.96241}, virgo.Location())
	assert.Equal(t, float32(1500.0), virgo.XArmMidpoint())
}

func TestDetectorColumnsReadOnly(t *testing.T) {
	d := CachedDetectors()["GEO_600"]

	v, err := d.Get("name")
	require.NoError(t, err)
	assert.Equal(t, String("GEO_600"), v)

	v, err = d.Get("vertexElevation")
	require.NoError(t, err)
	f, ok := v.AsFloat64()
	require.True(t, ok)
	assert.InDelta(t, 114.425, f, 1e-3)

	for _, name := range d.Columns() {
		assert.ErrorIs(t, d.Set(name, Float(0)), ErrReadOnly, name)
	}

	_, err = d.Get("mass1")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestCachedDetectorsSharedRecords(t *testing.T) {
	a := CachedDetectors()
	b := CachedDetectors()

	// Fresh maps, shared immutable records.
	require.NotNil(t, a)
	assert.Same(t, a["VIRGO"], b["VIRGO"])
	delete(a, "VIRGO")
	assert.Contains(t, CachedDetectors(), "VIRGO")
}
