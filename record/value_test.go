package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gwtools/ilwd"
)

func TestValueAccessors(t *testing.T) {
	c := ilwd.NewClass("sngl_inspiral", "event_id")

	i, ok := Int(5).AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(5), i)

	f, ok := Float(2.5).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	s, ok := String("H1").AsString()
	assert.True(t, ok)
	assert.Equal(t, "H1", s)

	id, ok := IDValue(c.New(9)).AsID()
	assert.True(t, ok)
	assert.Equal(t, int64(9), id.Int())

	assert.True(t, Null().IsNull())

	// Cross-kind accessors report absence.
	_, ok = Int(5).AsString()
	assert.False(t, ok)
	_, ok = String("x").AsInt64()
	assert.False(t, ok)
}

func TestValueInt64(t *testing.T) {
	tests := []struct {
		name     string
		v        Value
		expected int64
		err      error
	}{
		{"Int", Int(42), 42, nil},
		{"IntMin", Int(math.MinInt64), math.MinInt64, nil},
		{"IntegralFloat", Float(12), 12, nil},
		{"NegativeIntegralFloat", Float(-3), -3, nil},
		{"FractionalFloat", Float(1.5), 0, ErrNotInteger},
		{"HugeFloat", Float(1e300), 0, ErrOverflow},
		{"NegativeHugeFloat", Float(-1e300), 0, ErrOverflow},
		{"NaN", Float(math.NaN()), 0, ErrOverflow},
		{"String", String("5"), 0, ErrNotInteger},
		{"Null", Null(), 0, ErrNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Int64()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValueFloat64(t *testing.T) {
	f, err := Int(3).Float64()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	f, err = Float(2.25).Float64()
	require.NoError(t, err)
	assert.Equal(t, 2.25, f)

	_, err = String("x").Float64()
	assert.ErrorIs(t, err, ErrWrongKind)
}
