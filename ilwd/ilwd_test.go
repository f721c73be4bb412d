package ilwd

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDString(t *testing.T) {
	c := NewClass("sngl_inspiral", "event_id")

	tests := []struct {
		n        int64
		expected string
	}{
		{0, "sngl_inspiral:event_id:0"},
		{42, "sngl_inspiral:event_id:42"},
		{-7, "sngl_inspiral:event_id:-7"},
		{math.MaxInt64, "sngl_inspiral:event_id:9223372036854775807"},
		{math.MinInt64, "sngl_inspiral:event_id:-9223372036854775808"},
	}

	for _, tt := range tests {
		id := c.New(tt.n)
		assert.Equal(t, tt.expected, id.String())
		assert.Equal(t, tt.n, id.Int())
		assert.Same(t, c, id.Class())
		assert.False(t, id.IsZero())
	}
}

func TestZeroID(t *testing.T) {
	var id ID
	assert.True(t, id.IsZero())
	assert.Nil(t, id.Class())
	assert.Equal(t, "", id.String())
}

func TestParseRoundTrip(t *testing.T) {
	c := NewClass("coinc_event", "coinc_event_id")

	for _, n := range []int64{0, 1, -1, 1 << 40, math.MinInt64, math.MaxInt64} {
		id, err := c.Parse(c.New(n).String())
		require.NoError(t, err)
		assert.Equal(t, n, id.Int())
		assert.Same(t, c, id.Class())
	}
}

func TestParseErrors(t *testing.T) {
	c := NewClass("process", "process_id")

	tests := []struct {
		name     string
		in       string
		expected error
	}{
		{"Empty", "", ErrMalformed},
		{"NoColumn", "process", ErrMalformed},
		{"NoPayload", "process:process_id", ErrMalformed},
		{"BadPayload", "process:process_id:x", ErrMalformed},
		{"WrongTable", "sngl_inspiral:event_id:5", ErrWrongClass},
		{"WrongColumn", "process:event_id:5", ErrWrongClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Parse(tt.in)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestClassIdentity(t *testing.T) {
	a := NewClass("sngl_inspiral", "event_id")
	b := NewClass("sngl_inspiral", "event_id")

	// Structurally equal classes are still distinct identities.
	assert.NotSame(t, a, b)
	assert.NotSame(t, a.New(1).Class(), b.New(1).Class())
}

func TestNewRegistryDefault(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	assert.Equal(t, "process:process_id", reg.Process.String())
	assert.Equal(t, "sngl_inspiral:event_id", reg.SnglInspiral.String())
	assert.Equal(t, "coinc_event:coinc_event_id", reg.CoincEvent.String())
}

func TestNewRegistryResolverError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewRegistry(func(tableName, columnName string) (*Class, error) {
		if tableName == "coinc_event" {
			return nil, boom
		}
		return NewClass(tableName, columnName), nil
	})
	require.ErrorIs(t, err, boom)
}

func TestNewRegistryCustomResolver(t *testing.T) {
	var resolved []string
	reg, err := NewRegistry(func(tableName, columnName string) (*Class, error) {
		resolved = append(resolved, tableName+":"+columnName)
		return NewClass(tableName, columnName), nil
	})
	require.NoError(t, err)
	require.NotNil(t, reg)

	assert.Equal(t, []string{
		"process:process_id",
		"sngl_inspiral:event_id",
		"coinc_event:coinc_event_id",
	}, resolved)
}
