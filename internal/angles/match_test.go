package angles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{name: "same point", a: 42, b: 42, want: 0},
		{name: "wraparound", a: 350, b: 10, want: 20},
		{name: "opposite points", a: 0, b: 180, want: 180},
		{name: "just past half turn", a: 0, b: 181, want: 179},
		{name: "full turn apart", a: 0, b: 360, want: 0},
		{name: "unnormalized inputs", a: -10, b: 370, want: 20},
		{name: "fractional", a: 0.5, b: 359.5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CircularDistance(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCircularDistance_Commutative(t *testing.T) {
	for a := -720.0; a <= 720; a += 37.5 {
		for b := -720.0; b <= 720; b += 41 {
			d1 := CircularDistance(a, b)
			d2 := CircularDistance(b, a)
			require.InDelta(t, d1, d2, 1e-9, "a=%v b=%v", a, b)
			require.GreaterOrEqual(t, d1, 0.0)
			require.LessOrEqual(t, d1, MaxDistance)
		}
	}
}

func TestCircularDistance_ZeroOnSelf(t *testing.T) {
	for a := -1000.0; a <= 1000; a += 13.25 {
		assert.Equal(t, 0.0, CircularDistance(a, a))
	}
}

func TestMatches_ToleranceBoundary(t *testing.T) {
	stored := New(0, 0, 0)

	assert.True(t, Matches(New(15, 0, 0), stored, 15), "distance equal to tolerance must match")
	assert.False(t, Matches(New(16, 0, 0), stored, 15))
	assert.True(t, Matches(New(345, 0, 0), stored, 15), "boundary holds across 0")
	assert.False(t, Matches(New(344, 0, 0), stored, 15))
}

func TestMatches_EverySlotMustMatch(t *testing.T) {
	stored := New(10, 200, 300)

	assert.True(t, Matches(New(12, 205, 295), stored, 15))
	assert.False(t, Matches(New(30, 200, 300), stored, 15), "slot 0 off by 20")
	assert.False(t, Matches(New(10, 230, 300), stored, 15), "slot 1 off by 30")
	assert.False(t, Matches(New(10, 200, 340), stored, 15), "slot 2 off by 40")
}

func TestMatches_OrderSensitive(t *testing.T) {
	stored := New(10, 200, 300)

	assert.False(t, Matches(New(200, 10, 300), stored, 15))
	assert.False(t, Matches(New(300, 200, 10), stored, 15))
}

func TestMatches_ZeroTolerance(t *testing.T) {
	stored := New(10, 200, 300)

	assert.True(t, Matches(New(370, -160, 660), stored, 0))
	assert.False(t, Matches(New(10.5, 200, 300), stored, 0))
}

func TestNewMatcher(t *testing.T) {
	m, err := NewMatcher(15)
	require.NoError(t, err)
	assert.Equal(t, 15.0, m.Tolerance())
	assert.True(t, m.Match(New(5, 195, 310), New(10, 200, 300)))

	for _, bad := range []float64{-1, 180.5, 1000} {
		_, err := NewMatcher(bad)
		assert.Error(t, err, "tolerance %v", bad)
	}

	m, err = NewMatcher(180)
	require.NoError(t, err)
	assert.True(t, m.Match(New(180, 0, 90), New(0, 180, 270)))
}
