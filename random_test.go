package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUniformSameNameSameStream(t *testing.T) {
	a := newUniform("shared")
	b := newUniform("shared")
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNewUniformDistinctNamesDiverge(t *testing.T) {
	a := newUniform("one")
	b := newUniform("two")
	require.NotEqual(t, a.Int63(), b.Int63())
}

func TestUniformIntBounds(t *testing.T) {
	r := newUniform("bounds")
	for i := 0; i < 1000; i++ {
		v := uniformInt(r, 10)
		require.True(t, v >= 0 && v < 10)
	}
	require.EqualValues(t, 0, uniformInt(r, 0))
	require.EqualValues(t, 0, uniformInt(r, -5))
}

func TestZipfStaysInRange(t *testing.T) {
	z := NewZipf(100, 0.9)
	for i := 0; i < 2000; i++ {
		v := z.Next()
		require.True(t, v >= 0 && v < 100, "zipf draw %d out of [0,100)", v)
	}
}

func TestZipfSkewsTowardZero(t *testing.T) {
	z := NewZipf(1000, 0.9)
	var zeros, highs int
	for i := 0; i < 5000; i++ {
		v := z.Next()
		if v == 0 {
			zeros++
		}
		if v > 500 {
			highs++
		}
	}
	require.Greater(t, zeros, highs, "zipf distribution should favor low values")
}

func TestLogDecayReproducible(t *testing.T) {
	r1 := newUniform("logdecay")
	r2 := newUniform("logdecay")
	for i := 0; i < 20; i++ {
		require.Equal(t, logDecay(r1, 10, 1000), logDecay(r2, 10, 1000))
	}
}
