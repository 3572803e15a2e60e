package ducks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGSameSeedSameSequence(t *testing.T) {
	a := NewRNG("boundary-test-001")
	b := NewRNG("boundary-test-001")

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d diverged", i)
	}
}

func TestRNGDifferentSeedsDiffer(t *testing.T) {
	a := NewRNG("alpha")
	b := NewRNG("beta")

	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	assert.Less(t, same, 5)
	assert.NotEqual(t, HashSeed("alpha"), HashSeed("beta"))
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG("ranges")

	for i := 0; i < 10000; i++ {
		v := r.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)

		f := r.Float(40, 372)
		require.GreaterOrEqual(t, f, 40.0)
		require.Less(t, f, 372.0)

		n := r.Intn(7)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 7)
	}

	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestRNGDeriveIsIndependentOfParentPosition(t *testing.T) {
	fresh := NewRNG("seed")
	used := NewRNG("seed")
	for i := 0; i < 50; i++ {
		used.Next()
	}

	a := fresh.Derive("spawn")
	b := used.Derive("spawn")
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}

	assert.NotEqual(t, fresh.Derive("spawn").Next(), fresh.Derive("wobble").Next())
	assert.Equal(t, "seed/spawn", a.Seed())
}

func TestLevelSeedVariesByLevel(t *testing.T) {
	base := HashSeed("levels")
	seen := map[uint32]bool{}
	for level := 0; level < 32; level++ {
		s := LevelSeed(base, level)
		assert.False(t, seen[s], "level %d repeats a seed", level)
		seen[s] = true
	}
}
