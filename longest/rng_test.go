package longest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRngFromSeed_ZeroMapsToDefault(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultSeed)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestRngFromSeed_Deterministic(t *testing.T) {
	a := rngFromSeed(1234)
	b := rngFromSeed(1234)
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDeriveSeed_DistinctStreams(t *testing.T) {
	seen := make(map[int64]struct{})
	var stream uint64
	for stream = 0; stream < 1000; stream++ {
		s := deriveSeed(42, stream)
		_, dup := seen[s]
		require.False(t, dup, "stream %d collided", stream)
		seen[s] = struct{}{}
	}
}

func TestDeriveSeed_ParentSensitivity(t *testing.T) {
	require.NotEqual(t, deriveSeed(1, 0), deriveSeed(2, 0))
	require.Equal(t, deriveSeed(7, 3), deriveSeed(7, 3))
}
