package access

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateAndNoUpdate(t *testing.T) {
	require := require.New(t)

	up := NewUpdate[string]()
	require.True(up.OnAccess("k", nil))
	require.True(up.OnMiss("k"))

	no := NewNoUpdate[string]()
	require.False(no.OnAccess("k", nil))
	require.True(no.OnMiss("k"))
}

func TestThreshold_PromotesAfterNHits(t *testing.T) {
	require := require.New(t)

	p := NewThreshold[string](3)
	require.False(p.OnAccess("k", nil), "hit 1 of 3")
	require.False(p.OnAccess("k", nil), "hit 2 of 3")
	require.True(p.OnAccess("k", nil), "hit 3 reaches the threshold")
	require.True(p.OnAccess("k", nil), "stays promoted afterwards")

	// Independent per key.
	require.False(p.OnAccess("other", nil))
	require.Equal(uint64(4), p.AccessCount("k"))
	require.Equal(uint64(1), p.AccessCount("other"))
	require.Equal(uint64(0), p.AccessCount("never"))
}

func TestThreshold_CountersNeverReset(t *testing.T) {
	require := require.New(t)

	p := NewThreshold[string](2)
	p.OnAccess("k", nil)
	p.OnAccess("k", nil)
	// The counter keeps growing for as long as the policy lives;
	// misses do not touch it.
	p.OnMiss("k")
	require.Equal(uint64(2), p.AccessCount("k"))

	p.ClearCounts()
	require.Equal(uint64(0), p.AccessCount("k"))
	require.False(p.OnAccess("k", nil), "counting restarts after an explicit clear")
}

func TestThreshold_Configuration(t *testing.T) {
	require := require.New(t)

	p := NewThreshold[string](0)
	require.Equal(uint64(DefaultThreshold), p.ThresholdValue())

	p.SetThreshold(5)
	require.Equal(uint64(5), p.ThresholdValue())
}

func TestTimeDecay_ClockAndStamps(t *testing.T) {
	require := require.New(t)

	p := NewTimeDecay[string](10)
	require.True(p.OnAccess("a", nil), "time-decay always updates eviction order")
	require.Equal(uint64(1), p.Clock())
	require.Equal(uint64(1), p.LastAccess("a"))

	p.OnMiss("b")
	require.Equal(uint64(2), p.Clock(), "misses advance the clock")
	require.Equal(uint64(0), p.LastAccess("b"), "misses leave no stamp")

	p.OnAccess("a", nil)
	require.Equal(uint64(3), p.LastAccess("a"))
}

func TestTimeDecay_SweepDropsStaleStamps(t *testing.T) {
	require := require.New(t)

	p := NewTimeDecay[int](5)
	p.OnAccess(1, nil) // stamped at t=1

	// Advance well past two full intervals with other keys.
	for i := 0; i < 30; i++ {
		p.OnAccess(2, nil)
	}

	require.Equal(uint64(0), p.LastAccess(1), "stale stamp must decay away")
	require.NotZero(p.LastAccess(2))
}

func TestTimeDecay_Configuration(t *testing.T) {
	require := require.New(t)

	p := NewTimeDecay[int](0)
	require.Equal(uint64(DefaultDecayInterval), p.DecayInterval())

	p.SetDecayInterval(7)
	require.Equal(uint64(7), p.DecayInterval())
}
