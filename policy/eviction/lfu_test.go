package eviction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLFU_VictimHasLowestFrequency(t *testing.T) {
	require := require.New(t)

	p := NewLFU[string]()
	p.OnInsert("a")
	p.OnInsert("b")
	p.OnAccess("a")
	p.OnAccess("a")
	p.OnAccess("b")

	// a:3, b:2 — b is coldest.
	k, ok := p.SelectVictim()
	require.True(ok)
	require.Equal("b", k)
}

func TestLFU_TieBreakIsOldestAtFrequency(t *testing.T) {
	require := require.New(t)

	p := NewLFU[string]()
	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("c")

	// All at frequency 1: the earliest insert wins the tie.
	k, _ := p.SelectVictim()
	require.Equal("a", k)

	// Promote a to 2; b and c stay tied at 1 with b older.
	p.OnAccess("a")
	k, _ = p.SelectVictim()
	require.Equal("b", k)

	// Promote b to 2 — it reaches the bucket after a, so among {a,b} at 2
	// with c removed, a is the older resident.
	p.OnAccess("b")
	p.RemoveKey("c")
	k, _ = p.SelectVictim()
	require.Equal("a", k)
}

func TestLFU_FrequencyCountsInsertAccessUpdate(t *testing.T) {
	require := require.New(t)

	p := NewLFU[string]()
	p.OnInsert("k")

	f, ok := p.Frequency("k")
	require.True(ok)
	require.Equal(uint64(1), f)

	p.OnAccess("k")
	f, _ = p.Frequency("k")
	require.Equal(uint64(2), f)

	p.OnUpdate("k")
	f, _ = p.Frequency("k")
	require.Equal(uint64(3), f)

	p.RemoveKey("k")
	_, ok = p.Frequency("k")
	require.False(ok)
}

func TestLFU_SkippedFrequenciesStayOrdered(t *testing.T) {
	require := require.New(t)

	p := NewLFU[string]()
	p.OnInsert("hot")
	for i := 0; i < 5; i++ {
		p.OnAccess("hot") // hot:6
	}
	p.OnInsert("warm")
	p.OnAccess("warm") // warm:2
	p.OnInsert("cold") // cold:1

	victims := drain(p)
	require.Equal([]string{"cold", "warm", "hot"}, victims)
}

func TestLFU_EmptyAndClear(t *testing.T) {
	require := require.New(t)

	p := NewLFU[int]()
	_, ok := p.SelectVictim()
	require.False(ok)

	p.OnInsert(1)
	p.OnAccess(1)
	p.Clear()
	require.Equal(0, p.Len())
	_, ok = p.SelectVictim()
	require.False(ok)
}

// drain pops victims until the policy is empty.
func drain(p interface {
	SelectVictim() (string, bool)
	RemoveKey(string)
}) []string {
	var out []string
	for {
		k, ok := p.SelectVictim()
		if !ok {
			return out
		}
		p.RemoveKey(k)
		out = append(out, k)
	}
}
