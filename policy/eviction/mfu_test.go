package eviction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMFU_VictimHasHighestFrequency(t *testing.T) {
	require := require.New(t)

	p := NewMFU[string]()
	p.OnInsert("a")
	p.OnInsert("b")
	p.OnAccess("a")
	p.OnAccess("a")
	p.OnAccess("b")

	// a:3, b:2 — a is hottest.
	k, ok := p.SelectVictim()
	require.True(ok)
	require.Equal("a", k)
}

func TestMFU_TieBreakIsOldestAtFrequency(t *testing.T) {
	require := require.New(t)

	p := NewMFU[string]()
	p.OnInsert("a")
	p.OnInsert("b")
	p.OnAccess("a") // a:2, reaches bucket 2 first
	p.OnAccess("b") // b:2, after a

	k, _ := p.SelectVictim()
	require.Equal("a", k)
}

func TestMFU_DrainOrder(t *testing.T) {
	require := require.New(t)

	p := NewMFU[string]()
	p.OnInsert("hot")
	p.OnAccess("hot")
	p.OnAccess("hot") // hot:3
	p.OnInsert("warm")
	p.OnAccess("warm") // warm:2
	p.OnInsert("cold") // cold:1

	victims := drain(p)
	require.Equal([]string{"hot", "warm", "cold"}, victims)
}
