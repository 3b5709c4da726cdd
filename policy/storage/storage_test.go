package storage

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/cachekit/policy"
)

// All storage variants must share the same observable map semantics.
func TestStorage_CommonSemantics(t *testing.T) {
	variants := map[string]func() policy.Storage[string, int]{
		"hash":     func() policy.Storage[string, int] { return NewHash[string, int]() },
		"reserved": func() policy.Storage[string, int] { return NewReserved[string, int](16) },
		"compact":  func() policy.Storage[string, int] { return NewCompact[string, int]() },
		"debug":    func() policy.Storage[string, int] { return NewDebug[string, int](nil) },
	}

	for name, build := range variants {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			s := build()

			require.True(s.Insert("a", 1), "first insert is new")
			require.False(s.Insert("a", 2), "overwrite is not new")

			v, ok := s.Find("a")
			require.True(ok)
			require.Equal(2, v, "overwrite must replace the value")

			require.True(s.Contains("a"))
			require.False(s.Contains("b"))
			require.Equal(1, s.Len())

			require.True(s.Erase("a"))
			require.False(s.Erase("a"), "double erase reports absent")
			require.Equal(0, s.Len())

			s.Insert("x", 10)
			s.Insert("y", 20)
			s.Clear()
			require.Equal(0, s.Len())
			_, ok = s.Find("x")
			require.False(ok)
		})
	}
}

func TestReserved_HintSurvivesClear(t *testing.T) {
	require := require.New(t)

	s := NewReserved[int, int](128)
	require.Equal(128, s.ReservedCapacity())

	for i := 0; i < 64; i++ {
		s.Insert(i, i)
	}
	s.Clear()
	require.Equal(0, s.Len())
	require.Equal(128, s.ReservedCapacity())

	s.SetReservedCapacity(32)
	require.Equal(32, s.ReservedCapacity())
}

func TestCompact_SurvivesChurn(t *testing.T) {
	require := require.New(t)

	s := NewCompact[string, int]()
	for i := 0; i < 1000; i++ {
		s.Insert(strconv.Itoa(i), i)
	}
	// Erase enough to trigger the sparse rebuild several times.
	for i := 0; i < 990; i++ {
		require.True(s.Erase(strconv.Itoa(i)))
	}
	require.Equal(10, s.Len())
	for i := 990; i < 1000; i++ {
		v, ok := s.Find(strconv.Itoa(i))
		require.True(ok)
		require.Equal(i, v, "rebuild must not lose surviving entries")
	}
}

func TestDebug_CountsHitsAndMisses(t *testing.T) {
	require := require.New(t)

	s := NewDebug[string, int](NewHash[string, int]())
	s.Insert("a", 1)

	_, _ = s.Find("a")    // hit
	_, _ = s.Find("nope") // miss
	_ = s.Contains("a")   // hit
	_ = s.Contains("b")   // miss

	require.Equal(uint64(2), s.HitCount())
	require.Equal(uint64(2), s.MissCount())
	require.Equal(0.5, s.HitRatio())
	require.Equal(uint64(5), s.OperationCount())

	s.ResetStats()
	require.Equal(uint64(0), s.OperationCount())
	require.Equal(0.0, s.HitRatio(), "no lookups means ratio 0")
}
