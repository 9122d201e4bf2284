package id

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonotonicNonZeroID(t *testing.T) {
	gen := MonotonicNonZeroID()
	for i := uint64(1); i <= 1000; i++ {
		require.Equal(t, i, gen.Number())
	}
	require.Equal(t, "1001", gen.Str())
}

func TestMonotonicNonZeroID_Independent(t *testing.T) {
	g1, g2 := MonotonicNonZeroID(), MonotonicNonZeroID()
	require.Equal(t, uint64(1), g1.Number())
	require.Equal(t, uint64(2), g1.Number())
	require.Equal(t, uint64(1), g2.Number())
}

func TestMonotonicNonZeroID_Concurrent(t *testing.T) {
	gen := MonotonicNonZeroID()
	var (
		wg   sync.WaitGroup
		lock sync.Mutex
		seen = make(map[uint64]struct{}, 800)
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n := gen.Number()
				lock.Lock()
				seen[n] = struct{}{}
				lock.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Len(t, seen, 800)
}

func TestMonotonicNonZeroIDFrom(t *testing.T) {
	gen := MonotonicNonZeroIDFrom(41)
	require.Equal(t, uint64(42), gen.Number())
	require.Equal(t, "43", gen.Str())

	// Overflow skips zero.
	gen = MonotonicNonZeroIDFrom(^uint64(0))
	require.Equal(t, uint64(1), gen.Number())
}
