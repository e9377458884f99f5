package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagingBuffer_Reserve(t *testing.T) {
	t.Run("enough room", func(t *testing.T) {
		sb := &StagingBuffer{B: make([]byte, 0, 100)}
		sb.Reserve(100)
		require.Equal(t, 100, cap(sb.B))
	})

	t.Run("doubles capacity", func(t *testing.T) {
		sb := &StagingBuffer{B: make([]byte, 8, 10)}
		sb.Reserve(4)
		require.Equal(t, 20, cap(sb.B))
		require.Len(t, sb.B, 8)
	})

	t.Run("exact size when doubling is not enough", func(t *testing.T) {
		sb := &StagingBuffer{B: make([]byte, 2, 4)}
		sb.Reserve(100)
		require.Equal(t, 102, cap(sb.B))
	})

	t.Run("keeps contents", func(t *testing.T) {
		sb := &StagingBuffer{B: append(make([]byte, 0, 4), `"ab"`...)}
		sb.Reserve(64)
		require.Equal(t, []byte(`"ab"`), sb.B)
	})

	t.Run("nil buffer", func(t *testing.T) {
		sb := &StagingBuffer{}
		sb.Reserve(3)
		require.GreaterOrEqual(t, cap(sb.B), 3)
		require.Empty(t, sb.B)
	})
}

func TestStagingPool(t *testing.T) {
	p := NewStagingPool(16, 0)

	sb := p.Get(4)
	require.Empty(t, sb.B)
	require.GreaterOrEqual(t, cap(sb.B), 16)

	sb.B = append(sb.B, "stale"...)
	p.Put(sb)
	require.Empty(t, sb.B, "Put should empty the buffer")

	require.Empty(t, p.Get(0).B)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestStagingPool_DropsOversized(t *testing.T) {
	p := NewStagingPool(16, 32)

	sb := p.Get(64)
	sb.B = append(sb.B, make([]byte, 64)...)
	p.Put(sb)

	// Dropped buffers are left untouched.
	require.Len(t, sb.B, 64)
}

func TestGetStagingBuffer(t *testing.T) {
	sb := GetStagingBuffer(3 * StagingBufferDefaultSize)
	defer PutStagingBuffer(sb)

	require.Empty(t, sb.B)
	require.GreaterOrEqual(t, cap(sb.B), 3*StagingBufferDefaultSize)
}

func TestStagingBuffer_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sb := GetStagingBuffer(i + j)
				sb.B = append(sb.B, byte(i))
				assert.Len(t, sb.B, 1)
				PutStagingBuffer(sb)
			}
		}(i)
	}
	wg.Wait()
}
