package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWriteAndGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	_, err := bb.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, bb.Bytes())
	require.Equal(t, 8, bb.Len())
}

func TestByteBufferWriteByte(t *testing.T) {
	bb := NewByteBuffer(0)
	require.NoError(t, bb.WriteByte(0xF6))
	require.Equal(t, []byte{0xF6}, bb.Bytes())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(4)
	_, _ = bb.Write([]byte{1, 2, 3})
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 4)
}

func TestByteBufferPoolRoundTrip(t *testing.T) {
	pool := NewByteBufferPool(8, 64)

	bb := pool.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte{1, 2, 3})
	pool.Put(bb)

	bb2 := pool.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPoolDiscardsOversizedBuffers(t *testing.T) {
	pool := NewByteBufferPool(4, 8)

	bb := pool.Get()
	bb.Grow(64)
	require.Greater(t, cap(bb.B), 8)

	pool.Put(bb)

	bb2 := pool.Get()
	require.LessOrEqual(t, cap(bb2.B), 8)
}

func TestDefaultScratchPool(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	Put(bb)
}
