package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	bb := NewByteBuffer(8)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 8, cap(bb.B))

	n, err := bb.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte("abc"), bb.Bytes())

	clone := bb.Clone()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, []byte("abc"), clone, "clone must not alias the buffer")
}

func TestByteBufferPool(t *testing.T) {
	t.Run("returns empty buffers", func(t *testing.T) {
		p := NewByteBufferPool(16, 64)
		bb := p.Get()
		require.NotNil(t, bb)
		_, _ = bb.Write([]byte("payload"))
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len())
	})

	t.Run("put nil is a no-op", func(t *testing.T) {
		p := NewByteBufferPool(16, 64)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("drops oversized buffers", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := NewByteBuffer(128)
		p.Put(bb)
		got := p.Get()
		require.LessOrEqual(t, cap(got.B), 32)
	})
}

func TestTableBuffer(t *testing.T) {
	bb := GetTableBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutTableBuffer(bb)
}
