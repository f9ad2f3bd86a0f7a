package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(4)
	require.Zero(t, bb.Len())

	bb.MustWrite([]byte("LC"))
	bb.MustWrite([]byte{0x01, 0x05, 0x00})
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte{'L', 'C', 0x01, 0x05, 0x00}, bb.Bytes())

	bb.Reset()
	require.Zero(t, bb.Len())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("frame"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Equal(t, "frame", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("x"))

	_, err := bb.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestFrameBuffer_GetPutResets(t *testing.T) {
	bb := GetFrameBuffer()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	PutFrameBuffer(bb)

	again := GetFrameBuffer()
	require.Zero(t, again.Len())
	PutFrameBuffer(again)

	PutFrameBuffer(nil)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(16, 32)
	big := NewByteBuffer(64)
	big.MustWrite([]byte("oversized"))
	p.Put(big)

	got := p.Get()
	require.LessOrEqual(t, cap(got.B), 32)
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bb := GetFrameBuffer()
				bb.MustWrite([]byte{1, 2, 3})
				PutFrameBuffer(bb)
			}
		}()
	}
	wg.Wait()
}

func TestGetFloat64Slice(t *testing.T) {
	s, cleanup := GetFloat64Slice(10)
	require.Len(t, s, 10)
	cleanup()

	s, cleanup = GetFloat64Slice(3)
	defer cleanup()
	require.Len(t, s, 3)
}
