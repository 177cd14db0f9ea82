package bitio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterPacksMostSignificantBitFirst(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	require.NoError(t, w.WriteBit(true))
	require.NoError(t, w.WriteBits(0b101, 3))
	require.NoError(t, w.WriteBits(0xabc, 12))
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0xda, 0xbc}, out.Bytes())
}

func TestWriterPadsWithZeros(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	require.NoError(t, w.WriteBit(true))
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0x80}, out.Bytes())
}

func TestWriterRejectsBadWidth(t *testing.T) {
	w := NewWriter(io.Discard)
	require.Error(t, w.WriteBits(0, 0))
	require.Error(t, w.WriteBits(0, 65))
}

func TestReaderReadsBack(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xda, 0xbc}))
	bit, err := r.ReadBit()
	require.NoError(t, err)
	require.True(t, bit)
	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101), v)
	v, err = r.ReadBits(12)
	require.NoError(t, err)
	require.Equal(t, uint64(0xabc), v)

	_, err = r.ReadBit()
	require.Equal(t, io.EOF, err)
	_, err = r.ReadBits(8)
	require.Equal(t, io.EOF, err)
}

func TestReaderEmptyStream(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.ReadBits(32)
	require.Equal(t, io.EOF, err)
}

func TestReaderRewind(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("huffman")))
	first, err := r.ReadBits(8)
	require.NoError(t, err)
	_, err = r.ReadBits(5)
	require.NoError(t, err)

	require.NoError(t, r.Rewind())
	again, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, first, again)
	require.Equal(t, uint64('h'), again)
}

func TestReaderRewindNeedsSeeker(t *testing.T) {
	r := NewReader(io.MultiReader(strings.NewReader("x")))
	require.Error(t, r.Rewind())
}
