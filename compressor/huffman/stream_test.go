package huffman

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionWriterMatchesCompress(t *testing.T) {
	content := []byte("abracadabra, abracadabra")
	var out bytes.Buffer
	cw := NewCompressionWriter(&out)
	_, err := cw.Write(content[:7])
	require.NoError(t, err)
	_, err = cw.Write(content[7:])
	require.NoError(t, err)
	require.Zero(t, out.Len())
	require.NoError(t, cw.Close())
	require.Equal(t, compress(t, content), out.Bytes())
}

func TestDecompressionReaderAndWriter(t *testing.T) {
	content := randomBytes(3000, 17)
	dr, dw := NewDecompressionReaderAndWriter()

	buf := make([]byte, 8)
	_, err := dr.Read(buf)
	require.Error(t, err)

	_, err = dw.Write(compress(t, content))
	require.NoError(t, err)
	require.NoError(t, dw.Close())
	_, err = dw.Write([]byte{0})
	require.Error(t, err)

	decoded, err := io.ReadAll(dr)
	require.NoError(t, err)
	require.Equal(t, content, decoded)
	require.NoError(t, dr.Close())
}

func TestDecompressionWriterReportsCorruption(t *testing.T) {
	dr, dw := NewDecompressionReaderAndWriter()
	_, err := dw.Write([]byte("not a huffman stream"))
	require.NoError(t, err)
	require.ErrorIs(t, dw.Close(), ErrFormat)
	decoded, err := io.ReadAll(dr)
	require.NoError(t, err)
	require.Empty(t, decoded)
}
