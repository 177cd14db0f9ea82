package huffman

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, content []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Compress(bytes.NewReader(content), &out))
	return out.Bytes()
}

func randomBytes(n int, alphabet int) []byte {
	rng := rand.New(rand.NewSource(42))
	content := make([]byte, n)
	for i := range content {
		content[i] = byte(rng.Intn(alphabet))
	}
	return content
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"empty", nil},
		{"one byte", []byte("a")},
		{"zero byte", []byte{0}},
		{"single symbol", bytes.Repeat([]byte{0x41}, 1000)},
		{"text", []byte("the quick brown fox jumps over the lazy dog")},
		{"all bytes", allBytes()},
		{"skewed", []byte(strings.Repeat("a", 4096) + strings.Repeat("b", 64) + "c")},
		{"random small alphabet", randomBytes(10000, 5)},
		{"random full alphabet", randomBytes(10000, 256)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed := compress(t, tt.content)
			var out bytes.Buffer
			require.NoError(t, Decompress(bytes.NewReader(compressed), &out))
			require.Equal(t, len(tt.content), out.Len())
			if len(tt.content) > 0 {
				require.Equal(t, tt.content, out.Bytes())
			}
		})
	}
}

func TestCompressEmpty(t *testing.T) {
	// magic, header of the degenerate tree, EOF code "0"
	require.Equal(t, []byte{0xfa, 0xce, 0x82, 0x01, 0x60, 0x10, 0x00}, compress(t, nil))
}

func TestCompressSingleSymbolLayout(t *testing.T) {
	compressed := compress(t, []byte("AAAA"))
	// 0, 1 100000000 (EOF), 1 001000001 ('A'), codes 1111 then 0
	require.Equal(t, []byte{0xfa, 0xce, 0x82, 0x01, 0x60, 0x12, 0x0f, 0x80}, compressed)
}

func TestCompressDeterministic(t *testing.T) {
	content := randomBytes(5000, 40)
	require.Equal(t, compress(t, content), compress(t, content))
}

func TestCompressShrinksSkewedInput(t *testing.T) {
	content := []byte(strings.Repeat("a", 10000) + "bc")
	require.Less(t, len(compress(t, content)), len(content)/4)
}

func TestDecompressRejectsBadMagic(t *testing.T) {
	compressed := compress(t, []byte("hello"))
	compressed[3] ^= 0x01
	var out bytes.Buffer
	err := Decompress(bytes.NewReader(compressed), &out)
	require.ErrorIs(t, err, ErrFormat)
	require.Zero(t, out.Len())
}

func TestDecompressRejectsShortMagic(t *testing.T) {
	var out bytes.Buffer
	require.ErrorIs(t, Decompress(bytes.NewReader([]byte{0xfa, 0xce}), &out), ErrFormat)
	require.ErrorIs(t, Decompress(bytes.NewReader(nil), &out), ErrFormat)
	require.Zero(t, out.Len())
}

func TestDecompressRejectsTruncatedHeader(t *testing.T) {
	compressed := compress(t, nil)
	var out bytes.Buffer
	err := Decompress(bytes.NewReader(compressed[:5]), &out)
	require.ErrorIs(t, err, ErrTruncated)
	require.Zero(t, out.Len())
}

func TestDecompressRejectsTruncatedPayload(t *testing.T) {
	compressed := compress(t, []byte("hello, huffman"))
	var out bytes.Buffer
	err := Decompress(bytes.NewReader(compressed[:len(compressed)-1]), &out)
	require.ErrorIs(t, err, ErrTruncated)
}
