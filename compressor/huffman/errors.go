package huffman

import "github.com/pkg/errors"

var (
	// ErrFormat reports input that is not a Huffman tree stream: a wrong
	// magic number or a structurally invalid tree header.
	ErrFormat = errors.New("huffman: invalid format")

	// ErrTruncated reports a bit stream that ran out while reading a tree
	// header or before the end-of-stream code was decoded.
	ErrTruncated = errors.New("huffman: truncated stream")
)
