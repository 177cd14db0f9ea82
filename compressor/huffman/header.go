package huffman

import (
	"io"

	"github.com/FitrahHaque/Huffman-Engine/compressor/bitio"
	"github.com/pkg/errors"
)

// writeHeader serializes the tree in pre-order: 0 for an internal node, 1 and
// the 9-bit symbol for a leaf.
func writeHeader(tree huffmanTree, w *bitio.Writer) error {
	switch node := tree.(type) {
	case huffmanLeaf:
		if err := w.WriteBit(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(node.symbol), BitsPerSymbol)
	case huffmanNode:
		if err := w.WriteBit(false); err != nil {
			return err
		}
		if err := writeHeader(node.left, w); err != nil {
			return err
		}
		return writeHeader(node.right, w)
	}
	return errors.Errorf("cannot serialize tree node of type %T", tree)
}

func readHeader(r *bitio.Reader) (huffmanTree, error) {
	tree, err := readSubtree(r, 0)
	if err != nil {
		return nil, err
	}
	if _, ok := tree.(huffmanLeaf); ok {
		return nil, errors.Wrap(ErrFormat, "tree header holds a lone leaf")
	}
	return tree, nil
}

func readSubtree(r *bitio.Reader, depth int) (huffmanTree, error) {
	// 257 leaves never need more than 256 levels
	if depth > PseudoEOF {
		return nil, errors.Wrap(ErrFormat, "tree header is deeper than the alphabet allows")
	}
	bit, err := r.ReadBit()
	if err != nil {
		return nil, headerError(err)
	}
	if bit {
		value, err := r.ReadBits(BitsPerSymbol)
		if err != nil {
			return nil, headerError(err)
		}
		if value > PseudoEOF {
			return nil, errors.Wrapf(ErrFormat, "leaf symbol %d is outside the alphabet", value)
		}
		return huffmanLeaf{symbol: Symbol(value)}, nil
	}
	left, err := readSubtree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readSubtree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return huffmanNode{left: left, right: right}, nil
}

func headerError(err error) error {
	if err == io.EOF {
		return errors.Wrap(ErrTruncated, "reading tree header")
	}
	return errors.Wrap(err, "reading tree header")
}
