package huffman

import (
	"io"

	"github.com/FitrahHaque/Huffman-Engine/compressor/bitio"
	"github.com/pkg/errors"
)

const (
	BitsPerWord   = 8
	BitsPerSymbol = BitsPerWord + 1
	BitsPerInt    = 32
	AlphabetSize  = 1 << BitsPerWord
	PseudoEOF     = AlphabetSize

	huffNumber = 0xface8200

	// HuffTree opens every compressed stream.
	HuffTree = huffNumber | 1
)

// Compress reads in twice, once to count byte frequencies and once, after
// rewinding, to encode it. The output is the magic number, the tree header
// and the encoded payload terminated by the end-of-stream code.
func Compress(in io.ReadSeeker, out io.Writer) error {
	r := bitio.NewReader(in)
	w := bitio.NewWriter(out)

	symbolFreq, err := countFrequencies(r)
	if err != nil {
		return err
	}
	tree := buildTree(symbolFreq)
	symbolEnc := makeCodeTable(tree)

	if err := w.WriteBits(HuffTree, BitsPerInt); err != nil {
		return err
	}
	if err := writeHeader(tree, w); err != nil {
		return err
	}
	if err := r.Rewind(); err != nil {
		return err
	}
	if err := writeCompressedBits(symbolEnc, r, w); err != nil {
		return err
	}
	return w.Flush()
}

// Decompress rebuilds the tree from the header and decodes the payload until
// the end-of-stream code. Errors match ErrFormat or ErrTruncated when the
// input is malformed.
func Decompress(in io.Reader, out io.Writer) error {
	r := bitio.NewReader(in)
	w := bitio.NewWriter(out)

	magic, err := r.ReadBits(BitsPerInt)
	if err == io.EOF {
		return errors.Wrap(ErrFormat, "stream too short for a magic number")
	}
	if err != nil {
		return err
	}
	if magic != HuffTree {
		return errors.Wrapf(ErrFormat, "illegal magic number %#x", magic)
	}
	tree, err := readHeader(r)
	if err != nil {
		return err
	}
	if err := readCompressedBits(tree, r, w); err != nil {
		return err
	}
	return w.Flush()
}

func writeCompressedBits(symbolEnc codeTable, r *bitio.Reader, w *bitio.Writer) error {
	for {
		word, err := r.ReadBits(BitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "encoding input")
		}
		if err := writeCode(symbolEnc, Symbol(word), w); err != nil {
			return err
		}
	}
	return writeCode(symbolEnc, PseudoEOF, w)
}

func writeCode(symbolEnc codeTable, symbol Symbol, w *bitio.Writer) error {
	code, ok := symbolEnc[symbol]
	if !ok {
		return errors.Errorf("symbol %d does not exist in huffman tree", symbol)
	}
	for i := 0; i < len(code); i++ {
		if err := w.WriteBit(code[i] == '1'); err != nil {
			return err
		}
	}
	return nil
}

func readCompressedBits(root huffmanTree, r *bitio.Reader, w *bitio.Writer) error {
	current := root
	for {
		bit, err := r.ReadBit()
		if err == io.EOF {
			return errors.Wrap(ErrTruncated, "payload ended before the end-of-stream code")
		}
		if err != nil {
			return errors.Wrap(err, "decoding payload")
		}
		node, ok := current.(huffmanNode)
		if !ok {
			return errors.Wrap(ErrFormat, "tree has no internal node to walk")
		}
		if bit {
			current = node.right
		} else {
			current = node.left
		}
		leaf, ok := current.(huffmanLeaf)
		if !ok {
			continue
		}
		if leaf.symbol == PseudoEOF {
			return nil
		}
		if err := w.WriteBits(uint64(leaf.symbol), BitsPerWord); err != nil {
			return err
		}
		current = root
	}
}
