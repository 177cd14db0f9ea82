package huffman

import (
	"io"

	"github.com/FitrahHaque/Huffman-Engine/compressor/bitio"
	"github.com/pkg/errors"
)

// codeTable maps every used symbol to its path from the root, '0' for left
// and '1' for right.
type codeTable map[Symbol]string

func countFrequencies(r *bitio.Reader) (frequencyTable, error) {
	var symbolFreq frequencyTable
	for {
		word, err := r.ReadBits(BitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return symbolFreq, errors.Wrap(err, "counting symbol frequencies")
		}
		symbolFreq[word]++
	}
	symbolFreq[PseudoEOF] = 1
	return symbolFreq, nil
}

func getSymbolEncoding(tree huffmanTree, symbolEnc codeTable, currentPrefix []byte) codeTable {
	switch i := tree.(type) {
	case huffmanLeaf:
		if len(currentPrefix) > 0 {
			symbolEnc[i.symbol] = string(currentPrefix)
		}
	case huffmanNode:
		symbolEnc = getSymbolEncoding(i.left, symbolEnc, append(currentPrefix, '0'))
		symbolEnc = getSymbolEncoding(i.right, symbolEnc, append(currentPrefix, '1'))
	}
	return symbolEnc
}

func makeCodeTable(tree huffmanTree) codeTable {
	return getSymbolEncoding(tree, make(codeTable), []byte{})
}
