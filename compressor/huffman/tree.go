package huffman

import (
	"container/heap"
)

// Symbol is a literal byte value (0-255) or PseudoEOF.
type Symbol uint16

type frequencyTable [AlphabetSize + 1]int

type huffmanTree interface {
	getFrequency() int
	getId() int
}

type huffmanLeaf struct {
	freq, id int
	symbol   Symbol
}

type huffmanNode struct {
	freq, id    int
	left, right huffmanTree
}

// huffmanHeap orders by weight, then by id. Leaves are numbered in ascending
// symbol order and merged nodes continue the sequence, so equal weights are
// merged first come first served.
type huffmanHeap []huffmanTree

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(huffmanTree))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	(*hub) = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].getFrequency() != hub[j].getFrequency() {
		return hub[i].getFrequency() < hub[j].getFrequency()
	}
	return hub[i].getId() < hub[j].getId()
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

func (leaf huffmanLeaf) getId() int {
	return leaf.id
}

func (leaf huffmanLeaf) getFrequency() int {
	return leaf.freq
}

func (node huffmanNode) getFrequency() int {
	return node.freq
}

func (node huffmanNode) getId() int {
	return node.id
}

// buildTree merges the two lightest trees until one remains. The first tree
// popped becomes the left child. A table with a single used symbol gets a
// zero-weight sibling leaf so the symbol still has a one-bit code.
func buildTree(symbolFreq frequencyTable) huffmanTree {
	var treehub huffmanHeap
	monoId := 0
	for symbol, freq := range symbolFreq {
		if freq == 0 {
			continue
		}
		treehub = append(treehub, huffmanLeaf{
			freq:   freq,
			symbol: Symbol(symbol),
			id:     monoId,
		})
		monoId++
	}
	switch treehub.Len() {
	case 0:
		return nil
	case 1:
		lone := treehub[0].(huffmanLeaf)
		var sibling Symbol
		if lone.symbol == 0 {
			sibling = 1
		}
		return huffmanNode{
			freq:  lone.freq,
			left:  lone,
			right: huffmanLeaf{symbol: sibling, id: monoId},
			id:    monoId + 1,
		}
	}
	heap.Init(&treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(&treehub).(huffmanTree)
		y := heap.Pop(&treehub).(huffmanTree)
		heap.Push(&treehub, huffmanNode{
			freq:  x.getFrequency() + y.getFrequency(),
			left:  x,
			right: y,
			id:    monoId,
		})
		monoId++
	}
	return heap.Pop(&treehub).(huffmanTree)
}
