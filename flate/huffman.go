package flate

import (
	"container/heap"
	"sort"
)

// huffmanNode is an internal node of the frequency-ordered merge tree used
// to derive code lengths; leaves additionally carry their symbol.
type huffmanNode struct {
	freq, depth int
	symbol      int // -1 for internal nodes
	left, right *huffmanNode
}

type nodeHeap []*huffmanNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].symbol < h[j].symbol // deterministic tie-break
}
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*huffmanNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildCodeLengths derives a length-limited (maxLen) canonical code-length
// assignment from a frequency table, following §4.7 "Tree construction":
// a min-heap merge keyed on frequency (ties broken by symbol, so internal
// nodes, whose symbol is -1, come first),
// then gen_bitlen-style overflow correction when the raw tree exceeds
// maxLen, and finally a frequency-sorted reassignment of the corrected
// length histogram onto symbols (more frequent symbols get shorter codes).
func buildCodeLengths(freqs []int, maxLen int) []int {
	lengths := make([]int, len(freqs))

	var active []int
	for sym, f := range freqs {
		if f > 0 {
			active = append(active, sym)
		}
	}
	if len(active) == 0 {
		return lengths
	}
	if len(active) == 1 {
		lengths[active[0]] = 1
		return lengths
	}

	h := make(nodeHeap, 0, len(active))
	for _, sym := range active {
		h = append(h, &huffmanNode{freq: freqs[sym], symbol: sym})
	}
	heap.Init(&h)

	leaves := make(map[int]*huffmanNode, len(active))
	for _, n := range h {
		leaves[n.symbol] = n
	}

	for h.Len() > 1 {
		a := heap.Pop(&h).(*huffmanNode)
		b := heap.Pop(&h).(*huffmanNode)
		parent := &huffmanNode{freq: a.freq + b.freq, symbol: -1, left: a, right: b}
		heap.Push(&h, parent)
	}
	root := h[0]
	assignDepth(root, 0)

	maxDepth := 0
	for _, sym := range active {
		if leaves[sym].depth > maxDepth {
			maxDepth = leaves[sym].depth
		}
	}

	if maxDepth <= maxLen {
		for _, sym := range active {
			lengths[sym] = leaves[sym].depth
		}
		return lengths
	}

	// Overflow correction: clamp every depth to maxLen, then rebalance the
	// per-length histogram, per §4.7 step 2: each step moves one code from
	// the deepest non-empty length below maxLen down one level, pairing it
	// with one length-maxLen code, which lowers the Kraft sum (counted in
	// units of 2^-maxLen) by one, until the code is no longer over-subscribed.
	var blCount [maxCodeLen + 2]int
	for _, sym := range active {
		d := leaves[sym].depth
		if d > maxLen {
			d = maxLen
		}
		blCount[d]++
	}
	kraft := 0
	for l := 1; l <= maxLen; l++ {
		kraft += blCount[l] << uint(maxLen-l)
	}
	for kraft > 1<<uint(maxLen) {
		bits := maxLen - 1
		for blCount[bits] == 0 {
			bits--
		}
		blCount[bits]--
		blCount[bits+1] += 2
		blCount[maxLen]--
		kraft--
	}

	sorted := append([]int(nil), active...)
	sort.SliceStable(sorted, func(i, j int) bool { return freqs[sorted[i]] > freqs[sorted[j]] })

	idx := 0
	for length := 1; length <= maxLen; length++ {
		for n := blCount[length]; n > 0; n-- {
			lengths[sorted[idx]] = length
			idx++
		}
	}
	return lengths
}

func assignDepth(n *huffmanNode, depth int) {
	if n == nil {
		return
	}
	n.depth = depth
	assignDepth(n.left, depth+1)
	assignDepth(n.right, depth+1)
}

// canonicalCodes assigns canonical Huffman codes to a set of code lengths,
// per RFC 1951 §3.2.2: codes are assigned in symbol order, consecutively
// within each length class, the numerically smallest code of each length
// built from the previous length's count.
func canonicalCodes(lengths []int) []uint16 {
	var blCount [maxCodeLen + 2]int
	maxLen := 0
	for _, l := range lengths {
		blCount[l]++
		if l > maxLen {
			maxLen = l
		}
	}
	blCount[0] = 0

	codes := make([]uint16, len(lengths))
	var nextCode [maxCodeLen + 2]uint16
	code := uint16(0)
	for bits := 1; bits <= maxLen; bits++ {
		code = (code + uint16(blCount[bits-1])) << 1
		nextCode[bits] = code
	}
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		codes[sym] = nextCode[l]
		nextCode[l]++
	}
	return codes
}

// reverseBits reverses the low n bits of v (DEFLATE transmits Huffman codes
// MSB-first within an otherwise LSB-first bitstream).
func reverseBits(v uint16, n int) uint16 {
	var r uint16
	for i := 0; i < n; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
