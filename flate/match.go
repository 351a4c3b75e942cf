package flate

// hashChain indexes every position in an in-memory buffer by its rolling
// 3-byte hash, letting longestMatch walk candidates newest-first (§4.7
// "Hash function"/"Longest-match"). Because Compress holds its whole input
// resident rather than streaming through a bounded window, prev is sized to
// the input directly (head keeps hashSize buckets) instead of to the spec's
// 2^15-entry window arrays — §4.7's window-slide rewrite is therefore not
// needed here; see
// DESIGN.md for the tradeoff.
type hashChain struct {
	data []byte
	head []int
	prev []int
}

func newHashChain(data []byte) *hashChain {
	head := make([]int, hashSize)
	for i := range head {
		head[i] = -1
	}
	return &hashChain{data: data, head: head, prev: make([]int, len(data))}
}

func hash3(data []byte, pos int) int {
	if pos+2 >= len(data) {
		return -1
	}
	h := 0
	for k := 0; k < 3; k++ {
		h = ((h << hashFold) ^ int(data[pos+k])) & hashMask
	}
	return h
}

func (c *hashChain) insert(pos int) {
	h := hash3(c.data, pos)
	if h < 0 {
		return
	}
	c.prev[pos] = c.head[h]
	c.head[h] = pos
}

// matchLength extends a match forward from two candidate start positions,
// capped at maxMatch.
func matchLength(data []byte, a, b int) int {
	limit := len(data) - b
	if limit > maxMatch {
		limit = maxMatch
	}
	n := 0
	for n < limit && data[a+n] == data[b+n] {
		n++
	}
	return n
}

// longestMatch walks the hash chain at pos, limited to profile.chainDepth
// links and the §4.7 window horizon (maxOffset), returning the best
// (length, distance) pair found, or (0,0) if no length-3+ match exists or
// the TOO_FAR rule demotes a length-3 match to a literal.
func longestMatch(c *hashChain, pos int, profile levelProfile) (length, distance int) {
	limit := pos - maxOffset
	if limit < 0 {
		limit = 0
	}
	h := hash3(c.data, pos)
	if h < 0 {
		return 0, 0
	}
	nice := profile.niceMatch
	if rem := len(c.data) - pos; rem < nice {
		nice = rem
	}

	best, bestDist := 0, 0
	chain := profile.chainDepth
	for cand := c.head[h]; cand >= limit && chain > 0; cand, chain = c.prev[cand], chain-1 {
		if best > 0 && pos+best < len(c.data) && c.data[cand+best] != c.data[pos+best] {
			continue
		}
		l := matchLength(c.data, cand, pos)
		if l > best {
			best, bestDist = l, pos-cand
			if best >= nice || best >= maxMatch {
				break
			}
		}
	}
	if best < minMatch {
		return 0, 0
	}
	if best == minMatch && bestDist > tooFarDistance {
		return 0, 0
	}
	return best, bestDist
}
