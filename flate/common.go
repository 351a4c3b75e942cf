// Package flate implements a streaming DEFLATE/INFLATE codec per RFC 1951
// (§4.7/§4.8 "Deflate compressor"/"Inflate decompressor"): a sliding-window
// LZ77 matcher with hash-chain lookup and greedy/lazy match strategies on
// the compress side, and a canonical-Huffman state machine on the decompress
// side.
//
// Grounded on the Go standard library's compress/flate (the decoder table
// layout in particular, reproduced here via the resumable variant at
// other_examples/e727811c_elliotnunn-BeHierarchic__internal-flate-inflate.go.go)
// and on the original C implementation's deflate.c/inflate.c for the exact
// match-finding, window-slide and tree-construction algorithms (§4.7).
package flate

const (
	// WindowSize is the sliding window: 2^16 bytes of history+lookahead,
	// matching §3's "Deflate context" window size.
	WindowSize = 1 << 16
	// WindowMask masks a cursor into the window.
	WindowMask = WindowSize - 1

	minMatch  = 3
	maxMatch  = 258
	maxOffset = 1 << 15

	hashBits = 15
	hashSize = 1 << hashBits
	hashMask = hashSize - 1
	hashFold = 5 // H_{i+1} = ((H_i << hashFold) ^ next) & hashMask

	tooFarDistance = 4096 // TOO_FAR rule: best_len==3 and distance > this demotes to literal

	numLitCodes  = 286 // 256 literals + 1 EOB + 29 length codes
	numDistCodes = 30
	numCLCodes   = 19
	endBlock     = 256
	maxCodeLen   = 15
)

// clOrder is the fixed transmission order of bit-length code lengths
// (RFC 1951 §3.2.7).
var clOrder = [numCLCodes]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// lengthBase/lengthExtraBits map a match length (3..258) to its RFC 1951
// base code (257..285) and extra-bit count.
var lengthBase = [29]int{3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31, 35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258}
var lengthExtraBits = [29]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0}

// distBase/distExtraBits map a match distance (1..32768) to its RFC 1951
// base code (0..29) and extra-bit count.
var distBase = [30]int{1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193, 257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577}
var distExtraBits = [30]int{0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13}

// levelProfile is the 10-row profile table indexed by compression level
// (§4.7): lazyMax, niceMatch (stop searching once a match this long is
// found), goodMatch, chainDepth (hash-chain links to walk). The matcher reads
// only niceMatch and chainDepth; lazyMax and goodMatch are carried in the
// table but nothing reads them.
type levelProfile struct {
	lazyMax, niceMatch, goodMatch, chainDepth int
}

var levelProfiles = [10]levelProfile{
	{0, 0, 0, 0},         // 0: stored
	{4, 8, 4, 4},         // 1
	{5, 16, 5, 8},        // 2
	{6, 32, 6, 32},       // 3 (fast tier boundary)
	{4, 16, 4, 16},       // 4
	{8, 16, 8, 32},       // 5
	{8, 128, 8, 128},     // 6 (default)
	{8, 128, 8, 256},     // 7
	{32, 258, 32, 1024},  // 8
	{32, 258, 32, 4096},  // 9 (slow tier: lazy matching)
}

// lengthToSymbol returns the length code (257..285) and the extra bits
// (value, count) needed to fully specify a match of the given length.
func lengthToSymbol(length int) (code, extra, extraBits int) {
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if length >= lengthBase[i] {
			return 257 + i, length - lengthBase[i], lengthExtraBits[i]
		}
	}
	panic("flate: length below minimum match")
}

// distToSymbol returns the distance code (0..29) and its extra bits.
func distToSymbol(dist int) (code, extra, extraBits int) {
	for i := len(distBase) - 1; i >= 0; i-- {
		if dist >= distBase[i] {
			return i, dist - distBase[i], distExtraBits[i]
		}
	}
	panic("flate: distance below 1")
}

// fixedLitAlphabet is 288: RFC 1951's fixed-Huffman code assigns lengths to
// symbols 286 and 287 too (they never appear in a stream) because canonical
// code assignment depends on the count of codes at each length across the
// whole alphabet, unused symbols included.
const fixedLitAlphabet = 288

// fixedLitLengths and fixedDistLengths are RFC 1951 §3.2.6's predefined
// code-length tables for the "fixed Huffman" block type.
func fixedLitLengths() []int {
	lens := make([]int, fixedLitAlphabet)
	for i := range lens {
		switch {
		case i < 144:
			lens[i] = 8
		case i < 256:
			lens[i] = 9
		case i < 280:
			lens[i] = 7
		default:
			lens[i] = 8
		}
	}
	return lens
}

func fixedDistLengths() []int {
	lens := make([]int, numDistCodes)
	for i := range lens {
		lens[i] = 5
	}
	return lens
}
