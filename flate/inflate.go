package flate

import "errors"

// inflate state identifiers, mirroring §4.8's 10-state machine.
type inflateState int

const (
	stHeader inflateState = iota
	stStoredAlign
	stFixedSetup
	stDynHeader
	stStoredHeader
	stStoredBody
	stLitLen
	stDistance
	stCopyBackref
	stReadCLLens
	stReadLDLens
	stDone
)

var (
	errNeedMoreInput = errors.New("flate: need more input")
	errBadBlockType  = errors.New("flate: invalid block type")
	errBadStoredLen  = errors.New("flate: stored-block length mismatch")
	errBadDistance   = errors.New("flate: distance refers before window start")
	// ErrDynHeader is DYN_HEAD: a dynamic block's HLIT/HDIST/HCLEN fields
	// describe more codes than the lit/len, distance or bit-length
	// alphabets contain (§8 S6: HLIT above 286 is rejected).
	ErrDynHeader = errors.New("flate: DYN_HEAD: invalid dynamic header counts")
)

// Decompressor runs the §4.8 inflate state machine against one input
// buffer and its own sliding window, producing the fully decompressed
// output. Two Decompressor values never share state (§5 "no shared
// resources").
type Decompressor struct {
	r   bitReader
	out []byte

	window    []byte
	winStart  int // logical offset of window[0] in the decompressed stream
	state     inflateState
	bfinal    bool

	litTable  *symTable
	distTable *symTable

	storedLen int

	// dynamic-header scratch
	hlit, hdist, hclen int
	clLens             [numCLCodes]int
	ldLens             []int
	ldLensIdx          int
	ldLast             int
	ldRepeat           int

	pendingLen  int
	pendingDist int
}

// NewDecompressor returns a fresh decompressor over the given compressed
// bytes.
func NewDecompressor(data []byte) *Decompressor {
	return &Decompressor{r: bitReader{in: data}, state: stHeader}
}

// Decompress runs the whole stream to completion (END state) and returns
// the decompressed bytes.
func Decompress(data []byte) ([]byte, error) {
	d := NewDecompressor(data)
	for d.state != stDone {
		if err := d.step(); err != nil {
			return nil, err
		}
	}
	return d.out, nil
}

func (d *Decompressor) emit(b byte) {
	d.out = append(d.out, b)
	d.window = append(d.window, b)
	if len(d.window) > WindowSize {
		drop := len(d.window) - WindowSize
		d.window = d.window[drop:]
		d.winStart += drop
	}
}

func (d *Decompressor) copyBackref(dist, length int) error {
	if dist > len(d.window) {
		return errBadDistance
	}
	for i := 0; i < length; i++ {
		d.emit(d.window[len(d.window)-dist])
	}
	return nil
}

// step advances the state machine by one transition.
func (d *Decompressor) step() error {
	switch d.state {
	case stHeader:
		bfinal, ok := d.r.readBits(1)
		if !ok {
			return errNeedMoreInput
		}
		btype, ok := d.r.readBits(2)
		if !ok {
			return errNeedMoreInput
		}
		d.bfinal = bfinal == 1
		switch btype {
		case 0:
			d.state = stStoredAlign
		case 1:
			d.state = stFixedSetup
		case 2:
			d.state = stDynHeader
		default:
			return errBadBlockType
		}
		return nil

	case stStoredAlign:
		d.r.align()
		d.state = stStoredHeader
		return nil

	case stStoredHeader:
		lenLo, ok := d.r.readBits(8)
		if !ok {
			return errNeedMoreInput
		}
		lenHi, ok := d.r.readBits(8)
		if !ok {
			return errNeedMoreInput
		}
		nlenLo, ok := d.r.readBits(8)
		if !ok {
			return errNeedMoreInput
		}
		nlenHi, ok := d.r.readBits(8)
		if !ok {
			return errNeedMoreInput
		}
		length := int(lenLo) | int(lenHi)<<8
		nlen := int(nlenLo) | int(nlenHi)<<8
		if length != (nlen^0xffff) {
			return errBadStoredLen
		}
		d.storedLen = length
		d.state = stStoredBody
		return nil

	case stStoredBody:
		for d.storedLen > 0 {
			b, ok := d.r.readByte()
			if !ok {
				return errNeedMoreInput
			}
			d.emit(b)
			d.storedLen--
		}
		return d.endOfBlock()

	case stFixedSetup:
		lit, err := buildSymTable(fixedLitLengths())
		if err != nil {
			return err
		}
		dist, err := buildSymTable(fixedDistLengths())
		if err != nil {
			return err
		}
		d.litTable, d.distTable = lit, dist
		d.state = stLitLen
		return nil

	case stDynHeader:
		return d.readDynHeader()

	case stReadCLLens:
		return d.readCLLens()

	case stReadLDLens:
		return d.readLDLens()

	case stLitLen:
		sym, err := decodeSymbol(d.litTable, &d.r)
		if err != nil {
			return err
		}
		switch {
		case sym < 256:
			d.emit(byte(sym))
			return nil
		case sym == endBlock:
			return d.endOfBlock()
		default:
			li := sym - 257
			if li >= len(lengthBase) {
				return errInvalidCode
			}
			extra := lengthExtraBits[li]
			bits, ok := d.r.readBits(uint(extra))
			if !ok {
				return errNeedMoreInput
			}
			d.pendingLen = lengthBase[li] + int(bits)
			d.state = stDistance
			return nil
		}

	case stDistance:
		sym, err := decodeSymbol(d.distTable, &d.r)
		if err != nil {
			return err
		}
		if sym >= len(distBase) {
			return errInvalidCode
		}
		extra := distExtraBits[sym]
		bits, ok := d.r.readBits(uint(extra))
		if !ok {
			return errNeedMoreInput
		}
		d.pendingDist = distBase[sym] + int(bits)
		d.state = stCopyBackref
		return nil

	case stCopyBackref:
		if err := d.copyBackref(d.pendingDist, d.pendingLen); err != nil {
			return err
		}
		d.state = stLitLen
		return nil

	case stDone:
		return nil
	}
	return errBadBlockType
}

// endOfBlock returns to the header state for the next block, or to the
// terminal state if BFINAL was set (§4.8's FSM cycle description).
func (d *Decompressor) endOfBlock() error {
	if d.bfinal {
		d.state = stDone
		return nil
	}
	d.state = stHeader
	return nil
}

func (d *Decompressor) readDynHeader() error {
	hlit, ok := d.r.readBits(5)
	if !ok {
		return errNeedMoreInput
	}
	hdist, ok := d.r.readBits(5)
	if !ok {
		return errNeedMoreInput
	}
	hclen, ok := d.r.readBits(4)
	if !ok {
		return errNeedMoreInput
	}
	d.hlit = int(hlit) + 257
	d.hdist = int(hdist) + 1
	d.hclen = int(hclen) + 4
	if d.hlit > numLitCodes || d.hdist > numDistCodes {
		return ErrDynHeader
	}
	d.ldLensIdx = 0
	d.ldLast = 0
	d.ldLens = make([]int, d.hlit+d.hdist)
	d.state = stReadCLLens
	return nil
}

func (d *Decompressor) readCLLens() error {
	for i := range d.clLens {
		d.clLens[i] = 0
	}
	for i := 0; i < d.hclen; i++ {
		bits, ok := d.r.readBits(3)
		if !ok {
			return errNeedMoreInput
		}
		d.clLens[clOrder[i]] = int(bits)
	}
	t, err := buildSymTable(d.clLens[:])
	if err != nil {
		return err
	}
	d.litTable = t // reused as scratch for the CL table; cleared before stLitLen
	d.state = stReadLDLens
	return nil
}

// readLDLens run-length decodes the concatenated literal/length and
// distance code-length vectors using the bit-length tree (§4.7 step 4's
// inverse), building both tables once the full vector is filled.
func (d *Decompressor) readLDLens() error {
	total := d.hlit + d.hdist
	for d.ldLensIdx < total {
		sym, err := decodeSymbol(d.litTable, &d.r)
		if err != nil {
			return err
		}
		switch {
		case sym <= 15:
			d.ldLens[d.ldLensIdx] = sym
			d.ldLast = sym
			d.ldLensIdx++
		case sym == 16:
			bits, ok := d.r.readBits(2)
			if !ok {
				return errNeedMoreInput
			}
			n := 3 + int(bits)
			for j := 0; j < n && d.ldLensIdx < total; j++ {
				d.ldLens[d.ldLensIdx] = d.ldLast
				d.ldLensIdx++
			}
		case sym == 17:
			bits, ok := d.r.readBits(3)
			if !ok {
				return errNeedMoreInput
			}
			n := 3 + int(bits)
			for j := 0; j < n && d.ldLensIdx < total; j++ {
				d.ldLens[d.ldLensIdx] = 0
				d.ldLensIdx++
			}
			d.ldLast = 0
		case sym == 18:
			bits, ok := d.r.readBits(7)
			if !ok {
				return errNeedMoreInput
			}
			n := 11 + int(bits)
			for j := 0; j < n && d.ldLensIdx < total; j++ {
				d.ldLens[d.ldLensIdx] = 0
				d.ldLensIdx++
			}
			d.ldLast = 0
		default:
			return errInvalidCode
		}
	}

	lit, err := buildSymTable(d.ldLens[:d.hlit])
	if err != nil {
		return err
	}
	dist, err := buildSymTable(d.ldLens[d.hlit:])
	if err != nil {
		return err
	}
	d.litTable, d.distTable = lit, dist
	d.state = stLitLen
	return nil
}
