package gif

// Variable-width LZW decompressor for GIF image data.
//
// GIF packs codes LSB-first: bits are consumed starting from the least
// significant bit of each payload byte and codes may span byte
// boundaries. The code width starts at litWidth+1 and grows by one the
// moment the table fills the current width, up to 12 bits. A clear
// code rebuilds the table from scratch; an end-of-information code
// terminates the stream.
//
// The standard library's compress/lzw is deliberately not used here:
// it neither distinguishes stream-desync from truncation nor allows
// the frozen-table policy below to be observed, and GIF error
// classification needs both.

const (
	maxCodeWidth = 12
	maxTableSize = 1 << maxCodeWidth
)

// lzwEntry is one code table entry. Sequences are stored as a suffix
// byte plus the code of the remaining prefix, so installing an entry
// is O(1) and the table is a flat array instead of a hash map.
type lzwEntry struct {
	prefix int16 // code of the prefix sequence, -1 for root entries
	suffix byte  // last symbol of this entry's sequence
	length int   // total sequence length, 0 = undefined/reserved
}

type lzwDecoder struct {
	src   []byte
	pos   int    // next byte of src to load
	bits  uint32 // bit accumulator, consumed from the low end
	nBits int

	table    [maxTableSize]lzwEntry
	ncolors  int
	litWidth int

	clearCode int
	eoiCode   int
	codeSize  int
	nextFree  int

	out []byte
	seq [maxTableSize]byte // scratch for unwinding one sequence
}

// decompressLZW decodes an assembled GIF image payload into a flat
// sequence of color table indices. litWidth is the minimum code size
// from the image data block, ncolors the size of the resolved palette.
func decompressLZW(data []byte, litWidth, ncolors int) ([]byte, error) {
	// GIF writers never emit a minimum code size below 2, even for
	// monochrome palettes.
	if litWidth < 2 {
		litWidth = 2
	}
	if litWidth > 8 {
		return nil, ErrCodeTableCorruption
	}

	d := &lzwDecoder{
		src:       data,
		ncolors:   ncolors,
		litWidth:  litWidth,
		clearCode: 1 << litWidth,
	}
	d.eoiCode = d.clearCode + 1
	d.reset()

	return d.decode()
}

// reset seeds the table with the palette singletons and the two
// reserved codes, and drops the code width back to its initial value.
func (d *lzwDecoder) reset() {
	for i := 0; i < d.ncolors && i < d.clearCode; i++ {
		d.table[i] = lzwEntry{prefix: -1, suffix: byte(i), length: 1}
	}
	// Codes between the palette and the clear code, and the two
	// reserved codes themselves, stay undefined (length 0). They must
	// never be referenced as data.
	for i := d.ncolors; i <= d.eoiCode; i++ {
		d.table[i] = lzwEntry{prefix: -1, length: 0}
	}
	d.codeSize = d.litWidth + 1
	d.nextFree = d.eoiCode + 1
}

// readCode consumes codeSize bits from the accumulator, refilling it
// byte by byte from the payload.
func (d *lzwDecoder) readCode() (int, error) {
	for d.nBits < d.codeSize {
		if d.pos >= len(d.src) {
			return 0, ErrUnexpectedEOF
		}
		d.bits |= uint32(d.src[d.pos]) << d.nBits
		d.nBits += 8
		d.pos++
	}
	code := int(d.bits & (1<<d.codeSize - 1))
	d.bits >>= d.codeSize
	d.nBits -= d.codeSize
	return code, nil
}

// emit appends the sequence for a defined code to the output and
// returns its first symbol.
func (d *lzwDecoder) emit(code int) byte {
	n := d.table[code].length
	for i := n - 1; ; i-- {
		d.seq[i] = d.table[code].suffix
		if d.table[code].prefix < 0 {
			break
		}
		code = int(d.table[code].prefix)
	}
	d.out = append(d.out, d.seq[:n]...)
	return d.seq[0]
}

// defined reports whether a code currently names a data sequence.
// Entries at or above nextFree may hold stale definitions from before
// a clear code and do not count.
func (d *lzwDecoder) defined(code int) bool {
	return code < d.nextFree && d.table[code].length > 0
}

// grow widens the code size once the table fills the current width.
// GIF uses the early-increment convention: the width grows as soon as
// the next free slot would need it.
func (d *lzwDecoder) grow() {
	if d.nextFree == 1<<d.codeSize && d.codeSize < maxCodeWidth {
		d.codeSize++
	}
}

func (d *lzwDecoder) decode() ([]byte, error) {
	prev := -1

	for {
		code, err := d.readCode()
		if err != nil {
			return nil, err
		}

		switch {
		case code == d.clearCode:
			d.reset()
			// The code following a clear is a plain literal.
			code, err = d.readCode()
			if err != nil {
				return nil, err
			}
			if code == d.eoiCode {
				return d.out, nil
			}
			if !d.defined(code) {
				return nil, ErrCodeTableCorruption
			}
			d.emit(code)
			prev = code

		case code == d.eoiCode:
			return d.out, nil

		case d.defined(code):
			first := d.emit(code)
			if prev >= 0 && d.nextFree < maxTableSize {
				d.table[d.nextFree] = lzwEntry{
					prefix: int16(prev),
					suffix: first,
					length: d.table[prev].length + 1,
				}
				d.nextFree++
				d.grow()
			}
			prev = code

		case code == d.nextFree && prev >= 0 && d.nextFree < maxTableSize:
			// Not-yet-defined code: the new entry is prev's sequence
			// with prev's own first symbol appended.
			e := lzwEntry{
				prefix: int16(prev),
				suffix: d.firstSymbol(prev),
				length: d.table[prev].length + 1,
			}
			d.table[d.nextFree] = e
			d.nextFree++
			d.emit(code)
			d.grow()
			prev = code

		default:
			// Once the table is full it freezes: no new entries, but
			// every defined code above stays decodable until a clear
			// or EOI arrives. Anything else is a desynced stream.
			return nil, ErrCodeTableCorruption
		}
	}
}

func (d *lzwDecoder) firstSymbol(code int) byte {
	for d.table[code].prefix >= 0 {
		code = int(d.table[code].prefix)
	}
	return d.table[code].suffix
}
