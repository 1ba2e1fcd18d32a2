package gif

// byteReader is a bounds-checked cursor over the raw container bytes.
// Every read fails with ErrUnexpectedEOF instead of indexing past the
// end of the buffer.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

// Pos returns the current byte offset.
func (r *byteReader) Pos() int {
	return r.pos
}

// ReadByte reads a single byte.
func (r *byteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadUint16 reads a little-endian 16-bit value.
func (r *byteReader) ReadUint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	v := uint16(r.data[r.pos]) | uint16(r.data[r.pos+1])<<8
	r.pos += 2
	return v, nil
}

// ReadBytes reads n raw bytes. The returned slice aliases the
// underlying buffer.
func (r *byteReader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, ErrUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}
