package gif

import (
	"errors"
	"testing"
)

func TestByteReader(t *testing.T) {
	r := newByteReader([]byte{0x01, 0x34, 0x12, 0xAA, 0xBB, 0xCC})

	b, err := r.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte failed: %v", err)
	}
	if b != 0x01 {
		t.Errorf("ReadByte = 0x%02X, want 0x01", b)
	}

	v, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("ReadUint16 = 0x%04X, want 0x1234 (little-endian)", v)
	}

	raw, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if raw[0] != 0xAA || raw[1] != 0xBB || raw[2] != 0xCC {
		t.Errorf("ReadBytes = % X, want AA BB CC", raw)
	}

	if r.Pos() != 6 {
		t.Errorf("Pos = %d, want 6", r.Pos())
	}
}

func TestByteReaderEOF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *byteReader) error
	}{
		{
			name: "byte past end",
			data: nil,
			read: func(r *byteReader) error {
				_, err := r.ReadByte()
				return err
			},
		},
		{
			name: "uint16 with one byte left",
			data: []byte{0x12},
			read: func(r *byteReader) error {
				_, err := r.ReadUint16()
				return err
			},
		},
		{
			name: "slice past end",
			data: []byte{0x12},
			read: func(r *byteReader) error {
				_, err := r.ReadBytes(2)
				return err
			},
		},
		{
			name: "negative length",
			data: []byte{0x12},
			read: func(r *byteReader) error {
				_, err := r.ReadBytes(-1)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(newByteReader(tt.data))
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("err = %v, want ErrUnexpectedEOF", err)
			}
		})
	}
}
