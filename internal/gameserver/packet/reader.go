package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrNotEnoughData is wrapped by every read past the end of the packet.
var ErrNotEnoughData = errors.New("not enough data")

// Reader decodes a packet. All multi-byte values are Little-Endian.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a reader over data. data is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) need(op string, n int) error {
	if r.pos+n > len(r.data) {
		return fmt.Errorf("%s: %w (pos=%d, need=%d, len=%d)", op, ErrNotEnoughData, r.pos, n, len(r.data))
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need("ReadByte", 1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadShort reads a uint16.
func (r *Reader) ReadShort() (uint16, error) {
	if err := r.need("ReadShort", 2); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return val, nil
}

// ReadInt reads an int32.
func (r *Reader) ReadInt() (int32, error) {
	val, err := r.readUint("ReadInt")
	return int32(val), err
}

// ReadUint reads a uint32.
func (r *Reader) ReadUint() (uint32, error) {
	return r.readUint("ReadUint")
}

func (r *Reader) readUint(op string) (uint32, error) {
	if err := r.need(op, 4); err != nil {
		return 0, err
	}
	val := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return val, nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}
