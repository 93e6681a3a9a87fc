package packet

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestReader_ReadByte(t *testing.T) {
	r := NewReader([]byte{0x42})

	val, err := r.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte failed: %v", err)
	}
	if val != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", val)
	}
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining bytes, got %d", r.Remaining())
	}
}

func TestReader_ReadShort(t *testing.T) {
	data := make([]byte, 2)
	binary.LittleEndian.PutUint16(data, 0x0162)

	val, err := NewReader(data).ReadShort()
	if err != nil {
		t.Fatalf("ReadShort failed: %v", err)
	}
	if val != 0x0162 {
		t.Errorf("expected 0x0162, got 0x%04X", val)
	}
}

func TestReader_ReadIntUint(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data, 0xFFFFFFFE)
	binary.LittleEndian.PutUint32(data[4:], 0xFFFFFFFE)

	r := NewReader(data)
	i, err := r.ReadInt()
	if err != nil {
		t.Fatalf("ReadInt failed: %v", err)
	}
	if i != -2 {
		t.Errorf("expected -2, got %d", i)
	}

	u, err := r.ReadUint()
	if err != nil {
		t.Fatalf("ReadUint failed: %v", err)
	}
	if u != 0xFFFFFFFE {
		t.Errorf("expected 0xFFFFFFFE, got 0x%08X", u)
	}
	if r.Position() != 8 {
		t.Errorf("expected position 8, got %d", r.Position())
	}
}

func TestReader_NotEnoughData(t *testing.T) {
	tests := []struct {
		name string
		read func(r *Reader) error
	}{
		{"byte", func(r *Reader) error { _, err := r.ReadByte(); return err }},
		{"short", func(r *Reader) error { _, err := r.ReadShort(); return err }},
		{"int", func(r *Reader) error { _, err := r.ReadInt(); return err }},
		{"uint", func(r *Reader) error { _, err := r.ReadUint(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(nil)
			err := tt.read(r)
			if !errors.Is(err, ErrNotEnoughData) {
				t.Fatalf("expected ErrNotEnoughData, got %v", err)
			}
			if r.Position() != 0 {
				t.Errorf("position moved on failure: %d", r.Position())
			}
		})
	}
}

func TestReader_WriterRoundTrip(t *testing.T) {
	w := NewWriter(16)
	w.WriteShort(0x0165)
	_ = w.WriteByte(3)
	w.WriteInt(-77)
	w.WriteUint(1 << 31)

	r := NewReader(w.Bytes())
	op, _ := r.ReadShort()
	b, _ := r.ReadByte()
	i, _ := r.ReadInt()
	u, err := r.ReadUint()
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if op != 0x0165 || b != 3 || i != -77 || u != 1<<31 {
		t.Errorf("round trip mismatch: op=0x%04X b=%d i=%d u=%d", op, b, i, u)
	}
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", r.Remaining())
	}
}
