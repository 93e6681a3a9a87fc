package testutil

import (
	"encoding/binary"
	"testing"
)

// AssertPacketOpcode проверяет little-endian uint16 opcode в начале пакета.
func AssertPacketOpcode(t testing.TB, expected uint16, packet []byte) {
	t.Helper()

	if len(packet) < 2 {
		t.Fatalf("packet too short for opcode: %d bytes, expected opcode 0x%04X", len(packet), expected)
	}

	actual := binary.LittleEndian.Uint16(packet)
	if actual != expected {
		t.Fatalf("packet opcode mismatch: expected 0x%04X, got 0x%04X", expected, actual)
	}
}

// AssertUint32LE проверяет uint32 значение в пакете (little-endian) по смещению.
func AssertUint32LE(t testing.TB, expected uint32, packet []byte, offset int) {
	t.Helper()

	if len(packet) < offset+4 {
		t.Fatalf("packet too short: need %d bytes for uint32 at offset %d, got %d",
			offset+4, offset, len(packet))
	}

	actual := binary.LittleEndian.Uint32(packet[offset:])
	if actual != expected {
		t.Fatalf("uint32 mismatch at offset %d: expected %d, got %d", offset, expected, actual)
	}
}
