package packet

import "testing"

// BenchmarkWriter_LootRows: типичный LootResponse: 16 строк по 22 байта
func BenchmarkWriter_LootRows(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		w := Get()
		w.WriteShort(0x0160)
		w.WriteUint(1)
		for i := range 16 {
			_ = w.WriteByte(byte(i))
			for range 5 {
				w.WriteInt(0x12345678)
			}
			_ = w.WriteByte(0)
		}
		w.Put()
	}
}
