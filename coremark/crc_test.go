package coremark

import "testing"

func TestFoldU8(t *testing.T) {
	tests := []struct {
		name string
		data uint8
		crc  uint16
		want uint16
	}{
		{"zero byte zero crc", 0x00, 0x0000, 0x0000},
		{"one", 0x01, 0x0000, 0xc0c1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FoldU8(tt.data, tt.crc); got != tt.want {
				t.Errorf("FoldU8(%#02x, %#04x) = %#04x, want %#04x", tt.data, tt.crc, got, tt.want)
			}
		})
	}
}

// The bit-serial fold is the reflected 0x8005 polynomial with a zero
// initial value, so the standard check string has a well-known result.
func TestFoldBytesCheckValue(t *testing.T) {
	if got := FoldBytes([]byte("123456789"), 0); got != 0xbb3d {
		t.Errorf("FoldBytes(\"123456789\", 0) = %#04x, want 0xbb3d", got)
	}
}

func TestFoldDeterministic(t *testing.T) {
	data := []byte("5012,1234,-874,+122,35.54400")
	var first uint16 = 0x1d0f
	a := FoldBytes(data, first)
	b := FoldBytes(data, first)
	if a != b {
		t.Errorf("FoldBytes not deterministic: %#04x != %#04x", a, b)
	}
}

func TestFoldU16ByteOrder(t *testing.T) {
	for _, crc := range []uint16{0, 1, 0x8000, 0xffff, 0x1234} {
		got := FoldU16(0x1234, crc)
		want := FoldU8(0x12, FoldU8(0x34, crc))
		if got != want {
			t.Errorf("FoldU16(0x1234, %#04x) = %#04x, want %#04x", crc, got, want)
		}
	}
}

func TestFoldI16MatchesU16(t *testing.T) {
	for _, v := range []int16{0, 1, -1, -32640, 32767, -32768} {
		if got, want := FoldI16(v, 0x55aa), FoldU16(uint16(v), 0x55aa); got != want {
			t.Errorf("FoldI16(%d) = %#04x, want %#04x", v, got, want)
		}
	}
}

func TestFoldU32Halves(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xdeadbeef, 0xffffffff, 0x00010000} {
		got := FoldU32(v, 0)
		want := FoldU16(uint16(v>>16), FoldU16(uint16(v), 0))
		if got != want {
			t.Errorf("FoldU32(%#08x) = %#04x, want %#04x", v, got, want)
		}
	}
}

func BenchmarkFoldU32(b *testing.B) {
	var crc uint16
	for i := 0; i < b.N; i++ {
		crc = FoldU32(uint32(i), crc)
	}
	_ = crc
}
