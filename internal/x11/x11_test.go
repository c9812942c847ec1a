package x11

import "testing"

func TestCodec32(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x70898f, 0xdeadbeef, 0xffffffff} {
		var buf [4]byte
		encode32(buf[:], v)
		if got := decode32(buf[:]); got != v {
			t.Errorf("decode32(encode32(%#x)) = %#x", v, got)
		}
	}
}

func TestDecode32IsLittleEndian(t *testing.T) {
	// X property data arrives as little-endian 32-bit words.
	if got := decode32([]byte{0x01, 0x02, 0x03, 0x04}); got != 0x04030201 {
		t.Fatalf("decode32 = %#x, want 0x04030201", got)
	}
}
