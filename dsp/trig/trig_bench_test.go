package trig

import "testing"

func BenchmarkCosSin(b *testing.B) {
	p := int32(-0x73042531)
	var c, s int32
	for b.Loop() {
		c, s = CosSin(p)
		p += 0x10001
	}
	_, _ = c, s
}

func BenchmarkAtan2(b *testing.B) {
	y, x := int32(-26328<<16), int32(10<<16)
	var a int32
	for b.Loop() {
		a = Atan2(y, x)
		y += 0x101
	}
	_ = a
}
