package common

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestSliceToBytes(t *testing.T) {
	data := []float32{1.5, -2.25, 3.75}
	buf := SliceToBytes(data)

	if len(buf) != len(data)*4 {
		t.Fatalf("length = %d, want %d", len(buf), len(data)*4)
	}
	for i, want := range data {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != want {
			t.Errorf("element %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSliceToBytesEmpty(t *testing.T) {
	if buf := SliceToBytes([]uint32{}); buf != nil {
		t.Errorf("empty slice: got %v, want nil", buf)
	}
}

func TestStructToBytes(t *testing.T) {
	type packed struct {
		A uint32
		B uint32
	}
	v := packed{A: 0x01020304, B: 0xAABBCCDD}
	buf := StructToBytes(&v)

	if len(buf) != 8 {
		t.Fatalf("length = %d, want 8", len(buf))
	}
	if got := binary.LittleEndian.Uint32(buf[0:]); got != v.A {
		t.Errorf("field A: got %#x, want %#x", got, v.A)
	}
	if got := binary.LittleEndian.Uint32(buf[4:]); got != v.B {
		t.Errorf("field B: got %#x, want %#x", got, v.B)
	}
}
