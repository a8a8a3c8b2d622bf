package audio

import (
	"encoding/binary"
	"testing"
)

// TestSoftLimit verifies pass-through, compression and clipping regions
func TestSoftLimit(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		min  float64
		max  float64
	}{
		{"linear", 0.5, 0.5, 0.5},
		{"negative linear", -0.3, -0.3, -0.3},
		{"knee", 0.9, 0.8, 0.9},
		{"hot", 5, 0.95, 1.0},
		{"negative hot", -5, -1.0, -0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := softLimit(tt.in)
			if got < tt.min || got > tt.max {
				t.Errorf("softLimit(%v) = %v, want in [%v, %v]", tt.in, got, tt.min, tt.max)
			}
		})
	}
}

// TestFloatToBytes verifies interleaved little-endian stereo layout
func TestFloatToBytes(t *testing.T) {
	in := [][2]float64{{0.5, -0.5}, {0, 1}}
	out := make([]byte, len(in)*4)
	floatToBytes(in, out)

	want := []int16{16383, -16383, 0}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(out[i*2:]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
	if r := int16(binary.LittleEndian.Uint16(out[6:])); r < 29000 {
		t.Errorf("limited full-scale sample = %d, want near max", r)
	}
}

type constSource float64

func (c constSource) Read(dst [][2]float64) int {
	for i := range dst {
		dst[i] = [2]float64{float64(c), float64(c)}
	}
	return len(dst)
}

// TestPCMReaderWholeFrames verifies partial frames are never emitted
func TestPCMReaderWholeFrames(t *testing.T) {
	r := newPCMReader(constSource(0.25))

	buf := make([]byte, 4*10+3)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 40 {
		t.Errorf("n = %d, want 40", n)
	}

	n, _ = r.Read(buf[:3])
	if n != 0 {
		t.Errorf("sub-frame read returned %d bytes", n)
	}
}
