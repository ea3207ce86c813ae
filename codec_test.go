package embedcache

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		vec  []float32
	}{
		{"empty", []float32{}},
		{"single", []float32{0.5}},
		{"typical", []float32{0.1, 0.2, 0.3}},
		{"negative zero", []float32{math.Float32frombits(0x80000000)}},
		{"infinities", []float32{float32(math.Inf(1)), float32(math.Inf(-1))}},
		{"nan payload", []float32{math.Float32frombits(0x7fc00001)}},
		{"extremes", []float32{math.MaxFloat32, math.SmallestNonzeroFloat32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeVector(EncodeVector(tt.vec))
			if err != nil {
				t.Fatalf("DecodeVector failed: %v", err)
			}
			if len(decoded) != len(tt.vec) {
				t.Fatalf("decoded %d components, want %d", len(decoded), len(tt.vec))
			}
			for i := range tt.vec {
				// Bit comparison so NaN and -0 round-trip exactly.
				if math.Float32bits(decoded[i]) != math.Float32bits(tt.vec[i]) {
					t.Errorf("component %d = %x, want %x", i, math.Float32bits(decoded[i]), math.Float32bits(tt.vec[i]))
				}
			}
		})
	}
}

func TestEncodeVectorLayout(t *testing.T) {
	data := EncodeVector([]float32{0.1, 0.2, 0.3})
	if len(data) != 4+3*4 {
		t.Fatalf("encoded length = %d, want %d", len(data), 4+3*4)
	}
	if dim := binary.LittleEndian.Uint32(data); dim != 3 {
		t.Errorf("dimension prefix = %d, want 3", dim)
	}
}

func TestDecodeVectorErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty blob", nil},
		{"short prefix", []byte{1, 0}},
		{"truncated payload", EncodeVector([]float32{0.1, 0.2})[:7]},
		{"trailing bytes", append(EncodeVector([]float32{0.1}), 0xff)},
		{"dimension overflow", []byte{0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeVector(tt.data)
			if err == nil {
				t.Fatal("expected decode error, got nil")
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("error type = %T, want *DecodeError", err)
			}
		})
	}
}
