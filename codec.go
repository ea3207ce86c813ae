package embedcache

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DecodeError reports a stored blob that could not be parsed back into a
// valid embedding vector, typically corrupt or version-mismatched data.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "embedcache: decode: " + e.Reason
}

// EncodeVector serializes a vector into its canonical byte encoding: a
// little-endian uint32 dimension prefix followed by the IEEE-754 bits of
// each float32 component. The encoding round-trips bit for bit, so a vector
// written by one process reads back identically in another.
func EncodeVector(vec []float32) []byte {
	buf := make([]byte, 4+len(vec)*4)
	binary.LittleEndian.PutUint32(buf, uint32(len(vec)))
	for i, f := range vec {
		binary.LittleEndian.PutUint32(buf[4+i*4:], math.Float32bits(f))
	}
	return buf
}

// DecodeVector parses a blob produced by EncodeVector. Blobs whose length
// does not match the dimension prefix yield a DecodeError.
func DecodeVector(data []byte) ([]float32, error) {
	if len(data) < 4 {
		return nil, &DecodeError{Reason: fmt.Sprintf("blob of %d bytes shorter than dimension prefix", len(data))}
	}
	dim := binary.LittleEndian.Uint32(data)
	if uint64(len(data)) != 4+uint64(dim)*4 {
		return nil, &DecodeError{Reason: fmt.Sprintf("dimension prefix %d does not match %d payload bytes", dim, len(data)-4)}
	}
	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4+i*4:]))
	}
	return vec, nil
}
