package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Size is the fixed length of every frame on the wire.
const Size = 16

// Kind values for single-mode frames.
const (
	KindDistance int32 = 1
	KindVelocity int32 = 2
)

// ErrMalformedFrame indicates a decode input of the wrong length.
var ErrMalformedFrame = errors.New("malformed frame")

// Record is an atomic distance+velocity sample. TS is the timestamp of the
// distance reading in milliseconds since the Unix epoch.
type Record struct {
	TS       uint64
	Distance int32
	Velocity int32
}

// SingleRecord is a per-reading sample used in single mode. Kind is
// KindDistance or KindVelocity.
type SingleRecord struct {
	TS    uint64
	Kind  int32
	Value int32
}

// EncodeRecord serializes a Record into the canonical 16-byte little-endian
// layout: [0:8) ts_ms | [8:12) distance | [12:16) velocity. Wider integers
// funneled into the int32 fields wrap by two's-complement conversion before
// they reach this function; encoding itself cannot fail.
func EncodeRecord(r Record) []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint64(buf[0:8], r.TS)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(r.Distance))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(r.Velocity))
	return buf
}

// EncodeSingle serializes a SingleRecord using the same layout with
// field1 = kind and field2 = value.
func EncodeSingle(r SingleRecord) []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint64(buf[0:8], r.TS)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(r.Kind))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(r.Value))
	return buf
}

// DecodeRecord is the inverse of EncodeRecord.
func DecodeRecord(b []byte) (Record, error) {
	if len(b) != Size {
		return Record{}, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedFrame, len(b), Size)
	}
	return Record{
		TS:       binary.LittleEndian.Uint64(b[0:8]),
		Distance: int32(binary.LittleEndian.Uint32(b[8:12])),
		Velocity: int32(binary.LittleEndian.Uint32(b[12:16])),
	}, nil
}

// DecodeSingle is the inverse of EncodeSingle.
func DecodeSingle(b []byte) (SingleRecord, error) {
	if len(b) != Size {
		return SingleRecord{}, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedFrame, len(b), Size)
	}
	return SingleRecord{
		TS:    binary.LittleEndian.Uint64(b[0:8]),
		Kind:  int32(binary.LittleEndian.Uint32(b[8:12])),
		Value: int32(binary.LittleEndian.Uint32(b[12:16])),
	}, nil
}
