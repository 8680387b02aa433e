// Package wire implements the binary wire format for the value types in
// the types package.
//
// Values cross the wire in the PostgreSQL binary result format: a declared
// length followed by network-byte-order fields. A [Codec] transcribes one
// type's fields to and from a [Buffer]; a [Registry] maps type OIDs to
// codecs for the surrounding dispatch machinery.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrWire wraps all errors returned by the wire package.
var ErrWire = errors.New("wire")

// Buffer is a sequential cursor over a byte slice with big-endian
// primitive reads and writes. Reads consume from the front; writes append.
// A Buffer is owned by a single goroutine; it performs no locking.
type Buffer struct {
	buf []byte
	pos int
}

// NewBuffer returns a Buffer reading from and appending to b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// Bytes returns the full contents of the buffer, including any bytes
// already read.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of unread bytes.
func (b *Buffer) Len() int { return len(b.buf) - b.pos }

// take consumes the next n bytes.
func (b *Buffer) take(n int) ([]byte, error) {
	if b.Len() < n {
		return nil, fmt.Errorf(
			"%w: need %d bytes, have %d", ErrWire, n, b.Len(),
		)
	}
	p := b.buf[b.pos : b.pos+n]
	b.pos += n
	return p, nil
}

// ReadInt32 consumes a big-endian int32.
func (b *Buffer) ReadInt32() (int32, error) {
	p, err := b.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(p)), nil
}

// ReadInt64 consumes a big-endian int64.
func (b *Buffer) ReadInt64() (int64, error) {
	p, err := b.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(p)), nil
}

// ReadFloat64 consumes a big-endian IEEE-754 double.
func (b *Buffer) ReadFloat64() (float64, error) {
	p, err := b.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(p)), nil
}

// WriteInt32 appends a big-endian int32.
func (b *Buffer) WriteInt32(v int32) {
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(v))
}

// WriteInt64 appends a big-endian int64.
func (b *Buffer) WriteInt64(v int64) {
	b.buf = binary.BigEndian.AppendUint64(b.buf, uint64(v))
}

// WriteFloat64 appends a big-endian IEEE-754 double.
func (b *Buffer) WriteFloat64(v float64) {
	b.buf = binary.BigEndian.AppendUint64(b.buf, math.Float64bits(v))
}
