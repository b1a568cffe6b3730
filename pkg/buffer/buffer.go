// Package buffer provides the owned byte buffer that every toolkit
// component operates on. Constructors copy their input, so a Buffer never
// aliases caller memory; length is fixed at construction time.
package buffer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Buffer is an owned, fixed-length byte sequence.
type Buffer []byte

// New returns a zeroed buffer of the given size.
func New(size int) Buffer {
	return make(Buffer, size)
}

// FromBytes returns a buffer holding a copy of b.
func FromBytes(b []byte) Buffer {
	buf := make(Buffer, len(b))
	copy(buf, b)
	return buf
}

// FromString returns a buffer holding the bytes of s. The length comes from
// the string's content, not from any container size.
func FromString(s string) Buffer {
	return Buffer(s)
}

// FromUint64 views v as its 8 bytes in little-endian order. This is the one
// integer-to-bytes conversion used across the toolkit; digests and MAC tags
// go through it so results are reproducible across platforms.
func FromUint64(v uint64) Buffer {
	buf := make(Buffer, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

// Uint64 decodes the first 8 bytes of the buffer as a little-endian 64-bit
// value, the inverse of FromUint64. The buffer must hold at least 8 bytes.
func (b Buffer) Uint64() uint64 {
	return binary.LittleEndian.Uint64(b[:8])
}

// Len returns the buffer size in bytes.
func (b Buffer) Len() int {
	return len(b)
}

// Bytes exposes the underlying byte slice. Mutations are visible through
// the buffer.
func (b Buffer) Bytes() []byte {
	return b
}

// Clone returns an independent copy.
func (b Buffer) Clone() Buffer {
	return FromBytes(b)
}

// Equal reports whether two buffers hold identical contents.
func (b Buffer) Equal(other Buffer) bool {
	return bytes.Equal(b, other)
}

// HexString renders the buffer as \xNN escapes, the format the demo tools
// use to print binary data.
func (b Buffer) HexString() string {
	var sb strings.Builder
	for _, c := range b {
		fmt.Fprintf(&sb, "\\x%02x", c)
	}
	return sb.String()
}
