// Package otp implements repeating-key XOR, the toolkit's one-time pad.
//
// XOR is its own inverse, so encryption and decryption are the same
// operation. A short key is repeated cyclically over the data, which is
// exactly what makes the construction breakable when the key is reused;
// the toolkit keeps the behavior because teaching it is the point.
package otp

import (
	"errors"
	"io"

	"github.com/provide-io/xorpad/pkg/keystream"
)

var (
	// Key errors 🔑
	ErrEmptyKey = errors.New("❌ empty key")
)

// Apply XORs buf in place with key repeated cyclically. Applying twice with
// the same key restores the original contents. The key must be non-empty;
// buf is left untouched on error.
func Apply(buf, key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	for i := range buf {
		buf[i] ^= key[i%len(key)]
	}
	return nil
}

// Encode returns a XORed copy of data, leaving data unmodified.
func Encode(data, key []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	if err := Apply(out, key); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode decodes data encoded with Encode. XOR is symmetric, so this is
// just Encode again.
func Decode(data, key []byte) ([]byte, error) {
	return Encode(data, key)
}

// ApplyKeystream XORs buf in place with successive generator bytes instead
// of a fixed key: byte i consumes the generator's i-th output rather than
// wrapping a key buffer.
func ApplyKeystream(buf []byte, g *keystream.Generator) {
	for i := range buf {
		buf[i] ^= g.NextByte()
	}
}

// ReadWriter applies repeating-key XOR to both directions of an underlying
// io.ReadWriter, carrying one running key position across calls so split
// reads and writes line up with the key cycle.
type ReadWriter struct {
	rw  io.ReadWriter
	key []byte
	pos int
}

// NewReadWriter wraps rw with repeating-key XOR under key.
func NewReadWriter(rw io.ReadWriter, key []byte) (*ReadWriter, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &ReadWriter{rw: rw, key: key}, nil
}

// Read reads from the underlying reader and decodes in place.
func (x *ReadWriter) Read(p []byte) (int, error) {
	n, err := x.rw.Read(p)
	for i := 0; i < n; i++ {
		p[i] ^= x.key[x.pos]
		x.pos = (x.pos + 1) % len(x.key)
	}
	return n, err
}

// Write encodes p into a scratch copy and writes it out.
func (x *ReadWriter) Write(p []byte) (int, error) {
	enc := make([]byte, len(p))
	for i := range p {
		enc[i] = p[i] ^ x.key[x.pos]
		x.pos = (x.pos + 1) % len(x.key)
	}
	return x.rw.Write(enc)
}
