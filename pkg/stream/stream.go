// Package stream implements the xorshift64-keyed stream cipher.
//
// The cipher hashes the key with djb2, seeds a keystream generator with the
// digest, and XORs the keystream over the data. Encryption and decryption
// are literally the same operation: transforming twice with the same key
// restores the original bytes. This is a teaching construction; it offers
// no real confidentiality.
package stream

import (
	"io"

	"github.com/provide-io/xorpad/pkg/digest"
	"github.com/provide-io/xorpad/pkg/keystream"
	"github.com/provide-io/xorpad/pkg/otp"
)

// Cipher is a running stream cipher instance. It satisfies the
// crypto/cipher Stream interface. Not safe for concurrent use.
type Cipher struct {
	gen *keystream.Generator
}

// NewCipher creates a cipher keyed with key. The key must be non-empty; its
// length is taken from its content.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) == 0 {
		return nil, otp.ErrEmptyKey
	}
	return newCipherFromSeed(digest.Sum64(key)), nil
}

// newCipherFromSeed builds a cipher directly on a keystream seed.
// keystream.New substitutes FallbackSeed for zero, so a key that happens to
// hash to zero still yields a working keystream.
func newCipherFromSeed(seed uint64) *Cipher {
	return &Cipher{gen: keystream.New(seed)}
}

// XORKeyStream XORs src with the keystream into dst. dst and src may be
// the same slice. Panics if dst is shorter than src, matching the
// crypto/cipher contract.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("stream: output smaller than input")
	}
	for i, v := range src {
		dst[i] = v ^ c.gen.NextByte()
	}
}

// Transform encrypts or decrypts buf in place with key.
func Transform(buf, key []byte) error {
	c, err := NewCipher(key)
	if err != nil {
		return err
	}
	c.XORKeyStream(buf, buf)
	return nil
}

// Reader transforms everything read through it with a fresh cipher keyed
// at construction.
type Reader struct {
	r io.Reader
	c *Cipher
}

// NewReader wraps r so reads come out transformed under key.
func NewReader(r io.Reader, key []byte) (*Reader, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, c: c}, nil
}

// Read reads from the underlying reader and transforms in place.
func (sr *Reader) Read(p []byte) (int, error) {
	n, err := sr.r.Read(p)
	if n > 0 {
		sr.c.XORKeyStream(p[:n], p[:n])
	}
	return n, err
}
