// Package digest implements the djb2 hash, the toolkit's 64-bit digest.
//
// djb2 is the classic Bernstein string hash (h = h*33 + c) computed with
// unsigned 64-bit wraparound; the overflow is part of the algorithm. It is
// not collision resistant and must never stand in for a cryptographic hash.
package digest

import "hash"

// Seed is the djb2 initial accumulator. The digest of empty input is Seed.
const Seed uint64 = 5381

// Sum64 returns the djb2 digest of data.
func Sum64(data []byte) uint64 {
	h := Seed
	for _, b := range data {
		h = (h << 5) + h + uint64(b)
	}
	return h
}

// New returns a streaming djb2 digest. Feeding data in any split produces
// the same result as a single Sum64 call.
func New() hash.Hash64 {
	d := digest64(Seed)
	return &d
}

type digest64 uint64

func (d *digest64) Write(p []byte) (int, error) {
	h := uint64(*d)
	for _, b := range p {
		h = (h << 5) + h + uint64(b)
	}
	*d = digest64(h)
	return len(p), nil
}

func (d *digest64) Sum64() uint64 {
	return uint64(*d)
}

// Sum appends the digest in the toolkit's little-endian byte order.
func (d *digest64) Sum(in []byte) []byte {
	v := uint64(*d)
	for i := 0; i < 8; i++ {
		in = append(in, byte(v>>(8*i)))
	}
	return in
}

func (d *digest64) Reset()         { *d = digest64(Seed) }
func (d *digest64) Size() int      { return 8 }
func (d *digest64) BlockSize() int { return 1 }
