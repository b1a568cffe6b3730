// Package keystream implements the xorshift64 pseudo-random generator that
// keys the stream cipher.
//
// The generator is deterministic and restartable: the same seed always
// yields the same byte sequence, and a Snapshot can be Restored to replay
// from any point. It is NOT cryptographically secure.
package keystream

// FallbackSeed replaces a zero seed. Zero is an absorbing state for
// xorshift64: from state zero every later output is zero, which would turn
// the cipher into a no-op.
const FallbackSeed uint64 = 0xFFFFFFFF

// Generator is a xorshift64 state machine. Not safe for concurrent use.
type Generator struct {
	state uint64
}

// New returns a generator seeded with seed, substituting FallbackSeed when
// seed is zero.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = FallbackSeed
	}
	return &Generator{state: seed}
}

// Next advances the generator and returns the new 64-bit state value.
func (g *Generator) Next() uint64 {
	x := g.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.state = x
	return x
}

// NextByte returns the low 8 bits of Next, one keystream byte.
func (g *Generator) NextByte() byte {
	return byte(g.Next())
}

// Read fills p with keystream bytes. It never fails; the stream is
// infinite. This makes a Generator usable anywhere an io.Reader is.
func (g *Generator) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = g.NextByte()
	}
	return len(p), nil
}

// Snapshot captures the current state so the sequence can be restarted.
func (g *Generator) Snapshot() uint64 {
	return g.state
}

// Restore rewinds the generator to a state captured with Snapshot. A zero
// state is substituted with FallbackSeed, same as at construction.
func (g *Generator) Restore(state uint64) {
	if state == 0 {
		state = FallbackSeed
	}
	g.state = state
}
