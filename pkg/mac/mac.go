// Package mac implements the hash-then-encrypt message authentication code.
//
// The tag is the djb2 digest of the message, one-time-pad encrypted with
// the key (the key repeats over the 8 digest bytes). The construction has
// no forgery-resistance proof and is reproduced faithfully for teaching;
// do not use it to protect real traffic.
package mac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/provide-io/xorpad/pkg/buffer"
	"github.com/provide-io/xorpad/pkg/digest"
	"github.com/provide-io/xorpad/pkg/otp"
)

// Tag is a 64-bit authentication tag.
type Tag uint64

// String formats the tag the way the demos print it: 0x followed by 16
// uppercase hex digits.
func (t Tag) String() string {
	return fmt.Sprintf("0x%016X", uint64(t))
}

// ParseTag parses the String form, with or without the 0x prefix.
func ParseTag(s string) (Tag, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing MAC tag %q: %w", s, err)
	}
	return Tag(v), nil
}

// Compute returns the tag for data under key. The digest goes through the
// toolkit's little-endian 8-byte view before encryption, so tags are
// stable across platforms.
func Compute(data, key []byte) (Tag, error) {
	view := buffer.FromUint64(digest.Sum64(data))
	if err := otp.Apply(view, key); err != nil {
		return 0, err
	}
	return Tag(view.Uint64()), nil
}

// Verify recomputes the tag for data and compares it with tag. The
// comparison is plain equality, faithful to the construction; a hardened
// variant would compare in constant time.
func Verify(data, key []byte, tag Tag) (bool, error) {
	want, err := Compute(data, key)
	if err != nil {
		return false, err
	}
	return want == tag, nil
}
