package mac

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/xorpad/pkg/otp"
)

// TestComputeVector pins the frozen (data, key) -> tag triple.
func TestComputeVector(t *testing.T) {
	tag, err := Compute(
		[]byte("This message should be authenticated"),
		[]byte("s3cr3t_p4ssw0rd"),
	)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if tag != Tag(0x48BAE3B918FF90A8) {
		t.Fatalf("tag = %s, want 0x48BAE3B918FF90A8", tag)
	}
}

// TestVerifyConsistency checks a freshly computed tag always verifies.
func TestVerifyConsistency(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "mac_test",
		Level: hclog.Trace,
	})

	testCases := []struct {
		name string
		data string
		key  string
	}{
		{name: "ascii message", data: "This message should be authenticated", key: "s3cr3t_p4ssw0rd"},
		{name: "empty message", data: "", key: "k"},
		{name: "key longer than tag", data: "short", key: "a key much longer than eight bytes"},
		{name: "single byte key", data: "payload", key: "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger.Info("🧪 Testing MAC consistency",
				"test", tc.name,
				"data_len", len(tc.data),
				"key_len", len(tc.key),
			)

			tag, err := Compute([]byte(tc.data), []byte(tc.key))
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}

			logger.Debug("🔏 Tag computed", "tag", tag.String())

			ok, err := Verify([]byte(tc.data), []byte(tc.key), tag)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if !ok {
				t.Error("fresh tag did not verify")
			}
		})
	}
}

// TestSensitivity flips single bytes of the message and expects
// verification to fail. The construction is weak, so this runs across many
// positions and bit patterns rather than trusting any one case.
func TestSensitivity(t *testing.T) {
	data := []byte("This message should be authenticated")
	key := []byte("s3cr3t_p4ssw0rd")

	tag, err := Compute(data, key)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var mutations, missed int
	for i := range data {
		for _, flip := range []byte{0x01, 0x80, 0xFF} {
			mutated := append([]byte(nil), data...)
			mutated[i] ^= flip
			if bytes.Equal(mutated, data) {
				continue
			}
			mutations++
			ok, err := Verify(mutated, key, tag)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if ok {
				missed++
			}
		}
	}
	if mutations == 0 {
		t.Fatal("no mutations exercised")
	}
	if missed > 0 {
		t.Errorf("%d of %d single-byte mutations still verified", missed, mutations)
	}
}

// TestEmptyKeyRejected checks the InvalidKey precondition propagates from
// the underlying cipher.
func TestEmptyKeyRejected(t *testing.T) {
	if _, err := Compute([]byte("data"), nil); !errors.Is(err, otp.ErrEmptyKey) {
		t.Fatalf("Compute with empty key: err = %v, want ErrEmptyKey", err)
	}
	ok, err := Verify([]byte("data"), []byte{}, 0)
	if !errors.Is(err, otp.ErrEmptyKey) {
		t.Fatalf("Verify with empty key: err = %v, want ErrEmptyKey", err)
	}
	if ok {
		t.Fatal("Verify with empty key returned a positive verdict")
	}
}

// TestTagFormat checks String and ParseTag agree on the demo format.
func TestTagFormat(t *testing.T) {
	tag := Tag(0x48BAE3B918FF90A8)
	if got := tag.String(); got != "0x48BAE3B918FF90A8" {
		t.Fatalf("String = %q", got)
	}
	parsed, err := ParseTag(tag.String())
	if err != nil {
		t.Fatalf("ParseTag: %v", err)
	}
	if parsed != tag {
		t.Fatalf("ParseTag round trip = %s", parsed)
	}
	if _, err := ParseTag("not hex"); err == nil {
		t.Fatal("ParseTag accepted junk")
	}

	// Small tags keep their leading zeros.
	if got := Tag(0xAB).String(); got != "0x00000000000000AB" {
		t.Fatalf("String = %q", got)
	}
}
