package pkg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestCryptFileRoundTrip encrypts a file and decrypts it back with the
// same key, the way the course exercises validate the cipher.
func TestCryptFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.bin")
	cipher := filepath.Join(dir, "cipher.bin")
	restored := filepath.Join(dir, "restored.bin")

	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 251)
	}
	if err := os.WriteFile(plain, data, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := CryptFile(plain, cipher, "s3cr3t_p4ssw0rd"); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	ct, err := os.ReadFile(cipher)
	if err != nil {
		t.Fatalf("reading ciphertext: %v", err)
	}
	if len(ct) != len(data) {
		t.Fatalf("ciphertext length = %d, want %d", len(ct), len(data))
	}
	if bytes.Equal(ct, data) {
		t.Fatal("ciphertext equals plaintext")
	}

	if err := CryptFile(cipher, restored, "s3cr3t_p4ssw0rd"); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatalf("reading restored file: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatal("restored file differs from original")
	}
}

func TestCryptFileEmptyKey(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	if err := os.WriteFile(plain, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	err := CryptFile(plain, filepath.Join(dir, "out"), "")
	if !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("err = %v, want ErrEmptyKey", err)
	}
}

func TestCryptFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := CryptFile(filepath.Join(dir, "missing"), filepath.Join(dir, "out"), "k")
	if err == nil {
		t.Fatal("CryptFile on missing input succeeded")
	}
}

func TestHashFileVector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("s3cr3t_p4ssw0rd"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	sum, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if sum != 0x89AE391FF2DCE3CD {
		t.Fatalf("sum = 0x%016X, want 0x89AE391FF2DCE3CD", sum)
	}
}

// TestMACFacade exercises the compute/verify pair through the facade.
func TestMACFacade(t *testing.T) {
	data := []byte("This message should be authenticated")
	key := []byte("s3cr3t_p4ssw0rd")

	tag, err := ComputeMAC(data, key)
	if err != nil {
		t.Fatalf("ComputeMAC: %v", err)
	}
	ok, err := VerifyMAC(data, key, tag)
	if err != nil {
		t.Fatalf("VerifyMAC: %v", err)
	}
	if !ok {
		t.Fatal("fresh tag did not verify")
	}

	data[0] = 't'
	ok, err = VerifyMAC(data, key, tag)
	if err != nil {
		t.Fatalf("VerifyMAC: %v", err)
	}
	if ok {
		t.Fatal("tampered message verified")
	}
}
