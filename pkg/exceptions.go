package pkg

import (
	"github.com/provide-io/xorpad/internal/blobstore"
	"github.com/provide-io/xorpad/pkg/otp"
)

var (
	// Key errors 🔑
	ErrEmptyKey = otp.ErrEmptyKey

	// I/O errors 📦
	ErrEmptyInput = blobstore.ErrEmptyInput
	ErrShortRead  = blobstore.ErrShortRead
	ErrShortWrite = blobstore.ErrShortWrite
)
