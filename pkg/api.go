package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/xorpad/internal/blobstore"
	"github.com/provide-io/xorpad/pkg/digest"
	"github.com/provide-io/xorpad/pkg/logging"
	"github.com/provide-io/xorpad/pkg/mac"
	"github.com/provide-io/xorpad/pkg/stream"
)

// CryptFile reads the input file, transforms it with the stream cipher
// under key, and writes the result to the output file. Running it again
// with the same key restores the original file.
func CryptFile(inputPath, outputPath, key string) error {
	return CryptFileWithLogger(inputPath, outputPath, key, hclog.NewNullLogger())
}

// CryptFileWithLogLevel is CryptFile with a standard logger at the given
// level; an empty level falls back to the environment configuration.
func CryptFileWithLogLevel(inputPath, outputPath, key, logLevel string) error {
	if logLevel == "" {
		logLevel = logging.GetLogLevel()
	}
	logger := logging.NewLogger("xorpad", logLevel, nil)
	return CryptFileWithLogger(inputPath, outputPath, key, logger)
}

// CryptFileWithLogger is CryptFile with a caller-provided logger.
func CryptFileWithLogger(inputPath, outputPath, key string, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	store := blobstore.NewStoreWithLogger(logger)

	buf, err := store.ReadFile(inputPath)
	if err != nil {
		return err
	}
	logging.Dump(logger, "input", buf)

	if err := stream.Transform(buf, []byte(key)); err != nil {
		return err
	}
	logging.Dump(logger, "output", buf)

	return store.WriteFile(outputPath, buf)
}

// ComputeMAC returns the authentication tag for data under key.
func ComputeMAC(data, key []byte) (mac.Tag, error) {
	return mac.Compute(data, key)
}

// VerifyMAC reports whether tag authenticates data under key.
func VerifyMAC(data, key []byte, tag mac.Tag) (bool, error) {
	return mac.Verify(data, key, tag)
}

// HashFile returns the djb2 digest of the file at path.
func HashFile(path string) (uint64, error) {
	buf, err := blobstore.NewStore().ReadFile(path)
	if err != nil {
		return 0, err
	}
	return digest.Sum64(buf), nil
}
