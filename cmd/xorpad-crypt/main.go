package main

import (
	"fmt"
	"os"

	"github.com/provide-io/xorpad/pkg"
)

const version = "0.1.0"

// xorpad-crypt is the single-purpose file cipher: it reads the input file,
// transforms it with the xorshift64 stream cipher, and writes the output
// file. Encrypting and decrypting are the same invocation. Diagnostics go
// to stdout and any failure exits 1, so the tool scripts cleanly.
func main() {
	if len(os.Args) == 2 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("xorpad-crypt %s\n", version)
		return
	}

	if len(os.Args) != 4 {
		fmt.Printf("Usage: %s <input_file> <output_file> <key>\n", os.Args[0])
		os.Exit(1)
	}

	// The key length comes from the argument's content, nothing else.
	if err := pkg.CryptFileWithLogLevel(os.Args[1], os.Args[2], os.Args[3], ""); err != nil {
		fmt.Printf("Failed to crypt file: %v\n", err)
		os.Exit(1)
	}
}
