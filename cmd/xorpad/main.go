package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provide-io/xorpad/internal/console"
	"github.com/provide-io/xorpad/pkg"
	"github.com/provide-io/xorpad/pkg/logging"
	"github.com/provide-io/xorpad/pkg/mac"
)

const version = "0.1.0"

var (
	logLevel  string
	debugFlag bool
	rootCmd   *cobra.Command
)

func effectiveLogLevel() string {
	if debugFlag {
		return "debug"
	}
	if logLevel != "" {
		return logLevel
	}
	return logging.GetLogLevel()
}

// readMessage resolves the message argument for the MAC commands. A missing
// argument or "-" reads one line interactively, hex escapes allowed.
func readMessage(args []string, idx int) ([]byte, error) {
	if len(args) > idx && args[idx] != "-" {
		return []byte(args[idx]), nil
	}
	return console.New(os.Stdin, os.Stdout).ReadLine("Message", 0)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "xorpad",
		Short: "Teaching XOR cipher toolkit",
		Long: `Teaching XOR cipher toolkit: djb2 hashing, a xorshift64 stream cipher,
and a hash-then-encrypt MAC. Every construction here is deliberately weak;
the tool exists for coursework, not for protecting data.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Shorthand for --log-level debug")

	rootCmd.AddCommand(cryptCmd(), hashCmd(), macCmd(), verifyCmd())
}

func cryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crypt <input_file> <output_file> <key>",
		Short: "Encrypt or decrypt a file with the stream cipher",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pkg.CryptFileWithLogLevel(args[0], args[1], args[2], effectiveLogLevel())
		},
	}
}

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <file>",
		Short: "Print the djb2 digest of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := pkg.HashFile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("0x%016X\n", sum)
			return nil
		},
	}
}

func macCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mac <key> [message]",
		Short: "Compute an authentication tag for a message",
		Long: `Compute an authentication tag for a message. Pass the message as the
second argument, or "-" (or nothing) to type it at a prompt; prompted input
accepts \NN hex escapes for binary payloads.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(args, 1)
			if err != nil {
				return err
			}
			tag, err := pkg.ComputeMAC(msg, []byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Printf("MAC: %s\n", tag)
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <key> <tag> [message]",
		Short: "Verify an authentication tag",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := mac.ParseTag(args[1])
			if err != nil {
				return err
			}
			msg, err := readMessage(args, 2)
			if err != nil {
				return err
			}
			ok, err := pkg.VerifyMAC(msg, []byte(args[0]), tag)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Message is not authentic")
				os.Exit(1)
			}
			fmt.Println("Message is authentic")
			return nil
		},
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("xorpad %s\n", version)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
