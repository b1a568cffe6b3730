// Package console reads interactive user input for the demo commands.
// Binary payloads can be typed at the prompt with \NN hex escapes, e.g.
// "Hi\ff\33" yields four bytes: two ASCII characters and two raw bytes.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxInput caps a single line of input, matching the original tools.
const MaxInput = 1023

// LineReader reads prompted lines from one input source.
type LineReader struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a line reader over the given input and prompt output.
func New(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{in: bufio.NewReader(in), out: out}
}

// ReadLine prompts (when prompt is non-empty) and reads one line, decoding
// \NN hex escapes to raw bytes. max caps the decoded length; zero or
// anything above MaxInput means MaxInput.
func (l *LineReader) ReadLine(prompt string, max int) ([]byte, error) {
	if max <= 0 || max > MaxInput {
		max = MaxInput
	}
	if prompt != "" {
		fmt.Fprintf(l.out, "%s: ", prompt)
	}

	line, err := l.in.ReadString('\n')
	if err != nil && len(line) == 0 {
		return nil, err
	}
	line = strings.TrimRight(line, "\r\n")

	return decodeEscapes(line, max), nil
}

// decodeEscapes copies line while turning \NN sequences into raw bytes.
// A backslash not followed by two hex digits is kept literally.
func decodeEscapes(line string, max int) []byte {
	out := make([]byte, 0, len(line))
	for i := 0; i < len(line) && len(out) < max; i++ {
		c := line[i]
		if c == '\\' && i+2 < len(line) {
			if v, err := strconv.ParseUint(line[i+1:i+3], 16, 8); err == nil {
				out = append(out, byte(v))
				i += 2
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// ReadInt prompts until a valid integer is entered. An input stream error
// ends the loop.
func (l *LineReader) ReadInt(prompt string) (int, error) {
	for {
		if prompt != "" {
			fmt.Fprintf(l.out, "%s: ", prompt)
		}
		line, err := l.in.ReadString('\n')
		if err != nil && len(line) == 0 {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return n, nil
		}
		fmt.Fprintln(l.out, "Invalid input, please enter an integer.")
		if err != nil {
			return 0, err
		}
	}
}
