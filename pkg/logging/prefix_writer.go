package logging

import (
	"bytes"
	"io"
)

// PrefixWriter prepends a prefix to every line written through it. Partial
// lines are held back until their newline arrives, so a prefix never lands
// mid-line.
type PrefixWriter struct {
	prefix  string
	dst     io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter wraps w so each complete line gets prefix prepended.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: prefix, dst: w}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending.Write(p)

	for {
		idx := bytes.IndexByte(pw.pending.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := pw.pending.Next(idx + 1)
		if _, err := io.WriteString(pw.dst, pw.prefix); err != nil {
			return 0, err
		}
		if _, err := pw.dst.Write(line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
