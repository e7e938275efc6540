//go:build !unix

package stderr

import "os"

// Start is a no-op where audio back-ends do not write to fd 2.
func Start(func(line string)) error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op.
func Stop() {}
