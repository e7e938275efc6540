//go:build unix

// Package stderr captures output that audio back-ends write straight to file
// descriptor 2, so it cannot corrupt the TUI. Captured lines are handed to a
// sink, normally the log.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start redirects fd 2 into a pipe and calls sink for every non-empty line.
// sink runs on a background goroutine. Starting twice is a no-op. On error
// the program keeps its original stderr.
func Start(sink func(line string)) error {
	mu.Lock()
	defer mu.Unlock()
	if origStderr >= 0 {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		_ = unix.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead = r
	pipeWrite = w
	done = make(chan struct{})

	go forward(r, sink, done)
	return nil
}

func forward(r *os.File, sink func(string), done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && sink != nil {
			sink(line)
		}
	}
}

// WriteOriginal writes to the original stderr, bypassing capture.
// Fatal errors must stay visible while the TUI owns the terminal.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(fd, []byte(msg))
}

// Stop restores the original stderr and waits for captured lines to drain.
func Stop() {
	mu.Lock()
	if origStderr < 0 {
		mu.Unlock()
		return
	}

	_ = unix.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(origStderr)
	origStderr = -1
	pipeWrite.Close()
	wait := done
	mu.Unlock()

	<-wait
	pipeRead.Close()
}
