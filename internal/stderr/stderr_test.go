//go:build unix

package stderr

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureForwardsLines(t *testing.T) {
	var (
		mu    sync.Mutex
		lines []string
	)
	require.NoError(t, Start(func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
	}))
	require.NoError(t, Start(nil), "second start is a no-op")

	_, err := os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n  \nsecond line\n")
	require.NoError(t, err)
	Stop()
	Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"ALSA lib pcm.c: underrun", "second line"}, lines)
}
