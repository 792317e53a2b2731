package formatter

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_WritesFramesAndClears(t *testing.T) {
	var buf syncBuffer
	stop := StartSpinner(&buf, "Planning day")
	time.Sleep(200 * time.Millisecond)
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, stripANSI(out), "Planning day")
	assert.Contains(t, out, "\r\033[K")
}

func TestStartSpinner_NilWriter(t *testing.T) {
	stop := StartSpinner(nil, "ignored")
	assert.NotPanics(t, stop)
}
