package report

import (
	"io"
	"os"
	"sync"
)

// Console is a Sink that writes blocks to a single writer under mutual
// exclusion.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

var _ Sink = (*Console)(nil)

// NewConsole creates a console sink writing to w.
// A nil writer defaults to os.Stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// Emit writes the whole block inside one critical section.
func (c *Console) Emit(block string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.w, block)
	return err
}
