// Package clipboard adapts the system clipboard to arraytex.Copier.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unavailable")

// System writes to the operating system clipboard.
type System struct{}

// Copy places s on the clipboard.
func (System) Copy(s string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	if err := sysclip.WriteAll(s); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Recorder keeps every copied string in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	copies []string
}

// Copy records s.
func (r *Recorder) Copy(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.copies = append(r.copies, s)
	return nil
}

// Copies returns everything recorded so far.
func (r *Recorder) Copies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.copies))
	copy(out, r.copies)
	return out
}
