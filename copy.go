package arraytex

import "fmt"

// Copier receives rendered markup, typically to place it on the system
// clipboard. It never changes what the render call returns.
type Copier interface {
	Copy(s string) error
}

// CopierFunc adapts a function to [Copier].
type CopierFunc func(s string) error

// Copy calls f(s).
func (f CopierFunc) Copy(s string) error { return f(s) }

// deliver passes out to the configured copier. On failure the rendered
// markup is still returned alongside the error.
func deliver(out string, cfg Config) (string, error) {
	if cfg.copier == nil {
		return out, nil
	}
	if err := cfg.copier.Copy(out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrCopy, err)
	}
	return out, nil
}
