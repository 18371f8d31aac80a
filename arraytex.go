package arraytex

import (
	"fmt"
	"io"
)

// Env names a LaTeX output environment.
type Env string

const (
	EnvMatrix  Env = "matrix"
	EnvTabular Env = "tabular"
)

var envs = []Env{EnvMatrix, EnvTabular}

// String returns the environment name.
func (e Env) String() string { return string(e) }

// Envs returns all supported environments.
func Envs() []Env {
	out := make([]Env, len(envs))
	copy(out, envs)
	return out
}

// ParseEnv parses an environment name such as a CLI flag value.
func ParseEnv(s string) (Env, error) {
	for _, e := range envs {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEnv, s)
}

// Marshal renders a in environment e and returns the markup.
func Marshal(e Env, a Array, opts ...Option) ([]byte, error) {
	var (
		out string
		err error
	)
	switch e {
	case EnvMatrix:
		out, err = ToMatrix(a, opts...)
	case EnvTabular:
		out, err = ToTabular(a, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEnv, e)
	}
	if out == "" {
		return nil, err
	}
	return []byte(out), err
}

// Write renders a in environment e and writes the markup followed by a
// newline to w. Nothing is written when rendering fails; a copier failure is
// returned after the markup has been written.
func Write(w io.Writer, e Env, a Array, opts ...Option) error {
	data, err := Marshal(e, a, opts...)
	if data == nil {
		return err
	}
	if _, werr := w.Write(append(data, '\n')); werr != nil {
		return werr
	}
	return err
}
