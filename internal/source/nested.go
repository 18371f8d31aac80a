package source

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/bjaus/arraytex"
)

// fromDocument converts a decoded JSON or YAML document into a Table.
func fromDocument(doc any) (Table, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		a, err := fromNested(doc)
		return Table{Array: a}, err
	}

	for key := range m {
		switch key {
		case "data", "columns", "index":
		default:
			return Table{}, fmt.Errorf("unknown key %q, expected data, columns or index", key)
		}
	}
	data, ok := m["data"]
	if !ok {
		return Table{}, fmt.Errorf("missing key %q", "data")
	}
	a, err := fromNested(data)
	if err != nil {
		return Table{}, err
	}
	t := Table{Array: a}
	if t.Columns, err = labels(m, "columns"); err != nil {
		return Table{}, err
	}
	if t.Index, err = labels(m, "index"); err != nil {
		return Table{}, err
	}
	return t, nil
}

func labels(m map[string]any, key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list, got %T", key, v)
	}
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = fmt.Sprint(item)
	}
	return out, nil
}

// fromNested converts nested lists of numbers into an array. The shape is
// taken from the first element at each depth; every other list must match.
func fromNested(v any) (arraytex.Array, error) {
	var shape []int
	for cur := v; ; {
		list, ok := cur.([]any)
		if !ok {
			break
		}
		shape = append(shape, len(list))
		if len(list) == 0 {
			break
		}
		cur = list[0]
	}

	b := builder{shape: shape, allInt: true}
	if err := b.walk(v, 0, "$"); err != nil {
		return arraytex.Array{}, err
	}
	if b.allInt {
		return arraytex.New(shape, b.ints)
	}
	return arraytex.New(shape, b.floats)
}

type builder struct {
	shape  []int
	ints   []int64
	floats []float64
	allInt bool
}

func (b *builder) walk(v any, depth int, path string) error {
	if list, ok := v.([]any); ok {
		if depth >= len(b.shape) || len(list) != b.shape[depth] {
			return fmt.Errorf("%w: %s does not match shape %v", arraytex.ErrRagged, path, b.shape)
		}
		for i, item := range list {
			if err := b.walk(item, depth+1, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	if depth != len(b.shape) {
		return fmt.Errorf("%w: %s does not match shape %v", arraytex.ErrRagged, path, b.shape)
	}
	return b.add(v, path)
}

func (b *builder) add(v any, path string) error {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			b.addInt(i)
			return nil
		}
		f, err := x.Float64()
		if err != nil {
			return fmt.Errorf("%w: %s: %q", ErrNotNumeric, path, x.String())
		}
		b.addFloat(f)
	case int:
		b.addInt(int64(x))
	case int64:
		b.addInt(x)
	case uint64:
		if x > math.MaxInt64 {
			b.addFloat(float64(x))
			return nil
		}
		b.addInt(int64(x))
	case float64:
		b.addFloat(x)
	default:
		return fmt.Errorf("%w: %s: %v (%T)", ErrNotNumeric, path, v, v)
	}
	return nil
}

func (b *builder) addInt(i int64) {
	b.ints = append(b.ints, i)
	b.floats = append(b.floats, float64(i))
}

func (b *builder) addFloat(f float64) {
	b.allInt = false
	b.ints = append(b.ints, 0)
	b.floats = append(b.floats, f)
}
