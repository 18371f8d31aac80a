package source

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func decodeYAML(r io.Reader) (Table, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Table{}, fmt.Errorf("decode yaml: %w", err)
	}
	return fromDocument(doc)
}
