package source

import (
	"encoding/json"
	"fmt"
	"io"
)

func decodeJSON(r io.Reader) (Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Table{}, fmt.Errorf("decode json: %w", err)
	}
	return fromDocument(doc)
}
