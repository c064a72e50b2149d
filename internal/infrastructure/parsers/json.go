package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses seed catalogs from JSON format.
type JSONParser struct{}

// Parse reads a JSON document from the reader and returns the raw catalog.
func (p *JSONParser) Parse(r io.Reader) (*RawCatalog, error) {
	var catalog RawCatalog

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	catalog.setIndexes()
	return &catalog, nil
}
