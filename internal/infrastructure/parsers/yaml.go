package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses seed catalogs from YAML format.
type YAMLParser struct{}

// Parse reads a YAML document from the reader and returns the raw catalog.
// An empty document yields an empty catalog.
func (p *YAMLParser) Parse(r io.Reader) (*RawCatalog, error) {
	var catalog RawCatalog

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	catalog.setIndexes()
	return &catalog, nil
}
