// Package parsers provides parsers for importing seed catalogs from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawCatalog is a seed document parsed from an external source before
// validation. Theme references are by name and must appear in Themes.
type RawCatalog struct {
	Themes   []string     `json:"themes" yaml:"themes"`
	Names    []RawName    `json:"names" yaml:"names"`
	Features []RawFeature `json:"features" yaml:"features"`
	Items    []RawItem    `json:"items" yaml:"items"`
}

// RawName is a name record as found in the seed document.
type RawName struct {
	Firstname string   `json:"firstname" yaml:"firstname"`
	Lastname  string   `json:"lastname" yaml:"lastname"`
	Gender    string   `json:"gender" yaml:"gender"`
	Themes    []string `json:"themes" yaml:"themes"`
	Index     int      `json:"-" yaml:"-"` // Position in its section (set by parser)
}

// RawFeature is a feature record as found in the seed document.
type RawFeature struct {
	TextMasc    string   `json:"text_masc" yaml:"text_masc"`
	TextFem     string   `json:"text_fem" yaml:"text_fem"`
	Description string   `json:"description" yaml:"description"`
	IsGood      *bool    `json:"is_good" yaml:"is_good"` // Pointer to distinguish false from unset
	Themes      []string `json:"themes" yaml:"themes"`
	Index       int      `json:"-" yaml:"-"`
}

// RawItem is an item record as found in the seed document.
type RawItem struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Themes      []string `json:"themes" yaml:"themes"`
	Index       int      `json:"-" yaml:"-"`
}

// Parser defines the interface for parsing seed catalogs.
type Parser interface {
	Parse(r io.Reader) (*RawCatalog, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml" (or "yml").
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".yaml", ".yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// setIndexes numbers records within each section, 1-indexed.
func (c *RawCatalog) setIndexes() {
	for i := range c.Names {
		c.Names[i].Index = i + 1
	}
	for i := range c.Features {
		c.Features[i].Index = i + 1
	}
	for i := range c.Items {
		c.Items[i].Index = i + 1
	}
}
