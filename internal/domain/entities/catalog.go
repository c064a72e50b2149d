package entities

// Catalog is a validated batch of rows ready to be written by an import.
// Theme references are by name.
type Catalog struct {
	Themes   []string
	Names    []NameEntry
	Features []FeatureEntry
	Items    []ItemEntry
}

// NameEntry is a Name with the themes it belongs to.
type NameEntry struct {
	Name   Name
	Themes []string
}

// FeatureEntry is a Feature with the themes it belongs to.
type FeatureEntry struct {
	Feature Feature
	Themes  []string
}

// ItemEntry is an Item with the themes it belongs to.
type ItemEntry struct {
	Item   Item
	Themes []string
}

// CatalogCounts holds per-kind row counts.
type CatalogCounts struct {
	Themes   int `json:"themes"`
	Names    int `json:"names"`
	Features int `json:"features"`
	Items    int `json:"items"`
	Links    int `json:"links"`
}

// Total sums entity rows, excluding links.
func (c CatalogCounts) Total() int {
	return c.Themes + c.Names + c.Features + c.Items
}

// Counts returns the number of records of each kind in the catalog.
func (c Catalog) Counts() CatalogCounts {
	counts := CatalogCounts{
		Themes:   len(c.Themes),
		Names:    len(c.Names),
		Features: len(c.Features),
		Items:    len(c.Items),
	}
	for _, n := range c.Names {
		counts.Links += len(n.Themes)
	}
	for _, f := range c.Features {
		counts.Links += len(f.Themes)
	}
	for _, i := range c.Items {
		counts.Links += len(i.Themes)
	}
	return counts
}
