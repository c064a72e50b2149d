// Package entities contains core domain data structures.
package entities

// Theme is a named tag used to scope selection to a thematic subset.
type Theme struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Feature is a personality trait. TextMasc and TextFem hold the gendered
// renderings of the same trait.
type Feature struct {
	ID          int64  `json:"id" db:"id"`
	TextMasc    string `json:"text_masc" db:"text_masc"`
	TextFem     string `json:"text_fem" db:"text_fem"`
	Description string `json:"description" db:"description"`
	IsGood      bool   `json:"is_good" db:"is_good"`
}

// Item is a piece of equipment a character can carry.
type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// GeneratedCharacter is the assembled result of one generation run.
type GeneratedCharacter struct {
	Name             Name      `json:"name"`
	PositiveFeatures []Feature `json:"positive_features"`
	NegativeFeatures []Feature `json:"negative_features"`
	Items            []Item    `json:"items"`
}
