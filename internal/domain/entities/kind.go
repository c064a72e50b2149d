package entities

import "fmt"

// Kind names a listable entity type.
type Kind string

// Entity kinds exposed by listing.
const (
	KindTheme   Kind = "themes"
	KindName    Kind = "names"
	KindFeature Kind = "features"
	KindItem    Kind = "items"
)

// Kinds lists every listable kind.
var Kinds = []Kind{KindTheme, KindName, KindFeature, KindItem}

// ParseKind maps a raw string to a Kind.
func ParseKind(raw string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown kind %q (valid: themes, names, features, items)", ErrInvalidArgument, raw)
}
