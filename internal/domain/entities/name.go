package entities

import (
	"fmt"
	"strings"
)

// Gender is the grammatical gender attached to a Name.
type Gender string

// Built-in genders. GenderAny is only valid as a selection filter and is
// never persisted.
const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeutral   Gender = "neutral"
	GenderAny       Gender = "any"
)

// DefaultGenders are the genders a Name may carry when none are configured.
var DefaultGenders = []Gender{GenderMasculine, GenderFeminine, GenderNeutral}

// Name is a character name.
type Name struct {
	ID        int64  `json:"id" db:"id"`
	Firstname string `json:"firstname" db:"firstname"`
	Lastname  string `json:"lastname" db:"lastname"`
	Gender    Gender `json:"gender" db:"gender"`
}

// FullName joins first and last name, skipping an empty last name.
func (n Name) FullName() string {
	return strings.TrimSpace(n.Firstname + " " + n.Lastname)
}

// GenderSet is the closed set of genders a Name may be stored with.
type GenderSet struct {
	values []Gender
}

// NewGenderSet builds a set from raw values. Values are lowercased and
// trimmed; duplicates are dropped. "any" is rejected since it is a filter,
// not a gender.
func NewGenderSet(values ...string) (GenderSet, error) {
	if len(values) == 0 {
		return GenderSet{}, fmt.Errorf("%w: at least one gender is required", ErrInvalidArgument)
	}

	seen := make(map[Gender]struct{}, len(values))
	set := GenderSet{values: make([]Gender, 0, len(values))}
	for _, v := range values {
		g := NormalizeGender(v)
		if g == "" || g == GenderAny {
			return GenderSet{}, fmt.Errorf("%w: %q", ErrInvalidGender, v)
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		set.values = append(set.values, g)
	}
	return set, nil
}

// DefaultGenderSet returns the set built from DefaultGenders.
func DefaultGenderSet() GenderSet {
	values := make([]Gender, len(DefaultGenders))
	copy(values, DefaultGenders)
	return GenderSet{values: values}
}

// NormalizeGender lowercases and trims a raw gender string.
func NormalizeGender(raw string) Gender {
	return Gender(strings.ToLower(strings.TrimSpace(raw)))
}

// Contains reports whether g is a storable gender of the set.
func (s GenderSet) Contains(g Gender) bool {
	for _, v := range s.values {
		if v == g {
			return true
		}
	}
	return false
}

// Values returns a copy of the genders in declaration order.
func (s GenderSet) Values() []Gender {
	out := make([]Gender, len(s.values))
	copy(out, s.values)
	return out
}

// Empty reports whether the set was never initialised.
func (s GenderSet) Empty() bool {
	return len(s.values) == 0
}

// ValidateFilter checks a gender used to filter a selection. Besides the
// storable genders, GenderAny is accepted.
func (s GenderSet) ValidateFilter(g Gender) error {
	if g == GenderAny || s.Contains(g) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidGender, string(g))
}

// String renders the set for diagnostics.
func (s GenderSet) String() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
