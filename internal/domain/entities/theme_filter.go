package entities

import "strings"

// ThemeFilter restricts a selection to rows linked to at least one of the
// named themes.
//
// The zero value means "no filter". A filter built with ThemesNamed and no
// names is active but matches nothing; the two are deliberately distinct.
type ThemeFilter struct {
	names  []string
	active bool
}

// AnyTheme returns the filter that applies no theme restriction.
func AnyTheme() ThemeFilter {
	return ThemeFilter{}
}

// ThemesNamed returns an active filter over the given theme names.
func ThemesNamed(names ...string) ThemeFilter {
	cp := make([]string, len(names))
	copy(cp, names)
	return ThemeFilter{names: cp, active: true}
}

// ThemeFilterFrom maps an optional list to a filter: nil means no filter,
// a non-nil (possibly empty) slice means an active filter.
func ThemeFilterFrom(names []string) ThemeFilter {
	if names == nil {
		return AnyTheme()
	}
	return ThemesNamed(names...)
}

// Active reports whether the filter restricts the selection at all.
func (f ThemeFilter) Active() bool {
	return f.active
}

// MatchesNothing reports whether the filter is active with no names, in
// which case no row can satisfy it.
func (f ThemeFilter) MatchesNothing() bool {
	return f.active && len(f.names) == 0
}

// Names returns a copy of the theme names.
func (f ThemeFilter) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// String renders the filter for diagnostics.
func (f ThemeFilter) String() string {
	switch {
	case !f.active:
		return "any"
	case len(f.names) == 0:
		return "none"
	default:
		return strings.Join(f.names, ", ")
	}
}
