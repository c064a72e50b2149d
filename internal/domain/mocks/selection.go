// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"math/rand/v2"

	"github.com/ersonp/chargen/internal/domain/entities"
)

// SelectionStore is an in-memory implementation of ports.SelectionStore.
// Theme links are keyed by entity ID.
type SelectionStore struct {
	Themes   []entities.Theme
	Names    []entities.Name
	Features []entities.Feature
	Items    []entities.Item

	NameThemes    map[int64][]string
	FeatureThemes map[int64][]string
	ItemThemes    map[int64][]string

	Genders entities.GenderSet
	Err     error

	// Call tracking
	RandomNameCallCount     int
	RandomFeaturesCallCount int
	RandomItemsCallCount    int
	ListCallCount           int
	FeatureCalls            []FeatureCall
}

// FeatureCall records the arguments of one RandomFeatures call.
type FeatureCall struct {
	Count    int
	WantGood bool
	Themes   entities.ThemeFilter
}

// NewSelectionStore creates an empty mock store using the default genders.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{
		NameThemes:    make(map[int64][]string),
		FeatureThemes: make(map[int64][]string),
		ItemThemes:    make(map[int64][]string),
		Genders:       entities.DefaultGenderSet(),
	}
}

// AddName appends a name linked to the given themes. IDs are assigned in
// insertion order.
func (m *SelectionStore) AddName(firstname, lastname string, gender entities.Gender, themes ...string) entities.Name {
	n := entities.Name{ID: int64(len(m.Names) + 1), Firstname: firstname, Lastname: lastname, Gender: gender}
	m.Names = append(m.Names, n)
	m.NameThemes[n.ID] = themes
	return n
}

// AddFeature appends a feature linked to the given themes.
func (m *SelectionStore) AddFeature(text string, isGood bool, themes ...string) entities.Feature {
	f := entities.Feature{ID: int64(len(m.Features) + 1), TextMasc: text, TextFem: text, IsGood: isGood}
	m.Features = append(m.Features, f)
	m.FeatureThemes[f.ID] = themes
	return f
}

// AddItem appends an item linked to the given themes.
func (m *SelectionStore) AddItem(name string, themes ...string) entities.Item {
	i := entities.Item{ID: int64(len(m.Items) + 1), Name: name}
	m.Items = append(m.Items, i)
	m.ItemThemes[i.ID] = themes
	return i
}

// RandomFeatures returns up to count shuffled features matching the filter.
func (m *SelectionStore) RandomFeatures(_ context.Context, count int, wantGood bool, themes entities.ThemeFilter) ([]entities.Feature, error) {
	m.RandomFeaturesCallCount++
	m.FeatureCalls = append(m.FeatureCalls, FeatureCall{Count: count, WantGood: wantGood, Themes: themes})
	if count < 0 {
		return nil, entities.ErrNegativeCount
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var matched []entities.Feature
	for _, f := range m.Features {
		if f.IsGood == wantGood && matchThemes(themes, m.FeatureThemes[f.ID]) {
			matched = append(matched, f)
		}
	}
	return sample(matched, count), nil
}

// RandomItems returns up to count shuffled items matching the filter.
func (m *SelectionStore) RandomItems(_ context.Context, count int, themes entities.ThemeFilter) ([]entities.Item, error) {
	m.RandomItemsCallCount++
	if count < 0 {
		return nil, entities.ErrNegativeCount
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var matched []entities.Item
	for _, i := range m.Items {
		if matchThemes(themes, m.ItemThemes[i.ID]) {
			matched = append(matched, i)
		}
	}
	return sample(matched, count), nil
}

// RandomName returns one random name matching gender and themes, or nil.
func (m *SelectionStore) RandomName(_ context.Context, gender entities.Gender, themes entities.ThemeFilter) (*entities.Name, error) {
	m.RandomNameCallCount++
	if err := m.Genders.ValidateFilter(gender); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var matched []entities.Name
	for _, n := range m.Names {
		if gender != entities.GenderAny && n.Gender != gender {
			continue
		}
		if matchThemes(themes, m.NameThemes[n.ID]) {
			matched = append(matched, n)
		}
	}
	picked := sample(matched, 1)
	if len(picked) == 0 {
		return nil, nil
	}
	return &picked[0], nil
}

// ListThemes returns all themes.
func (m *SelectionStore) ListThemes(_ context.Context) ([]entities.Theme, error) {
	m.ListCallCount++
	return m.Themes, m.Err
}

// ListNames returns all names.
func (m *SelectionStore) ListNames(_ context.Context) ([]entities.Name, error) {
	m.ListCallCount++
	return m.Names, m.Err
}

// ListFeatures returns all features.
func (m *SelectionStore) ListFeatures(_ context.Context) ([]entities.Feature, error) {
	m.ListCallCount++
	return m.Features, m.Err
}

// ListItems returns all items.
func (m *SelectionStore) ListItems(_ context.Context) ([]entities.Item, error) {
	m.ListCallCount++
	return m.Items, m.Err
}

// TotalRandomCalls returns the number of random selection calls made.
func (m *SelectionStore) TotalRandomCalls() int {
	return m.RandomNameCallCount + m.RandomFeaturesCallCount + m.RandomItemsCallCount
}

func matchThemes(filter entities.ThemeFilter, linked []string) bool {
	if !filter.Active() {
		return true
	}
	for _, want := range filter.Names() {
		for _, have := range linked {
			if want == have {
				return true
			}
		}
	}
	return false
}

func sample[T any](rows []T, count int) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count < len(out) {
		out = out[:count]
	}
	return out
}
