package services

import (
	"context"
	"fmt"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/domain/ports"
)

// ListingService dumps every row of an entity kind.
type ListingService struct {
	store ports.SelectionStore
}

// NewListingService creates a new listing service.
func NewListingService(store ports.SelectionStore) *ListingService {
	return &ListingService{store: store}
}

// Themes returns all themes.
func (s *ListingService) Themes(ctx context.Context) ([]entities.Theme, error) {
	themes, err := s.store.ListThemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing themes: %w", err)
	}
	return themes, nil
}

// Names returns all names.
func (s *ListingService) Names(ctx context.Context) ([]entities.Name, error) {
	names, err := s.store.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing names: %w", err)
	}
	return names, nil
}

// Features returns all features.
func (s *ListingService) Features(ctx context.Context) ([]entities.Feature, error) {
	features, err := s.store.ListFeatures(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing features: %w", err)
	}
	return features, nil
}

// Items returns all items.
func (s *ListingService) Items(ctx context.Context) ([]entities.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// List dispatches on kind and returns the matching slice.
func (s *ListingService) List(ctx context.Context, kind entities.Kind) (any, error) {
	switch kind {
	case entities.KindTheme:
		return s.Themes(ctx)
	case entities.KindName:
		return s.Names(ctx)
	case entities.KindFeature:
		return s.Features(ctx)
	case entities.KindItem:
		return s.Items(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", entities.ErrInvalidArgument, kind)
	}
}
