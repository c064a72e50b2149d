package ports

import (
	"context"

	"github.com/ersonp/chargen/internal/domain/entities"
)

// SelectionStore is the read-only random-query capability backing
// generation and listing.
//
// Random methods return rows in an order chosen by the store; each call is an
// independent draw. They return fewer rows than requested only when fewer
// rows satisfy the filter.
type SelectionStore interface {
	// RandomFeatures returns up to count features of the given polarity.
	// A negative count fails with entities.ErrNegativeCount.
	RandomFeatures(ctx context.Context, count int, wantGood bool, themes entities.ThemeFilter) ([]entities.Feature, error)

	// RandomItems returns up to count items.
	// A negative count fails with entities.ErrNegativeCount.
	RandomItems(ctx context.Context, count int, themes entities.ThemeFilter) ([]entities.Item, error)

	// RandomName returns one matching name, or nil when none match.
	// A gender outside the configured set (other than "any") fails with
	// entities.ErrInvalidGender.
	RandomName(ctx context.Context, gender entities.Gender, themes entities.ThemeFilter) (*entities.Name, error)

	// ListThemes returns every theme.
	ListThemes(ctx context.Context) ([]entities.Theme, error)

	// ListNames returns every name.
	ListNames(ctx context.Context) ([]entities.Name, error)

	// ListFeatures returns every feature.
	ListFeatures(ctx context.Context) ([]entities.Feature, error)

	// ListItems returns every item.
	ListItems(ctx context.Context) ([]entities.Item, error)
}
