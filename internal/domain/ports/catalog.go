package ports

import (
	"context"

	"github.com/ersonp/chargen/internal/domain/entities"
)

// CatalogWriter populates the store. It is used only by the import path;
// selection never writes.
type CatalogWriter interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// SaveCatalog inserts all rows of the catalog in one transaction.
	// Rows that already exist are left untouched and not counted.
	SaveCatalog(ctx context.Context, catalog entities.Catalog) (entities.CatalogCounts, error)
}
