package mocks

import (
	"context"

	"github.com/ersonp/chargen/internal/domain/entities"
)

// CatalogWriter is a mock implementation of ports.CatalogWriter.
type CatalogWriter struct {
	Err       error
	SchemaErr error

	// Call tracking
	EnsureSchemaCallCount int
	SaveCatalogCallCount  int
	LastCatalog           entities.Catalog
}

// EnsureSchema records the call.
func (m *CatalogWriter) EnsureSchema(_ context.Context) error {
	m.EnsureSchemaCallCount++
	return m.SchemaErr
}

// SaveCatalog records the catalog and reports every row as inserted.
func (m *CatalogWriter) SaveCatalog(_ context.Context, catalog entities.Catalog) (entities.CatalogCounts, error) {
	m.SaveCatalogCallCount++
	m.LastCatalog = catalog
	if m.Err != nil {
		return entities.CatalogCounts{}, m.Err
	}
	return catalog.Counts(), nil
}
