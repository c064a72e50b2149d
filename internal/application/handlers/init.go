// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/chargen/internal/domain/ports"
	"github.com/ersonp/chargen/internal/infrastructure/config"
)

// InitHandler handles database initialization.
type InitHandler struct {
	writer ports.CatalogWriter
}

// NewInitHandler creates a new init handler.
func NewInitHandler(writer ports.CatalogWriter) *InitHandler {
	return &InitHandler{
		writer: writer,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath    string
	ConfigCreated bool
}

// EnsureConfig writes the default config file at path unless one exists.
func EnsureConfig(path string) (*InitResult, error) {
	result := &InitResult{ConfigPath: path}
	if config.Exists(path) {
		return result, nil
	}

	if err := config.WriteDefault(path); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}
	result.ConfigCreated = true
	return result, nil
}

// Handle creates the database schema. It is safe to run repeatedly.
func (h *InitHandler) Handle(ctx context.Context) error {
	if err := h.writer.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	return nil
}
