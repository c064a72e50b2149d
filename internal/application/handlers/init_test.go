package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/chargen/internal/domain/mocks"
)

func TestEnsureConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chargen.yaml")

	result, err := EnsureConfig(path)
	require.NoError(t, err)
	assert.True(t, result.ConfigCreated)
	assert.Equal(t, path, result.ConfigPath)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0644))

	result, err = EnsureConfig(path)
	require.NoError(t, err)
	assert.False(t, result.ConfigCreated)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log:\n  level: debug\n", string(data))
}

func TestInitHandler_Handle(t *testing.T) {
	writer := &mocks.CatalogWriter{}
	handler := NewInitHandler(writer)

	require.NoError(t, handler.Handle(context.Background()))
	assert.Equal(t, 1, writer.EnsureSchemaCallCount)
}

func TestInitHandler_Handle_SchemaError(t *testing.T) {
	writer := &mocks.CatalogWriter{SchemaErr: errors.New("read-only file system")}
	handler := NewInitHandler(writer)

	err := handler.Handle(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initializing database")
}
