package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/domain/mocks"
	"github.com/ersonp/chargen/internal/domain/services"
)

func TestListHandler_Handle(t *testing.T) {
	store := mocks.NewSelectionStore()
	store.AddItem("Facao")
	store.AddItem("Corda")
	handler := NewListHandler(services.NewListingService(store))

	result, err := handler.Handle(context.Background(), "items")
	require.NoError(t, err)

	items, ok := result.([]entities.Item)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestListHandler_Handle_UnknownKind(t *testing.T) {
	handler := NewListHandler(services.NewListingService(mocks.NewSelectionStore()))

	_, err := handler.Handle(context.Background(), "dragons")
	assert.ErrorIs(t, err, entities.ErrInvalidArgument)
}
