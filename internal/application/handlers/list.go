package handlers

import (
	"context"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/domain/services"
)

// ListHandler handles listing of stored entities.
type ListHandler struct {
	service *services.ListingService
}

// NewListHandler creates a new list handler.
func NewListHandler(service *services.ListingService) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// Handle returns every stored entity of the named kind.
func (h *ListHandler) Handle(ctx context.Context, kind string) (any, error) {
	k, err := entities.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return h.service.List(ctx, k)
}
