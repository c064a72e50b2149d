package handlers

import (
	"context"
	"errors"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/domain/services"
	"github.com/ersonp/chargen/internal/infrastructure/metrics"
)

// GenerateInput is a generation request as received from a caller. Nil
// fields fall back to the handler defaults; a nil Themes slice means no
// theme filter while an empty one matches nothing.
type GenerateInput struct {
	Gender           string
	Themes           []string
	PositiveFeatures *int
	NegativeFeatures *int
	Items            *int
}

// GenerateHandler handles character generation.
type GenerateHandler struct {
	service  *services.GenerationService
	defaults services.GenerationRequest
}

// NewGenerateHandler creates a new generate handler. Quantities missing from
// an input are taken from defaults.
func NewGenerateHandler(service *services.GenerationService, defaults services.GenerationRequest) *GenerateHandler {
	return &GenerateHandler{
		service:  service,
		defaults: defaults,
	}
}

// Request resolves an input against the handler defaults.
func (h *GenerateHandler) Request(in GenerateInput) services.GenerationRequest {
	req := h.defaults
	req.Gender = entities.GenderAny
	if in.Gender != "" {
		req.Gender = entities.NormalizeGender(in.Gender)
	}
	req.Themes = entities.ThemeFilterFrom(in.Themes)
	if in.PositiveFeatures != nil {
		req.PositiveFeatures = *in.PositiveFeatures
	}
	if in.NegativeFeatures != nil {
		req.NegativeFeatures = *in.NegativeFeatures
	}
	if in.Items != nil {
		req.Items = *in.Items
	}
	return req
}

// Handle generates a character and records the outcome.
func (h *GenerateHandler) Handle(ctx context.Context, in GenerateInput) (*services.GenerationOutcome, error) {
	outcome, err := h.service.Generate(ctx, h.Request(in))
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		metrics.RecordGeneration(metrics.OutcomeInvalid)
		return nil, err
	case err != nil:
		metrics.RecordGeneration(metrics.OutcomeError)
		return nil, err
	case outcome.Shortage != nil:
		metrics.RecordGeneration(metrics.OutcomeShortage)
		metrics.RecordShortage(outcome.Shortage.Step.String())
	default:
		metrics.RecordGeneration(metrics.OutcomeGenerated)
	}
	return outcome, nil
}
