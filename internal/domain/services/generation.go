package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/domain/ports"
)

// Default quantities for a generation request.
const (
	DefaultPositiveFeatures = 5
	DefaultNegativeFeatures = 3
	DefaultItems            = 3
)

// GenerationRequest parametrizes one character generation.
type GenerationRequest struct {
	Gender           entities.Gender
	Themes           entities.ThemeFilter
	PositiveFeatures int
	NegativeFeatures int
	Items            int
}

// DefaultGenerationRequest returns a request for any gender, no theme filter
// and the default quantities.
func DefaultGenerationRequest() GenerationRequest {
	return GenerationRequest{
		Gender:           entities.GenderAny,
		Themes:           entities.AnyTheme(),
		PositiveFeatures: DefaultPositiveFeatures,
		NegativeFeatures: DefaultNegativeFeatures,
		Items:            DefaultItems,
	}
}

// Validate checks the requested quantities.
func (r GenerationRequest) Validate() error {
	counts := []struct {
		field string
		value int
	}{
		{"n_positive_features", r.PositiveFeatures},
		{"n_negative_features", r.NegativeFeatures},
		{"n_items", r.Items},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: %s is %d", entities.ErrNegativeCount, c.field, c.value)
		}
	}
	return nil
}

// GenerationOutcome is either a generated character or a shortage, never both.
type GenerationOutcome struct {
	Character *entities.GeneratedCharacter
	Shortage  *Shortage
}

// OK reports whether a character was generated.
func (o *GenerationOutcome) OK() bool {
	return o != nil && o.Character != nil
}

// GenerationService composes random selections into a character.
type GenerationService struct {
	store  ports.SelectionStore
	logger *zap.Logger
}

// NewGenerationService creates a new generation service.
func NewGenerationService(store ports.SelectionStore, logger *zap.Logger) *GenerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerationService{
		store:  store,
		logger: logger,
	}
}

// Generate runs name, positive features, negative features and items
// selection in that order. The first shortage stops the pipeline and is
// returned in the outcome; later selections are not attempted. The error
// return is reserved for invalid arguments and store failures.
func (s *GenerationService) Generate(ctx context.Context, req GenerationRequest) (*GenerationOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name, err := s.store.RandomName(ctx, req.Gender, req.Themes)
	if err != nil {
		return nil, fmt.Errorf("selecting name: %w", err)
	}
	if shortage := CheckName(req.Gender, req.Themes, name); shortage != nil {
		return s.abort(shortage), nil
	}
	s.stepDone(StepName, req.Themes, 1)

	positive, err := s.store.RandomFeatures(ctx, req.PositiveFeatures, true, req.Themes)
	if err != nil {
		return nil, fmt.Errorf("selecting positive features: %w", err)
	}
	if shortage := CheckQuantity(StepPositiveFeatures, req.Themes, req.PositiveFeatures, len(positive)); shortage != nil {
		return s.abort(shortage), nil
	}
	s.stepDone(StepPositiveFeatures, req.Themes, len(positive))

	negative, err := s.store.RandomFeatures(ctx, req.NegativeFeatures, false, req.Themes)
	if err != nil {
		return nil, fmt.Errorf("selecting negative features: %w", err)
	}
	if shortage := CheckQuantity(StepNegativeFeatures, req.Themes, req.NegativeFeatures, len(negative)); shortage != nil {
		return s.abort(shortage), nil
	}
	s.stepDone(StepNegativeFeatures, req.Themes, len(negative))

	items, err := s.store.RandomItems(ctx, req.Items, req.Themes)
	if err != nil {
		return nil, fmt.Errorf("selecting items: %w", err)
	}
	if shortage := CheckQuantity(StepItems, req.Themes, req.Items, len(items)); shortage != nil {
		return s.abort(shortage), nil
	}
	s.stepDone(StepItems, req.Themes, len(items))

	return &GenerationOutcome{
		Character: &entities.GeneratedCharacter{
			Name:             *name,
			PositiveFeatures: nonNil(positive),
			NegativeFeatures: nonNil(negative),
			Items:            nonNil(items),
		},
	}, nil
}

func (s *GenerationService) abort(shortage *Shortage) *GenerationOutcome {
	s.logger.Warn(shortage.Error(),
		zap.Stringer("step", shortage.Step),
		zap.Stringer("themes", shortage.Themes),
		zap.Int("requested", shortage.Requested),
		zap.Int("received", shortage.Received),
	)
	return &GenerationOutcome{Shortage: shortage}
}

func (s *GenerationService) stepDone(step Step, themes entities.ThemeFilter, received int) {
	s.logger.Info("selection step succeeded",
		zap.Stringer("step", step),
		zap.Stringer("themes", themes),
		zap.Int("received", received),
	)
}

// nonNil keeps empty selections encoded as [] rather than null.
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
