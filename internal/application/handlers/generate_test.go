package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/domain/mocks"
	"github.com/ersonp/chargen/internal/domain/services"
)

func intPtr(n int) *int { return &n }

func newGenerateHandler(store *mocks.SelectionStore) *GenerateHandler {
	return NewGenerateHandler(services.NewGenerationService(store, nil), services.DefaultGenerationRequest())
}

func TestGenerateHandler_Request(t *testing.T) {
	handler := newGenerateHandler(mocks.NewSelectionStore())

	t.Run("defaults", func(t *testing.T) {
		req := handler.Request(GenerateInput{})
		assert.Equal(t, services.DefaultGenerationRequest(), req)
		assert.False(t, req.Themes.Active())
	})

	t.Run("explicit values", func(t *testing.T) {
		req := handler.Request(GenerateInput{
			Gender:           " Feminine",
			Themes:           []string{"Brasil"},
			PositiveFeatures: intPtr(0),
			NegativeFeatures: intPtr(1),
			Items:            intPtr(2),
		})
		assert.Equal(t, entities.GenderFeminine, req.Gender)
		assert.Equal(t, []string{"Brasil"}, req.Themes.Names())
		assert.Equal(t, 0, req.PositiveFeatures)
		assert.Equal(t, 1, req.NegativeFeatures)
		assert.Equal(t, 2, req.Items)
	})

	t.Run("empty theme list stays active", func(t *testing.T) {
		req := handler.Request(GenerateInput{Themes: []string{}})
		assert.True(t, req.Themes.MatchesNothing())
	})
}

func TestGenerateHandler_Handle(t *testing.T) {
	store := mocks.NewSelectionStore()
	store.AddName("Joao", "Silva", entities.GenderMasculine, "Brasil")
	store.AddFeature("Corajoso", true, "Brasil")
	store.AddFeature("Teimoso", false, "Brasil")
	store.AddItem("Facao", "Brasil")
	handler := newGenerateHandler(store)

	outcome, err := handler.Handle(context.Background(), GenerateInput{
		Gender:           "masculine",
		Themes:           []string{"Brasil"},
		PositiveFeatures: intPtr(1),
		NegativeFeatures: intPtr(1),
		Items:            intPtr(1),
	})

	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Equal(t, "Joao Silva", outcome.Character.Name.FullName())
}

func TestGenerateHandler_Handle_Shortage(t *testing.T) {
	store := mocks.NewSelectionStore()
	store.AddName("Joao", "Silva", entities.GenderMasculine)
	handler := newGenerateHandler(store)

	outcome, err := handler.Handle(context.Background(), GenerateInput{})

	require.NoError(t, err)
	require.NotNil(t, outcome.Shortage)
	assert.Equal(t, services.StepPositiveFeatures, outcome.Shortage.Step)
}

func TestGenerateHandler_Handle_Errors(t *testing.T) {
	t.Run("invalid argument", func(t *testing.T) {
		handler := newGenerateHandler(mocks.NewSelectionStore())
		_, err := handler.Handle(context.Background(), GenerateInput{Items: intPtr(-1)})
		assert.ErrorIs(t, err, entities.ErrNegativeCount)
	})

	t.Run("invalid gender", func(t *testing.T) {
		handler := newGenerateHandler(mocks.NewSelectionStore())
		_, err := handler.Handle(context.Background(), GenerateInput{Gender: "robot"})
		assert.ErrorIs(t, err, entities.ErrInvalidGender)
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewSelectionStore()
		store.Err = errors.New("connection refused")
		handler := newGenerateHandler(store)

		_, err := handler.Handle(context.Background(), GenerateInput{})
		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrInvalidArgument)
	})
}
