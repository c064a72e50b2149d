package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/domain/mocks"
)

// newBrasilStore seeds two masculine names, the given number of positive and
// negative features and items, all in theme "Brasil".
func newBrasilStore(positive, negative, items int) *mocks.SelectionStore {
	store := mocks.NewSelectionStore()
	store.AddName("Joao", "Silva", entities.GenderMasculine, "Brasil")
	store.AddName("Pedro", "Souza", entities.GenderMasculine, "Brasil")
	for i := range positive {
		store.AddFeature("good"+string(rune('a'+i)), true, "Brasil")
	}
	for i := range negative {
		store.AddFeature("bad"+string(rune('a'+i)), false, "Brasil")
	}
	for i := range items {
		store.AddItem("item"+string(rune('a'+i)), "Brasil")
	}
	return store
}

func newObservedService(store *mocks.SelectionStore) (*GenerationService, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return NewGenerationService(store, zap.New(core)), logs
}

func TestGenerationService_Generate_Success(t *testing.T) {
	store := newBrasilStore(5, 3, 3)
	svc, logs := newObservedService(store)

	req := DefaultGenerationRequest()
	req.Themes = entities.ThemesNamed("Brasil")

	outcome, err := svc.Generate(t.Context(), req)
	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Nil(t, outcome.Shortage)

	char := outcome.Character
	assert.Len(t, char.PositiveFeatures, 5)
	assert.Len(t, char.NegativeFeatures, 3)
	assert.Len(t, char.Items, 3)
	for _, f := range char.PositiveFeatures {
		assert.True(t, f.IsGood)
	}
	for _, f := range char.NegativeFeatures {
		assert.False(t, f.IsGood)
	}

	assert.Equal(t, 4, logs.FilterMessage("selection step succeeded").Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestGenerationService_Generate_NameOnly(t *testing.T) {
	store := newBrasilStore(0, 0, 0)
	svc, _ := newObservedService(store)

	outcome, err := svc.Generate(t.Context(), GenerationRequest{
		Gender: entities.GenderMasculine,
		Themes: entities.ThemesNamed("Brasil"),
	})
	require.NoError(t, err)
	require.True(t, outcome.OK())

	char := outcome.Character
	assert.Contains(t, []string{"Joao", "Pedro"}, char.Name.Firstname)
	assert.NotNil(t, char.PositiveFeatures)
	assert.Empty(t, char.PositiveFeatures)
	assert.Empty(t, char.NegativeFeatures)
	assert.Empty(t, char.Items)
}

func TestGenerationService_Generate_NameShortageShortCircuits(t *testing.T) {
	store := newBrasilStore(5, 3, 3)
	svc, logs := newObservedService(store)

	req := DefaultGenerationRequest()
	req.Gender = entities.GenderFeminine

	outcome, err := svc.Generate(t.Context(), req)
	require.NoError(t, err)
	assert.False(t, outcome.OK())
	require.NotNil(t, outcome.Shortage)
	assert.Equal(t, StepName, outcome.Shortage.Step)
	assert.Equal(t, "No name with gender `feminine` and themes `any`", outcome.Shortage.Error())

	assert.Equal(t, 1, store.RandomNameCallCount)
	assert.Zero(t, store.RandomFeaturesCallCount)
	assert.Zero(t, store.RandomItemsCallCount)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, outcome.Shortage.Error(), warnings[0].Message)
	assert.Zero(t, logs.FilterMessage("selection step succeeded").Len())
}

func TestGenerationService_Generate_PositiveShortage(t *testing.T) {
	store := newBrasilStore(2, 3, 3)
	svc, _ := newObservedService(store)

	req := DefaultGenerationRequest()
	req.PositiveFeatures = 5

	outcome, err := svc.Generate(t.Context(), req)
	require.NoError(t, err)
	require.NotNil(t, outcome.Shortage)
	assert.Equal(t, StepPositiveFeatures, outcome.Shortage.Step)
	assert.Contains(t, outcome.Shortage.Error(), "Expected `5`, found `2`")

	// Negative features and items are never attempted.
	assert.Equal(t, 1, store.RandomFeaturesCallCount)
	require.Len(t, store.FeatureCalls, 1)
	assert.True(t, store.FeatureCalls[0].WantGood)
	assert.Zero(t, store.RandomItemsCallCount)
}

func TestGenerationService_Generate_NegativeShortage(t *testing.T) {
	store := newBrasilStore(5, 1, 3)
	svc, _ := newObservedService(store)

	outcome, err := svc.Generate(t.Context(), DefaultGenerationRequest())
	require.NoError(t, err)
	require.NotNil(t, outcome.Shortage)
	assert.Equal(t, StepNegativeFeatures, outcome.Shortage.Step)
	assert.Equal(t, 2, store.RandomFeaturesCallCount)
	assert.Zero(t, store.RandomItemsCallCount)
}

func TestGenerationService_Generate_ItemShortage(t *testing.T) {
	store := newBrasilStore(5, 3, 0)
	svc, _ := newObservedService(store)

	outcome, err := svc.Generate(t.Context(), DefaultGenerationRequest())
	require.NoError(t, err)
	require.NotNil(t, outcome.Shortage)
	assert.Equal(t, StepItems, outcome.Shortage.Step)
	assert.Equal(t, "No items for themes `any`", outcome.Shortage.Error())
}

func TestGenerationService_Generate_NegativeCount(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationRequest)
		field  string
	}{
		{"items", func(r *GenerationRequest) { r.Items = -1 }, "n_items"},
		{"positive", func(r *GenerationRequest) { r.PositiveFeatures = -2 }, "n_positive_features"},
		{"negative", func(r *GenerationRequest) { r.NegativeFeatures = -3 }, "n_negative_features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newBrasilStore(5, 3, 3)
			svc, _ := newObservedService(store)

			req := DefaultGenerationRequest()
			tt.mutate(&req)

			outcome, err := svc.Generate(t.Context(), req)
			require.ErrorIs(t, err, entities.ErrInvalidArgument)
			require.ErrorIs(t, err, entities.ErrNegativeCount)
			assert.Contains(t, err.Error(), tt.field)
			assert.Nil(t, outcome)
			assert.Zero(t, store.TotalRandomCalls())
		})
	}
}

func TestGenerationService_Generate_InvalidGender(t *testing.T) {
	store := newBrasilStore(5, 3, 3)
	svc, _ := newObservedService(store)

	req := DefaultGenerationRequest()
	req.Gender = "robot"

	_, err := svc.Generate(t.Context(), req)
	require.ErrorIs(t, err, entities.ErrInvalidGender)
	assert.Zero(t, store.RandomFeaturesCallCount)
}

func TestGenerationService_Generate_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := newBrasilStore(5, 3, 3)
	store.Err = storeErr
	svc, logs := newObservedService(store)

	outcome, err := svc.Generate(t.Context(), DefaultGenerationRequest())
	require.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, entities.ErrInsufficientData)
	assert.Nil(t, outcome)
	assert.Zero(t, logs.Len())
}

func TestGenerationService_Generate_PassesThemeFilterThrough(t *testing.T) {
	store := newBrasilStore(5, 3, 3)
	svc, _ := newObservedService(store)

	req := DefaultGenerationRequest()
	req.Themes = entities.ThemesNamed()

	outcome, err := svc.Generate(t.Context(), req)
	require.NoError(t, err)
	require.NotNil(t, outcome.Shortage)
	assert.Equal(t, StepName, outcome.Shortage.Step)
	assert.Equal(t, "No name with gender `any` and themes `none`", outcome.Shortage.Error())
}

func TestNewGenerationService_NilLogger(t *testing.T) {
	svc := NewGenerationService(mocks.NewSelectionStore(), nil)
	require.NotNil(t, svc.logger)
}
