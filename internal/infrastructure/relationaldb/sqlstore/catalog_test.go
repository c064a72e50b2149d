package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/chargen/internal/domain/entities"
)

func TestRepository_SaveCatalog(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	counts, err := repo.SaveCatalog(ctx, seedCatalog())
	require.NoError(t, err)
	assert.Equal(t, entities.CatalogCounts{Themes: 3, Names: 4, Features: 5, Items: 3, Links: 11}, counts)

	t.Run("second import inserts nothing", func(t *testing.T) {
		counts, err := repo.SaveCatalog(ctx, seedCatalog())
		require.NoError(t, err)
		assert.Equal(t, entities.CatalogCounts{}, counts)
	})

	t.Run("new links on existing rows are added", func(t *testing.T) {
		counts, err := repo.SaveCatalog(ctx, entities.Catalog{
			Items: []entities.ItemEntry{{Item: entities.Item{Name: "Lanterna"}, Themes: []string{"Vazio"}}},
		})
		require.NoError(t, err)
		assert.Equal(t, entities.CatalogCounts{Links: 1}, counts)

		items, err := repo.RandomItems(ctx, 5, entities.ThemesNamed("Vazio"))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Lanterna", items[0].Name)
	})

	t.Run("unknown theme is not linked", func(t *testing.T) {
		counts, err := repo.SaveCatalog(ctx, entities.Catalog{
			Items: []entities.ItemEntry{{Item: entities.Item{Name: "Bussola"}, Themes: []string{"Marte"}}},
		})
		require.NoError(t, err)
		assert.Equal(t, entities.CatalogCounts{Items: 1}, counts)
	})
}

func TestRepository_SaveCatalog_RollsBackOnConstraintViolation(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.SaveCatalog(ctx, entities.Catalog{
		Themes: []string{"Brasil"},
		Names: []entities.NameEntry{
			{Name: entities.Name{Firstname: "Robo", Gender: "robot"}},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving name")

	themes, err := repo.ListThemes(ctx)
	require.NoError(t, err)
	assert.Empty(t, themes)
}

func TestRepository_SaveCatalog_RestrictedGenders(t *testing.T) {
	genders, err := entities.NewGenderSet("masculine", "feminine")
	require.NoError(t, err)

	repo, err := NewRepository(configMemory(), genders)
	require.NoError(t, err)
	defer repo.Close()
	require.NoError(t, repo.EnsureSchema(context.Background()))

	_, err = repo.SaveCatalog(context.Background(), entities.Catalog{
		Names: []entities.NameEntry{{Name: entities.Name{Firstname: "Alex", Gender: entities.GenderNeutral}}},
	})
	assert.Error(t, err)

	_, err = repo.RandomName(context.Background(), entities.GenderNeutral, entities.AnyTheme())
	assert.ErrorIs(t, err, entities.ErrInvalidGender)
}

func TestRepository_SaveCatalog_Uniqueness(t *testing.T) {
	alex := entities.Name{Firstname: "Alex", Lastname: "Silva", Gender: entities.GenderMasculine}
	leal := entities.Feature{TextMasc: "Leal", TextFem: "Leal", IsGood: true}

	tests := []struct {
		name      string
		duplicate entities.Catalog
		listLen   func(t *testing.T, repo *Repository) int
	}{
		{
			name: "same full name with another gender",
			duplicate: entities.Catalog{Names: []entities.NameEntry{
				{Name: entities.Name{Firstname: "Alex", Lastname: "Silva", Gender: entities.GenderFeminine}},
			}},
			listLen: func(t *testing.T, repo *Repository) int {
				names, err := repo.ListNames(context.Background())
				require.NoError(t, err)
				return len(names)
			},
		},
		{
			name: "shared text_masc",
			duplicate: entities.Catalog{Features: []entities.FeatureEntry{
				{Feature: entities.Feature{TextMasc: "Leal", TextFem: "Lealzinha", IsGood: false}},
			}},
			listLen: func(t *testing.T, repo *Repository) int {
				features, err := repo.ListFeatures(context.Background())
				require.NoError(t, err)
				return len(features)
			},
		},
		{
			name: "shared text_fem",
			duplicate: entities.Catalog{Features: []entities.FeatureEntry{
				{Feature: entities.Feature{TextMasc: "Lealzao", TextFem: "Leal", IsGood: true}},
			}},
			listLen: func(t *testing.T, repo *Repository) int {
				features, err := repo.ListFeatures(context.Background())
				require.NoError(t, err)
				return len(features)
			},
		},
		{
			name: "duplicate item name",
			duplicate: entities.Catalog{Items: []entities.ItemEntry{
				{Item: entities.Item{Name: "Corda", Description: "Outra corda"}},
			}},
			listLen: func(t *testing.T, repo *Repository) int {
				items, err := repo.ListItems(context.Background())
				require.NoError(t, err)
				return len(items)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupTestRepo(t)
			ctx := context.Background()

			_, err := repo.SaveCatalog(ctx, entities.Catalog{
				Names:    []entities.NameEntry{{Name: alex}},
				Features: []entities.FeatureEntry{{Feature: leal}},
				Items:    []entities.ItemEntry{{Item: entities.Item{Name: "Corda"}}},
			})
			require.NoError(t, err)

			counts, err := repo.SaveCatalog(ctx, tt.duplicate)
			require.NoError(t, err)
			assert.Equal(t, entities.CatalogCounts{}, counts)
			assert.Equal(t, 1, tt.listLen(t, repo))
		})
	}
}
