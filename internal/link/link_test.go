// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/recipe-kb/internal/dedupe"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

func testKB() []types.Ingredient {
	return []types.Ingredient{
		{
			ID:             "ingre00001",
			NameVI:         "cà chua",
			NameNormalized: "ca chua",
			NameEN:         "Tomato",
			Category:       "rau-cu",
			Synonyms:       []string{"cà", "tomato", ""},
			Type:           types.RecordIngredient,
		},
		{
			ID:             "ingre00002",
			NameVI:         "nước mắm",
			NameNormalized: "nuoc mam",
			NameEN:         "Fish sauce",
			Category:       "gia-vi",
			Synonyms:       []string{"", "", ""},
			Type:           types.RecordIngredient,
		},
	}
}

func TestLinkResolvesByNormalizedName(t *testing.T) {
	recipes := []types.RawRecipe{{
		DishName: "Canh chua",
		Category: "Món canh",
		Ingredients: []types.RawIngredientMention{
			// Diacritic and case variants of an indexed ingredient must hit.
			{Name: "Cà Chua", QuantityText: "500 gram"},
			{Name: "rau má", QuantityText: "ít"},
		},
	}}

	dishes, stats := Link(recipes, NewIndex(testKB()))
	require.Len(t, dishes, 1)

	dish := dishes[0]
	assert.Equal(t, "dish0001", dish.ID)
	assert.Equal(t, "Canh chua", dish.NameVI)
	assert.Equal(t, "canh chua", dish.NameNormalized)
	assert.Equal(t, "mon canh", dish.Category)
	assert.Equal(t, types.RecordDish, dish.Type)
	require.Len(t, dish.Ingredients, 2)

	hit := dish.Ingredients[0]
	assert.Equal(t, "ingre00001", hit.IngredientID)
	assert.Equal(t, "Cà Chua", hit.NameVI)
	assert.Equal(t, "Tomato", hit.NameEN)
	assert.Equal(t, "rau-cu", hit.Category)
	assert.Equal(t, 500.0, hit.Quantity)
	assert.Equal(t, "gram", hit.Unit)
	assert.True(t, hit.Required)

	miss := dish.Ingredients[1]
	assert.Equal(t, types.UnknownIngredientID, miss.IngredientID)
	assert.Empty(t, miss.NameEN)
	assert.Empty(t, miss.Category)
	assert.Equal(t, 0.0, miss.Quantity)
	assert.Equal(t, "ít", miss.Unit)
	assert.Equal(t, "rau ma", miss.NameNormalized)

	assert.Equal(t, Stats{Dishes: 1, Resolved: 1, Unresolved: 1}, stats)
	assert.InDelta(t, 0.5, stats.Rate(), 1e-9)
}

func TestLinkEmptyBatch(t *testing.T) {
	dishes, stats := Link(nil, NewIndex(nil))
	assert.Empty(t, dishes)
	assert.Equal(t, 0.0, stats.Rate())
}

// End to end: duplicate dishes are dropped before cross-linking, so only the
// first-seen recipe's ingredient list reaches the dish record.
func TestLinkAfterDedupe(t *testing.T) {
	recipes := []types.RawRecipe{
		{
			DishName: "Canh chua",
			Ingredients: []types.RawIngredientMention{
				{Name: "cà chua", QuantityText: "500 gram"},
			},
		},
		{
			DishName: "Canh Chua", // same dish, different case
			Ingredients: []types.RawIngredientMention{
				{Name: "Cà Chua", QuantityText: "2 quả"},
			},
		},
	}

	res := dedupe.Dedupe(recipes)
	require.Len(t, res.Recipes, 1)
	require.Len(t, res.Ingredients, 1)

	dishes, stats := Link(res.Recipes, NewIndex(testKB()))
	require.Len(t, dishes, 1)
	assert.Equal(t, "Canh chua", dishes[0].NameVI)

	require.Len(t, dishes[0].Ingredients, 1)
	ref := dishes[0].Ingredients[0]
	assert.Equal(t, "ingre00001", ref.IngredientID)
	assert.Equal(t, 500.0, ref.Quantity, "quantity must come from the first-seen recipe")
	assert.Equal(t, "gram", ref.Unit)

	assert.Equal(t, Stats{Dishes: 1, Resolved: 1, Unresolved: 0}, stats)
}
