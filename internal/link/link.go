// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package link resolves the ingredient mentions of each dish against the
// canonical ingredient knowledge base.
//
// Resolution is a normalized-key lookup. A miss is an expected, counted
// outcome: the mention is kept with the "unknown" sentinel and empty
// enrichment fields, never dropped and never fatal.
package link

import (
	"github.com/tdnguyen/recipe-kb/internal/normalize"
	"github.com/tdnguyen/recipe-kb/internal/quantity"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

// Stats tallies cross-link outcomes for a run.
type Stats struct {
	Dishes     int
	Resolved   int
	Unresolved int
}

// Mentions returns the total number of ingredient mentions processed.
func (s Stats) Mentions() int {
	return s.Resolved + s.Unresolved
}

// Rate returns the fraction of mentions that resolved, 0 when there were none.
func (s Stats) Rate() float64 {
	if s.Mentions() == 0 {
		return 0
	}
	return float64(s.Resolved) / float64(s.Mentions())
}

// Index is a normalized-key lookup over canonical ingredients.
type Index map[string]*types.Ingredient

// NewIndex builds the lookup from the ingredient knowledge base. Keys are
// already unique by construction; should a stale KB carry duplicates, the
// earliest record wins, matching first-seen canonical order.
func NewIndex(ingredients []types.Ingredient) Index {
	idx := make(Index, len(ingredients))
	for i := range ingredients {
		key := ingredients[i].NameNormalized
		if _, ok := idx[key]; !ok {
			idx[key] = &ingredients[i]
		}
	}
	return idx
}

// Link builds the dish knowledge base from deduplicated recipes. Dish IDs
// are positional over the input slice. Each mention's quantity text is
// parsed here, and its name resolved through the index.
func Link(recipes []types.RawRecipe, idx Index) ([]types.Dish, Stats) {
	dishes := make([]types.Dish, 0, len(recipes))
	var stats Stats

	for i, rec := range recipes {
		dish := types.Dish{
			ID:             types.DishID(i + 1),
			NameVI:         rec.DishName,
			NameNormalized: normalize.Key(rec.DishName),
			Category:       normalize.Key(rec.Category),
			Ingredients:    make([]types.DishIngredientRef, 0, len(rec.Ingredients)),
			Type:           types.RecordDish,
		}

		for _, mention := range rec.Ingredients {
			ref := resolve(mention, idx)
			if ref.IngredientID == types.UnknownIngredientID {
				stats.Unresolved++
			} else {
				stats.Resolved++
			}
			dish.Ingredients = append(dish.Ingredients, ref)
		}

		dishes = append(dishes, dish)
		stats.Dishes++
	}

	return dishes, stats
}

func resolve(mention types.RawIngredientMention, idx Index) types.DishIngredientRef {
	amount := quantity.Parse(mention.QuantityText)

	ref := types.DishIngredientRef{
		IngredientID:   types.UnknownIngredientID,
		NameVI:         mention.Name,
		Unit:           amount.Unit,
		Required:       true,
		NameNormalized: normalize.Key(mention.Name),
	}
	if amount.Quantity != nil {
		ref.Quantity = *amount.Quantity
	}

	if ing, ok := idx[ref.NameNormalized]; ok {
		ref.IngredientID = ing.ID
		ref.NameEN = ing.NameEN
		ref.Category = ing.Category
	}
	return ref
}
