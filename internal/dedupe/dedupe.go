// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedupe collapses raw recipe records into unique entities.
//
// Ingredients deduplicate on the diacritic-folded key (normalize.Key);
// dishes deduplicate on the weaker lower+trim key (normalize.DishKey). Both
// keep the earliest occurrence as the canonical display form. Output order
// is encounter order, so two runs over the same input sequence always yield
// the same positional IDs; reordering the input renumbers.
package dedupe

import (
	"strings"

	"github.com/tdnguyen/recipe-kb/internal/normalize"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

// Result holds the unique entities found in a batch of raw recipes.
type Result struct {
	// Ingredients lists unique ingredient names in first-seen order. The
	// display form is the spelling of the earliest mention whose normalized
	// key matched.
	Ingredients []string

	// Recipes holds the first occurrence of each unique dish. Later
	// duplicates are dropped wholesale, ingredient lists included, so only
	// the first-seen recipe's mentions reach cross-linking.
	Recipes []types.RawRecipe
}

// DishNames returns the unique dish names in first-seen order.
func (r Result) DishNames() []string {
	names := make([]string, 0, len(r.Recipes))
	for _, rec := range r.Recipes {
		names = append(names, strings.TrimSpace(rec.DishName))
	}
	return names
}

// Dedupe scans recipes in input order and returns the unique ingredient and
// dish sets. Ingredient mentions are collected from every recipe, including
// recipes later dropped as duplicate dishes. Blank names are skipped.
func Dedupe(recipes []types.RawRecipe) Result {
	res := Result{
		Ingredients: []string{},
		Recipes:     []types.RawRecipe{},
	}
	seenIngredients := make(map[string]bool)
	seenDishes := make(map[string]bool)

	for _, rec := range recipes {
		dishKey := normalize.DishKey(rec.DishName)
		if dishKey != "" && !seenDishes[dishKey] {
			seenDishes[dishKey] = true
			res.Recipes = append(res.Recipes, rec)
		}

		for _, mention := range rec.Ingredients {
			name := strings.TrimSpace(mention.Name)
			if name == "" {
				continue
			}
			key := normalize.Key(name)
			if !seenIngredients[key] {
				seenIngredients[key] = true
				res.Ingredients = append(res.Ingredients, name)
			}
		}
	}

	return res
}
