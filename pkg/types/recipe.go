// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across pipeline stages.
package types

// RawIngredientMention is one ingredient line as scraped from a recipe page.
// It belongs to exactly one RawRecipe.
type RawIngredientMention struct {
	// Name is the free-text ingredient name. Non-empty after trimming.
	Name string `json:"name" yaml:"name"`

	// QuantityText is the free-text amount next to the name
	// (e.g. "500 gram", "1/2 kg", "ít"). Empty when the page showed none.
	QuantityText string `json:"quantity_text" yaml:"quantity_text"`
}

// RawRecipe is one recipe as produced by the external scraper. It is
// immutable input to the pipeline; no stage modifies it.
type RawRecipe struct {
	// DishName is the free-text dish name from the page heading.
	DishName string `json:"dish_name" yaml:"dish_name"`

	// SourceURL is the page the recipe was scraped from.
	SourceURL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Servings is the serving count parsed from the heading, nil when absent.
	Servings *int `json:"servings" yaml:"servings"`

	// Category is the scraper-assigned free-text category.
	Category string `json:"category" yaml:"category"`

	// Ingredients lists the mentions in page order.
	Ingredients []RawIngredientMention `json:"ingredients" yaml:"ingredients"`
}

// SynonymEntry is one record of a pre-generated synonyms file. When an entry
// exists for an ingredient the enricher uses it instead of calling the oracle.
type SynonymEntry struct {
	Ingredient string   `json:"ingredient" yaml:"ingredient"`
	Synonyms   []string `json:"synonyms" yaml:"synonyms"`
}
