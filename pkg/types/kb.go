// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// RecordType discriminates knowledge-base record kinds.
type RecordType string

const (
	RecordIngredient RecordType = "ingredient"
	RecordDish       RecordType = "dish"
)

// UnknownIngredientID marks a dish ingredient mention that resolved to no
// canonical ingredient. It is an expected outcome, not an error, and is
// distinct from an empty field.
const UnknownIngredientID = "unknown"

// SynonymCount is the fixed length of an Ingredient's synonym list. Oracle
// output is truncated or padded with empty strings to this length.
const SynonymCount = 3

// IngredientID returns the canonical ingredient ID for a 1-based position,
// e.g. IngredientID(3) == "ingre00003".
//
// IDs are positional: they follow first-seen input order, not content, so
// reordering the input corpus renumbers. The corpus is a one-shot static
// build and positional identity was kept over content hashes.
func IngredientID(n int) string {
	return fmt.Sprintf("ingre%05d", n)
}

// DishID returns the canonical dish ID for a 1-based position,
// e.g. DishID(7) == "dish0007". Positional, like IngredientID.
func DishID(n int) string {
	return fmt.Sprintf("dish%04d", n)
}

// Ingredient is a canonical, deduplicated ingredient record.
type Ingredient struct {
	// ID has the form ingreNNNNN, assigned in first-seen order.
	ID string `json:"id" yaml:"id"`

	// NameVI is the original-case Vietnamese name as first observed.
	NameVI string `json:"name_vi" yaml:"name_vi"`

	// NameNormalized is the diacritic-free lower-cased key. It is unique
	// across all ingredient records: two spellings that normalize equal
	// collapse to one record keeping the first-seen spelling.
	NameNormalized string `json:"name_normalized" yaml:"name_normalized"`

	// NameEN is the oracle translation, empty when translation failed.
	NameEN string `json:"name_en" yaml:"name_en"`

	// Category is a label from the configured category set.
	Category string `json:"category" yaml:"category"`

	// Synonyms holds exactly SynonymCount alternative names, padded with
	// empty strings when the oracle produced fewer.
	Synonyms []string `json:"synonyms" yaml:"synonyms"`

	// Type is always RecordIngredient.
	Type RecordType `json:"type" yaml:"type"`
}

// DishIngredientRef is one resolved ingredient mention inside a Dish. It is
// embedded by value and never shared across dishes.
type DishIngredientRef struct {
	// IngredientID is the canonical ingredient ID, or UnknownIngredientID
	// when the mention resolved to nothing.
	IngredientID string `json:"ingredient_id" yaml:"ingredient_id"`

	// NameVI is the name as it appeared in this dish.
	NameVI string `json:"name_vi" yaml:"name_vi"`

	// NameEN is copied from the matched ingredient, empty on a miss.
	NameEN string `json:"name_en" yaml:"name_en"`

	// Quantity is the parsed numeric amount, 0 when unparseable or absent.
	Quantity float64 `json:"quantity" yaml:"quantity"`

	// Unit is the parsed unit, or the raw qualitative amount ("ít", "vài lá")
	// when no number was recognized. Empty for bare numbers.
	Unit string `json:"unit" yaml:"unit"`

	// Required is always true: no scraper signal distinguishes optional
	// ingredients yet.
	Required bool `json:"required" yaml:"required"`

	// Category is copied from the matched ingredient, empty on a miss.
	Category string `json:"category" yaml:"category"`

	// NameNormalized is the lookup key computed from NameVI.
	NameNormalized string `json:"name_normalized" yaml:"name_normalized"`
}

// Dish is a canonical, deduplicated dish record with its resolved
// ingredient list.
type Dish struct {
	// ID has the form dishNNNN, assigned in first-seen order.
	ID string `json:"id" yaml:"id"`

	// NameVI is the dish name as it appeared on the first-seen page.
	NameVI string `json:"name_vi" yaml:"name_vi"`

	// NameNormalized is the diacritic-free lower-cased name. Unlike
	// ingredients, dishes deduplicate on the weaker lower+trim key, so this
	// field is informational, not the dedup key.
	NameNormalized string `json:"name_normalized" yaml:"name_normalized"`

	// Category is the normalized scraper category.
	Category string `json:"category" yaml:"category"`

	// Ingredients holds one ref per mention, in page order. Unresolved
	// mentions are present with the unknown sentinel, never dropped.
	Ingredients []DishIngredientRef `json:"ingredients" yaml:"ingredients"`

	// Type is always RecordDish.
	Type RecordType `json:"type" yaml:"type"`
}
