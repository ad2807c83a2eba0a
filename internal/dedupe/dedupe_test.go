// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedupe

import (
	"reflect"
	"testing"

	"github.com/tdnguyen/recipe-kb/internal/normalize"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

func recipe(dish string, ingredients ...string) types.RawRecipe {
	r := types.RawRecipe{DishName: dish}
	for _, name := range ingredients {
		r.Ingredients = append(r.Ingredients, types.RawIngredientMention{Name: name})
	}
	return r
}

func TestDedupeIngredientsFoldDiacritics(t *testing.T) {
	res := Dedupe([]types.RawRecipe{
		recipe("Canh chua", "cà chua", "Hành lá"),
		recipe("Salad", "Cà Chua", "ca chua", "hành lá"),
	})

	// Diacritic and case variants collapse; first-seen spelling wins.
	want := []string{"cà chua", "Hành lá"}
	if !reflect.DeepEqual(res.Ingredients, want) {
		t.Errorf("Ingredients = %v, want %v", res.Ingredients, want)
	}
}

func TestDedupeDishesKeepDiacritics(t *testing.T) {
	res := Dedupe([]types.RawRecipe{
		recipe("Phở bò"),
		recipe("Pho bo"),  // different dish: dish key keeps diacritics
		recipe("PHỞ BÒ "), // same dish: case and whitespace only
	})

	if len(res.Recipes) != 2 {
		t.Fatalf("got %d unique dishes, want 2: %v", len(res.Recipes), res.DishNames())
	}
	if res.Recipes[0].DishName != "Phở bò" {
		t.Errorf("first-seen dish name = %q, want %q", res.Recipes[0].DishName, "Phở bò")
	}
}

func TestDedupeDuplicateDishKeepsFirstIngredientList(t *testing.T) {
	first := recipe("Canh chua", "cà chua")
	second := recipe("Canh Chua", "me", "cà chua")

	res := Dedupe([]types.RawRecipe{first, second})

	if len(res.Recipes) != 1 {
		t.Fatalf("got %d unique dishes, want 1", len(res.Recipes))
	}
	if len(res.Recipes[0].Ingredients) != 1 || res.Recipes[0].Ingredients[0].Name != "cà chua" {
		t.Errorf("kept recipe ingredients = %v, want the first occurrence's list", res.Recipes[0].Ingredients)
	}
	// The dropped duplicate's mentions still count toward the unique set.
	want := []string{"cà chua", "me"}
	if !reflect.DeepEqual(res.Ingredients, want) {
		t.Errorf("Ingredients = %v, want %v", res.Ingredients, want)
	}
}

func TestDedupeSkipsBlankNames(t *testing.T) {
	res := Dedupe([]types.RawRecipe{
		recipe("", "muối"),
		recipe("   ", "  "),
		recipe("Cháo", ""),
	})
	if len(res.Recipes) != 1 {
		t.Errorf("got %d dishes, want 1 (blank dish names skipped)", len(res.Recipes))
	}
	if len(res.Ingredients) != 1 {
		t.Errorf("got %v, want only %q", res.Ingredients, "muối")
	}
}

func TestDedupeDeterministic(t *testing.T) {
	input := []types.RawRecipe{
		recipe("Canh chua", "cà chua", "me", "đường"),
		recipe("Phở", "bánh phở", "thịt bò", "hành"),
		recipe("canh chua", "Cà Chua"),
	}

	a := Dedupe(input)
	b := Dedupe(input)
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over identical input disagree")
	}
}

func TestDedupePartition(t *testing.T) {
	input := []types.RawRecipe{
		recipe("A", "cà chua", "Cà chua", "hành", "đường"),
		recipe("B", "duong", "HÀNH"),
	}
	res := Dedupe(input)

	keys := make(map[string]bool, len(res.Ingredients))
	for _, name := range res.Ingredients {
		key := normalize.Key(name)
		if keys[key] {
			t.Errorf("duplicate normalized key %q in unique set", key)
		}
		keys[key] = true
	}

	// Every mention's key maps into the unique set, and the set is no larger
	// than the mention count.
	mentions := 0
	for _, rec := range input {
		for _, m := range rec.Ingredients {
			mentions++
			if !keys[normalize.Key(m.Name)] {
				t.Errorf("mention %q has no entry in the unique set", m.Name)
			}
		}
	}
	if len(res.Ingredients) > mentions {
		t.Errorf("unique set (%d) larger than mention count (%d)", len(res.Ingredients), mentions)
	}
}
