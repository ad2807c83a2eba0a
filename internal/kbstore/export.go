// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kbstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/tdnguyen/recipe-kb/pkg/types"
)

// ExportDoc is the full index contents in canonical order.
type ExportDoc struct {
	Ingredients []types.Ingredient `json:"ingredients" yaml:"ingredients"`
	Dishes      []types.Dish       `json:"dishes" yaml:"dishes"`
}

// ExportYAML writes the index to dataDir/index/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	doc, err := s.export(ctx)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dataDir, indexDir, "export.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the index to dataDir/index/export.json.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	doc, err := s.export(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dataDir, indexDir, "export.json")
	return path, os.WriteFile(path, append(data, '\n'), 0o644)
}

func (s *Store) export(ctx context.Context) (ExportDoc, error) {
	doc := ExportDoc{Ingredients: []types.Ingredient{}, Dishes: []types.Dish{}}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name_vi, name_normalized, name_en, category, synonyms
		 FROM ingredients ORDER BY id`)
	if err != nil {
		return doc, fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ing types.Ingredient
		var synJSON string
		if err := rows.Scan(&ing.ID, &ing.NameVI, &ing.NameNormalized, &ing.NameEN, &ing.Category, &synJSON); err != nil {
			return doc, fmt.Errorf("scanning ingredient: %w", err)
		}
		json.Unmarshal([]byte(synJSON), &ing.Synonyms)
		ing.Type = types.RecordIngredient
		doc.Ingredients = append(doc.Ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return doc, err
	}

	dishes, err := s.exportDishes(ctx)
	if err != nil {
		return doc, err
	}
	doc.Dishes = dishes
	return doc, nil
}

func (s *Store) exportDishes(ctx context.Context) ([]types.Dish, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name_vi, name_normalized, category FROM dishes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying dishes: %w", err)
	}
	defer rows.Close()

	dishes := []types.Dish{}
	byID := map[string]int{}
	for rows.Next() {
		var d types.Dish
		if err := rows.Scan(&d.ID, &d.NameVI, &d.NameNormalized, &d.Category); err != nil {
			return nil, fmt.Errorf("scanning dish: %w", err)
		}
		d.Ingredients = []types.DishIngredientRef{}
		d.Type = types.RecordDish
		byID[d.ID] = len(dishes)
		dishes = append(dishes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refRows, err := s.db.QueryContext(ctx,
		`SELECT dish_id, ingredient_id, name_vi, name_en, quantity, unit, required, category, name_normalized
		 FROM dish_ingredients ORDER BY dish_id, position`)
	if err != nil {
		return nil, fmt.Errorf("querying mentions: %w", err)
	}
	defer refRows.Close()

	for refRows.Next() {
		var dishID string
		var ref types.DishIngredientRef
		if err := refRows.Scan(&dishID, &ref.IngredientID, &ref.NameVI, &ref.NameEN,
			&ref.Quantity, &ref.Unit, &ref.Required, &ref.Category, &ref.NameNormalized); err != nil {
			return nil, fmt.Errorf("scanning mention: %w", err)
		}
		if i, ok := byID[dishID]; ok {
			dishes[i].Ingredients = append(dishes[i].Ingredients, ref)
		}
	}
	return dishes, refRows.Err()
}
