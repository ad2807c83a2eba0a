// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kbstore indexes the built knowledge bases in SQLite for
// downstream lookup: resolving a raw name to its canonical ingredient and
// finding the dishes that use an ingredient.
package kbstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tdnguyen/recipe-kb/internal/normalize"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "recipes.db"
)

// Store manages the knowledge-base SQLite database.
type Store struct {
	db      *sql.DB
	dataDir string
}

// Open opens or creates the database at dataDir/index/recipes.db and
// bootstraps the schema.
func Open(dataDir string) (*Store, error) {
	dir := filepath.Join(dataDir, indexDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dataDir: dataDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ingredients (
			id TEXT PRIMARY KEY,
			name_vi TEXT NOT NULL,
			name_normalized TEXT NOT NULL UNIQUE,
			name_en TEXT,
			category TEXT,
			synonyms TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id TEXT PRIMARY KEY,
			name_vi TEXT NOT NULL,
			name_normalized TEXT,
			category TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS dish_ingredients (
			dish_id TEXT NOT NULL REFERENCES dishes(id),
			position INTEGER NOT NULL,
			ingredient_id TEXT NOT NULL,
			name_vi TEXT,
			name_en TEXT,
			quantity REAL,
			unit TEXT,
			required INTEGER,
			category TEXT,
			name_normalized TEXT,
			PRIMARY KEY (dish_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dish_ingredients_ingredient
			ON dish_ingredients(ingredient_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from an indexing run.
type IngestSummary struct {
	Ingredients int
	Dishes      int
	Mentions    int
}

// Ingest replaces the index contents with the given knowledge bases inside
// one transaction. The corpus is a one-shot build, so ingest is
// replace-all, not incremental.
func (s *Store) Ingest(ctx context.Context, ingredients []types.Ingredient, dishes []types.Dish) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"dish_ingredients", "dishes", "ingredients"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return IngestSummary{}, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	var summary IngestSummary

	ingStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO ingredients (id, name_vi, name_normalized, name_en, category, synonyms)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing ingredient insert: %w", err)
	}
	defer ingStmt.Close()

	for _, ing := range ingredients {
		synJSON, _ := json.Marshal(ing.Synonyms)
		if _, err := ingStmt.ExecContext(ctx,
			ing.ID, ing.NameVI, ing.NameNormalized, ing.NameEN, ing.Category, string(synJSON),
		); err != nil {
			return IngestSummary{}, fmt.Errorf("inserting ingredient %s: %w", ing.ID, err)
		}
		summary.Ingredients++
	}

	dishStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO dishes (id, name_vi, name_normalized, category) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing dish insert: %w", err)
	}
	defer dishStmt.Close()

	refStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO dish_ingredients
			(dish_id, position, ingredient_id, name_vi, name_en, quantity, unit, required, category, name_normalized)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing mention insert: %w", err)
	}
	defer refStmt.Close()

	for _, dish := range dishes {
		if _, err := dishStmt.ExecContext(ctx,
			dish.ID, dish.NameVI, dish.NameNormalized, dish.Category,
		); err != nil {
			return IngestSummary{}, fmt.Errorf("inserting dish %s: %w", dish.ID, err)
		}
		summary.Dishes++

		for pos, ref := range dish.Ingredients {
			if _, err := refStmt.ExecContext(ctx,
				dish.ID, pos, ref.IngredientID, ref.NameVI, ref.NameEN,
				ref.Quantity, ref.Unit, ref.Required, ref.Category, ref.NameNormalized,
			); err != nil {
				return IngestSummary{}, fmt.Errorf("inserting mention %d of %s: %w", pos, dish.ID, err)
			}
			summary.Mentions++
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing: %w", err)
	}
	return summary, nil
}

// LookupIngredient resolves a raw name to its canonical record through the
// normalized-name key. It returns (nil, nil) when no record matches.
func (s *Store) LookupIngredient(ctx context.Context, name string) (*types.Ingredient, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name_vi, name_normalized, name_en, category, synonyms
		 FROM ingredients WHERE name_normalized = ?`, normalize.Key(name))

	var ing types.Ingredient
	var synJSON string
	err := row.Scan(&ing.ID, &ing.NameVI, &ing.NameNormalized, &ing.NameEN, &ing.Category, &synJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", name, err)
	}
	json.Unmarshal([]byte(synJSON), &ing.Synonyms)
	ing.Type = types.RecordIngredient
	return &ing, nil
}

// DishUse is one dish that uses a looked-up ingredient.
type DishUse struct {
	DishID   string  `json:"dish_id"`
	DishName string  `json:"dish_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// DishesWithIngredient returns the dishes whose resolved ingredient list
// contains the named ingredient. A name that resolves to no canonical
// ingredient yields an empty result, not an error.
func (s *Store) DishesWithIngredient(ctx context.Context, name string) ([]DishUse, error) {
	ing, err := s.LookupIngredient(ctx, name)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT d.id, d.name_vi, di.quantity, di.unit
		 FROM dish_ingredients di JOIN dishes d ON d.id = di.dish_id
		 WHERE di.ingredient_id = ?
		 ORDER BY d.id`, ing.ID)
	if err != nil {
		return nil, fmt.Errorf("querying dishes for %s: %w", ing.ID, err)
	}
	defer rows.Close()

	var uses []DishUse
	for rows.Next() {
		var u DishUse
		if err := rows.Scan(&u.DishID, &u.DishName, &u.Quantity, &u.Unit); err != nil {
			return nil, fmt.Errorf("scanning dish row: %w", err)
		}
		uses = append(uses, u)
	}
	return uses, rows.Err()
}
