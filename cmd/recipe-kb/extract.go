// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tdnguyen/recipe-kb/internal/artifact"
	"github.com/tdnguyen/recipe-kb/internal/dedupe"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Deduplicate raw recipes into unique ingredient and dish lists",
	Long: `Extract reads the scraper's raw recipe file and collapses it into the
unique entity lists that seed the knowledge bases. Ingredient names
deduplicate on the diacritic-folded key; dish names on the lower-cased
name with diacritics kept. Both lists keep first-seen order, which fixes
the IDs assigned downstream.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	recipesPath, _ := cmd.Flags().GetString("recipes")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	recipes, err := artifact.Load[[]types.RawRecipe](recipesPath)
	if err != nil {
		return err
	}

	res := dedupe.Dedupe(recipes)

	if err := artifact.Write(filepath.Join(dataDir, "unique_ingredients.json"), res.Ingredients); err != nil {
		return err
	}
	if err := artifact.Write(filepath.Join(dataDir, "unique_dishes.json"), res.DishNames()); err != nil {
		return err
	}

	fmt.Printf("%d recipes -> %d unique ingredients, %d unique dishes\n",
		len(recipes), len(res.Ingredients), len(res.Recipes))
	return nil
}

func init() {
	extractCmd.Flags().String("recipes", "data/recipes_detail.json", "raw recipes file produced by the scraper")
	extractCmd.Flags().String("data-dir", "data", "output directory for the unique entity lists")

	rootCmd.AddCommand(extractCmd)
}
