// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnguyen/recipe-kb/internal/artifact"
	"github.com/tdnguyen/recipe-kb/internal/dedupe"
	"github.com/tdnguyen/recipe-kb/internal/link"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Build the dish knowledge base by resolving ingredient mentions",
	Long: `Link deduplicates the raw recipes into unique dishes, then resolves each
dish's ingredient mentions against the ingredient knowledge base by
normalized-name lookup. Mentions with no match are kept with the "unknown"
sentinel and counted; resolution misses are an expected outcome, not an
error.`,
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	recipesPath, _ := cmd.Flags().GetString("recipes")
	kbPath, _ := cmd.Flags().GetString("kb")
	outPath, _ := cmd.Flags().GetString("out")

	recipes, err := artifact.Load[[]types.RawRecipe](recipesPath)
	if err != nil {
		return err
	}
	ingredients, err := artifact.Load[[]types.Ingredient](kbPath)
	if err != nil {
		return err
	}

	res := dedupe.Dedupe(recipes)
	dishes, stats := link.Link(res.Recipes, link.NewIndex(ingredients))

	if err := artifact.Write(outPath, dishes); err != nil {
		return err
	}

	fmt.Printf("wrote %s: %d dishes, %d/%d mentions resolved (%.1f%%)\n",
		outPath, stats.Dishes, stats.Resolved, stats.Mentions(), 100*stats.Rate())
	return nil
}

func init() {
	linkCmd.Flags().String("recipes", "data/recipes_detail.json", "raw recipes file produced by the scraper")
	linkCmd.Flags().String("kb", "data/ingredient_knowledge_base.json", "ingredient knowledge base from enrich")
	linkCmd.Flags().String("out", "data/dish_knowledge_base.json", "dish knowledge base output file")

	rootCmd.AddCommand(linkCmd)
}
