// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tdnguyen/recipe-kb/internal/split"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split knowledge-base files into one JSON file per record",
	Long: `Split reads the ingredient and/or dish knowledge base and writes each
record to its own <id>.json file under the output directory. Records
missing an id are skipped and counted; only a missing or unreadable
input file fails the run.`,
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("type")
	ingredientsInput, _ := cmd.Flags().GetString("ingredients-input")
	dishesInput, _ := cmd.Flags().GetString("dishes-input")
	outDir, _ := cmd.Flags().GetString("output-dir")

	var errs []error
	w := cmd.OutOrStdout()

	if kind == split.KindIngredients || kind == split.KindBoth {
		if _, err := split.File(ingredientsInput, filepath.Join(outDir, "ingredients"), w); err != nil {
			errs = append(errs, fmt.Errorf("ingredients: %w", err))
		}
	}
	if kind == split.KindDishes || kind == split.KindBoth {
		if _, err := split.File(dishesInput, filepath.Join(outDir, "dishes"), w); err != nil {
			errs = append(errs, fmt.Errorf("dishes: %w", err))
		}
	}
	if kind != split.KindIngredients && kind != split.KindDishes && kind != split.KindBoth {
		return fmt.Errorf("unknown --type %q: want %s, %s or %s",
			kind, split.KindIngredients, split.KindDishes, split.KindBoth)
	}

	return errors.Join(errs...)
}

func init() {
	splitCmd.Flags().String("type", split.KindBoth, "what to split: ingredients, dishes or both")
	splitCmd.Flags().String("ingredients-input", "data/ingredient_knowledge_base.json", "ingredient knowledge base file")
	splitCmd.Flags().String("dishes-input", "data/dish_knowledge_base.json", "dish knowledge base file")
	splitCmd.Flags().String("output-dir", "data", "directory that will hold the ingredients/ and dishes/ subdirectories")

	rootCmd.AddCommand(splitCmd)
}
