// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnguyen/recipe-kb/internal/artifact"
	"github.com/tdnguyen/recipe-kb/internal/kbstore"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Query and maintain the SQLite knowledge-base index",
}

var kbStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Load the knowledge-base files into the SQLite index",
	RunE:  runKBStore,
}

func runKBStore(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	ingredientsInput, _ := cmd.Flags().GetString("ingredients-input")
	dishesInput, _ := cmd.Flags().GetString("dishes-input")

	ingredients, err := artifact.Load[[]types.Ingredient](ingredientsInput)
	if err != nil {
		return err
	}
	dishes, err := artifact.Load[[]types.Dish](dishesInput)
	if err != nil {
		return err
	}

	store, err := kbstore.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(cmd.Context(), ingredients, dishes)
	if err != nil {
		return err
	}

	fmt.Printf("indexed %d ingredients, %d dishes, %d mentions\n",
		summary.Ingredients, summary.Dishes, summary.Mentions)
	return nil
}

var kbLookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Resolve an ingredient name to its canonical record",
	Args:  cobra.ExactArgs(1),
	RunE:  runKBLookup,
}

func runKBLookup(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")

	store, err := kbstore.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	ing, err := store.LookupIngredient(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if ing == nil {
		return fmt.Errorf("no ingredient matches %q", args[0])
	}

	out, err := json.MarshalIndent(ing, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

var kbDishesCmd = &cobra.Command{
	Use:   "dishes <ingredient>...",
	Short: "List the dishes that use the given ingredients",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runKBDishes,
}

func runKBDishes(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := kbstore.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	results := map[string][]kbstore.DishUse{}
	for _, name := range args {
		uses, err := store.DishesWithIngredient(cmd.Context(), name)
		if err != nil {
			return err
		}
		results[name] = uses
	}

	if asJSON {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, name := range args {
		uses := results[name]
		if len(uses) == 0 {
			fmt.Printf("%s: no dishes found\n", name)
			continue
		}
		fmt.Printf("%s: %d dishes\n", name, len(uses))
		for _, u := range uses {
			if u.Quantity > 0 {
				fmt.Printf("  %s  %s (%g %s)\n", u.DishID, u.DishName, u.Quantity, u.Unit)
			} else {
				fmt.Printf("  %s  %s\n", u.DishID, u.DishName)
			}
		}
	}
	return nil
}

var kbExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the index as a single YAML or JSON document",
	RunE:  runKBExport,
}

func runKBExport(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	format, _ := cmd.Flags().GetString("format")

	store, err := kbstore.Open(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml":
		path, err = store.ExportYAML(cmd.Context())
	case "json":
		path, err = store.ExportJSON(cmd.Context())
	default:
		return fmt.Errorf("unknown --format %q: want yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("exported index to %s\n", path)
	return nil
}

func init() {
	kbCmd.PersistentFlags().String("data-dir", "data", "data directory that holds the index")

	kbStoreCmd.Flags().String("ingredients-input", "data/ingredient_knowledge_base.json", "ingredient knowledge base file")
	kbStoreCmd.Flags().String("dishes-input", "data/dish_knowledge_base.json", "dish knowledge base file")

	kbDishesCmd.Flags().Bool("json", false, "print results as JSON")

	kbExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	kbCmd.AddCommand(kbStoreCmd, kbLookupCmd, kbDishesCmd, kbExportCmd)
	rootCmd.AddCommand(kbCmd)
}
