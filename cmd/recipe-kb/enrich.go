// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tdnguyen/recipe-kb/internal/artifact"
	"github.com/tdnguyen/recipe-kb/internal/enrich"
	"github.com/tdnguyen/recipe-kb/internal/oracle"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Build the ingredient knowledge base with oracle-derived fields",
	Long: `Enrich reads the unique ingredient list and attaches an English
translation, a category label, and up to three synonyms to each entry,
producing the ingredient knowledge base.

Oracle calls run on a bounded worker pool and any failure degrades the
affected field to its empty or default value; a single ingredient never
aborts the batch. Progress is checkpointed to the output file at a fixed
interval so an interrupted run can be inspected and loses at most the
trailing incomplete interval.`,
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	ingredientsPath, _ := cmd.Flags().GetString("ingredients")
	outPath, _ := cmd.Flags().GetString("out")
	synonymsPath, _ := cmd.Flags().GetString("synonyms")
	categories, _ := cmd.Flags().GetString("categories")
	model, _ := cmd.Flags().GetString("model")
	apiKey, _ := cmd.Flags().GetString("api-key")
	workers, _ := cmd.Flags().GetInt("workers")
	interval, _ := cmd.Flags().GetInt("checkpoint-interval")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")
	rps, _ := cmd.Flags().GetFloat64("rate")

	names, err := artifact.Load[[]string](ingredientsPath)
	if err != nil {
		return err
	}

	set, err := enrich.CategorySetByName(categories)
	if err != nil {
		return err
	}

	cfg := types.EnrichConfig{
		OracleConfig: types.OracleConfig{
			Model:             model,
			APIKey:            secretDefault("openai-api-key", apiKey),
			MaxRetries:        maxRetries,
			RequestsPerSecond: rps,
		},
		Workers:            workers,
		CheckpointInterval: interval,
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	enricher := enrich.New(oracle.New(cfg.OracleConfig), set, cfg, logger)

	// A pre-generated synonyms file is optional; when absent the oracle is
	// asked per ingredient.
	if _, statErr := os.Stat(synonymsPath); statErr == nil {
		entries, err := artifact.Load[[]types.SynonymEntry](synonymsPath)
		if err != nil {
			return err
		}
		enricher.UseSynonyms(entries)
		fmt.Printf("using %d pre-generated synonym entries from %s\n", len(entries), synonymsPath)
	}

	fmt.Printf("enriching %d ingredients (%s labels)...\n", len(names), set.Name)

	summary, err := enricher.BuildKB(cmd.Context(), names, outPath, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d records, %d degraded)\n", outPath, summary.Enriched, summary.Degraded)
	return nil
}

func init() {
	enrichCmd.Flags().String("ingredients", "data/unique_ingredients.json", "unique ingredient list from extract")
	enrichCmd.Flags().String("out", "data/ingredient_knowledge_base.json", "ingredient knowledge base output file")
	enrichCmd.Flags().String("synonyms", "data/ingredients_synonyms.json", "optional pre-generated synonyms file")
	enrichCmd.Flags().String("categories", "base", "category label set: base, extended, or a YAML table file")
	enrichCmd.Flags().String("model", "", "oracle chat model identifier")
	enrichCmd.Flags().String("api-key", "", "oracle API key (default: .secrets/openai-api-key)")
	enrichCmd.Flags().Int("workers", 4, "enrichment worker pool size")
	enrichCmd.Flags().Int("checkpoint-interval", 20, "flush the knowledge base every N completed ingredients")
	enrichCmd.Flags().Int("max-retries", 3, "retry attempts per oracle call")
	enrichCmd.Flags().Float64("rate", 3, "oracle requests per second across all workers")

	rootCmd.AddCommand(enrichCmd)
}
