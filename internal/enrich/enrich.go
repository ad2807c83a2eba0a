// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich builds canonical ingredient records from unique names by
// attaching oracle-derived translation, category, and synonym fields.
//
// Every oracle failure degrades the affected field to its empty or default
// value and is logged; a single ingredient can never abort the batch. The
// knowledge base is checkpointed to disk at a fixed interval so an
// interrupted run loses at most the trailing incomplete interval.
package enrich

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tdnguyen/recipe-kb/internal/artifact"
	"github.com/tdnguyen/recipe-kb/internal/normalize"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

const (
	defaultWorkers            = 4
	defaultCheckpointInterval = 20
	defaultMaxRetries         = 3
)

// backoffBase controls the base duration for exponential backoff on oracle
// retries. Tests override this to avoid real sleeps.
var backoffBase = time.Second

// Summary holds counts from an enrichment run.
type Summary struct {
	// Enriched is the number of ingredient records produced.
	Enriched int

	// Degraded counts records for which at least one oracle field fell back
	// to its empty or default value.
	Degraded int
}

// Enricher turns unique ingredient names into canonical Ingredient records.
type Enricher struct {
	oracle Oracle
	set    CategorySet
	cfg    types.EnrichConfig
	syn    map[string][]string
	log    zerolog.Logger
}

// New builds an Enricher. Zero config fields fall back to defaults
// (4 workers, checkpoint every 20, 3 retries).
func New(oracle Oracle, set CategorySet, cfg types.EnrichConfig, log zerolog.Logger) *Enricher {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.CheckpointInterval <= 0 {
		cfg.CheckpointInterval = defaultCheckpointInterval
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	return &Enricher{oracle: oracle, set: set, cfg: cfg, log: log}
}

// UseSynonyms registers pre-generated synonym entries. Ingredients with an
// entry skip the oracle synonyms call.
func (e *Enricher) UseSynonyms(entries []types.SynonymEntry) {
	e.syn = make(map[string][]string, len(entries))
	for _, entry := range entries {
		e.syn[normalize.Key(entry.Ingredient)] = entry.Synonyms
	}
}

// BuildKB enriches names in input order and writes the ingredient knowledge
// base to outPath. Records are assembled positionally, so concurrency never
// changes IDs or output order. A single designated writer flushes the
// contiguous prefix of completed records every CheckpointInterval items and
// once more at the end.
func (e *Enricher) BuildKB(ctx context.Context, names []string, outPath string, w io.Writer) (Summary, error) {
	records := make([]*types.Ingredient, len(names))
	degraded := make([]bool, len(names))
	done := make([]bool, len(names))

	var (
		mu       sync.Mutex
		frontier int // length of the contiguous completed prefix
		flushed  int // records covered by the last checkpoint
		writeErr error
	)

	flushPrefix := func() {
		// Callers hold mu: checkpoint writes are serialized by design.
		if err := artifact.Write(outPath, deref(records[:frontier])); err != nil {
			writeErr = err
			return
		}
		flushed = frontier
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for n := 0; n < e.cfg.Workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				rec, deg := e.enrichOne(ctx, idx+1, names[idx])

				mu.Lock()
				records[idx] = rec
				degraded[idx] = deg
				done[idx] = true
				for frontier < len(names) && done[frontier] {
					frontier++
				}
				fmt.Fprintf(w, "[%d/%d] %s -> %s | %s\n", idx+1, len(names), rec.NameVI, rec.NameEN, rec.Category)
				if frontier-flushed >= e.cfg.CheckpointInterval && writeErr == nil {
					flushPrefix()
					if writeErr == nil {
						fmt.Fprintf(w, "  [saved progress: %d items]\n", flushed)
					}
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for idx := range names {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	if writeErr == nil && flushed < frontier {
		flushPrefix()
	}

	var summary Summary
	for i := 0; i < frontier; i++ {
		summary.Enriched++
		if degraded[i] {
			summary.Degraded++
		}
	}
	fmt.Fprintf(w, "\nenriched: %d, degraded: %d\n", summary.Enriched, summary.Degraded)

	if writeErr != nil {
		return summary, fmt.Errorf("writing knowledge base: %w", writeErr)
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

// enrichOne produces one canonical record. It never fails: each oracle error
// degrades its field and marks the record degraded.
func (e *Enricher) enrichOne(ctx context.Context, position int, name string) (*types.Ingredient, bool) {
	rec := &types.Ingredient{
		ID:             types.IngredientID(position),
		NameVI:         name,
		NameNormalized: normalize.Key(name),
		Synonyms:       make([]string, types.SynonymCount),
		Type:           types.RecordIngredient,
	}
	deg := false

	nameEN, err := withRetry(ctx, e.cfg.MaxRetries, func(ctx context.Context) (string, error) {
		return e.oracle.Translate(ctx, name)
	})
	if err != nil {
		e.log.Warn().Str("ingredient", name).Err(err).Msg("translation failed, name_en left empty")
		deg = true
	} else {
		rec.NameEN = strings.TrimSpace(nameEN)
	}

	resp, err := withRetry(ctx, e.cfg.MaxRetries, func(ctx context.Context) (string, error) {
		return e.oracle.Classify(ctx, name, e.set)
	})
	if err != nil {
		e.log.Warn().Str("ingredient", name).Err(err).Msg("classification failed, using keyword fallback")
		deg = true
		resp = ""
	}
	rec.Category = e.set.Decode(resp, name)

	if syn, ok := e.syn[rec.NameNormalized]; ok {
		rec.Synonyms = padSynonyms(syn)
	} else {
		syn, err := withRetry(ctx, e.cfg.MaxRetries, func(ctx context.Context) ([]string, error) {
			return e.oracle.Synonyms(ctx, name)
		})
		if err != nil {
			e.log.Warn().Str("ingredient", name).Err(err).Msg("synonym generation failed, synonyms left empty")
			deg = true
		} else {
			rec.Synonyms = padSynonyms(syn)
		}
	}

	return rec, deg
}

// withRetry calls the oracle with exponential backoff between attempts.
func withRetry[T any](ctx context.Context, maxRetries int, call func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(backoff):
			}
		}
		v, err := call(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	return zero, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

// padSynonyms trims entries and fixes the list length at types.SynonymCount,
// truncating extras and padding with empty strings.
func padSynonyms(syn []string) []string {
	out := make([]string, types.SynonymCount)
	n := 0
	for _, s := range syn {
		if n == types.SynonymCount {
			break
		}
		out[n] = strings.TrimSpace(s)
		n++
	}
	return out
}

func deref(records []*types.Ingredient) []types.Ingredient {
	out := make([]types.Ingredient, len(records))
	for i, r := range records {
		out[i] = *r
	}
	return out
}
