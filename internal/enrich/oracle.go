// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import "context"

// Oracle is the language-model boundary for enrichment. It is constructed
// once before the batch and only ever reached through this interface; no
// stage holds model state of its own. Tests supply a mock, production uses
// the client in internal/oracle.
//
// Calls are idempotent and independent per ingredient, so the enricher may
// issue them from any number of workers in any order.
type Oracle interface {
	// Translate returns the English name for a Vietnamese ingredient name.
	Translate(ctx context.Context, name string) (string, error)

	// Classify returns the raw response to the classification prompt built
	// from the given label set. The enricher decodes it; implementations do
	// not need to return a bare label code.
	Classify(ctx context.Context, name string, set CategorySet) (string, error)

	// Synonyms returns up to types.SynonymCount alternative Vietnamese
	// names. The enricher pads short results.
	Synonyms(ctx context.Context, name string) ([]string, error)
}
