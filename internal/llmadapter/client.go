// Package llmadapter implements the LLM Extraction Adapter (spec.md
// §4.5): prompt construction against the same entity schema the
// Pattern Extractor covers, provider invocation across a configurable
// fallback ladder, and the JSON object-vs-string schema-safety
// invariant.
package llmadapter

import "context"

// Client is the provider-agnostic LLM completion interface every
// concrete provider implements.
type Client interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
