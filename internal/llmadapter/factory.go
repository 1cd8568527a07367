package llmadapter

import (
	"context"
	"fmt"

	"github.com/ramihatou97/dcs-sub003/internal/config"
)

// newClient builds one provider Client from its rung of the fallback
// ladder, grounded on the teacher's NewClientFromConfig provider
// switch (internal/perception/client_factory.go), generalized to this
// domain's smaller provider set.
func newClient(ctx context.Context, pc config.ProviderConfig) (Client, error) {
	switch pc.Kind {
	case "genai":
		return newGenAIClient(ctx, pc.APIKey, pc.Model)
	case "mock":
		return newMockClient(), nil
	default:
		return nil, fmt.Errorf("llmadapter: unknown provider kind %q", pc.Kind)
	}
}

// NewClient exposes the provider factory to other components (the
// Narrative Generator and Orchestrator) that need to walk the same
// fallback ladder for non-extraction completions.
func NewClient(ctx context.Context, pc config.ProviderConfig) (Client, error) {
	return newClient(ctx, pc)
}
