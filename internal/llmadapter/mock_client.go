package llmadapter

import "context"

// mockClient returns a fixed, schema-valid empty extraction object. It
// exists so the fallback ladder and the orchestrator's wiring can be
// exercised in tests and in offline/no-API-key environments without a
// network-dependent provider.
type mockClient struct{}

func newMockClient() *mockClient { return &mockClient{} }

func (m *mockClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return `{"demographics":{},"scores":[],"procedures":[],"medications":[],"complications":[],"consultations":[],"imaging":[],"followUps":[],"_suggestions":[],"_validationWarnings":[]}`, nil
}
