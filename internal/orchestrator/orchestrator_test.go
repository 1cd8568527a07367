package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// TestMain verifies the errgroup fan-out in extractBoth and the
// provider/narrative clients it spawns never leak a goroutine past the
// end of a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Providers = config.ProvidersConfig{Ladder: []config.ProviderConfig{
		{Name: "primary", Kind: "mock", Model: "mock-v1"},
	}}
	cfg.Cache.PersistPath = ""
	cfg.Pipeline.StageTimeout = time.Second
	return cfg
}

func sampleNotes() []model.ClinicalNote {
	return []model.ClinicalNote{
		{Text: "Patient Name: Jane Doe. MRN: 1234567. DOB: 1960-05-02. 65 yo female. Admission date: 2026-01-01. Attending: Dr. Smith."},
		{Text: "2026-01-02: Underwent coiling of anterior communicating artery aneurysm. Hunt-Hess grade 3."},
		{Text: "POD#1: Patient developed vasospasm. Started on nimodipine."},
		{Text: "Discharge date: 2026-01-10. Discharged home in stable condition with follow up in neurosurgery clinic in 2 weeks."},
	}
}

func TestRun_ProducesFullResponseWithMockProvider(t *testing.T) {
	o, err := New(testConfig())
	require.NoError(t, err)
	defer o.Close()

	resp, err := o.Run(context.Background(), sampleNotes(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "1234567", resp.Extracted.Demographics.MRN)
	assert.NotEmpty(t, resp.Narrative.ChiefComplaint)
	assert.NotEmpty(t, resp.Quality.Dimensions)
	assert.Greater(t, resp.Metadata.ProcessingTimeMs, int64(-1))
}

func TestRun_EnableLLMFalse_SkipsProviderLadderEntirely(t *testing.T) {
	o, err := New(testConfig())
	require.NoError(t, err)
	defer o.Close()

	disable := false
	resp, err := o.Run(context.Background(), sampleNotes(), Options{EnableLLM: &disable})
	require.NoError(t, err)

	assert.Equal(t, "", resp.Metadata.ProviderUsed)
	assert.Empty(t, resp.Metadata.FallbacksFired)
}

func TestRun_AllProvidersFail_FallsBackToPatternAndTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.Providers = config.ProvidersConfig{Ladder: []config.ProviderConfig{
		{Name: "primary", Kind: "unknown-provider"},
	}}
	o, err := New(cfg)
	require.NoError(t, err)
	defer o.Close()

	resp, err := o.Run(context.Background(), sampleNotes(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"primary"}, resp.Metadata.FallbacksFired)
	assert.NotEmpty(t, resp.Extracted.Demographics.MRN, "pattern extraction must still run")
	assert.NotEmpty(t, resp.Narrative.ChiefComplaint, "template mode must still produce a narrative")
}

func TestRun_Idempotent_SameInputProducesIdenticalExtraction(t *testing.T) {
	o, err := New(testConfig())
	require.NoError(t, err)
	defer o.Close()

	notes := sampleNotes()
	first, err := o.Run(context.Background(), notes, Options{})
	require.NoError(t, err)
	second, err := o.Run(context.Background(), notes, Options{})
	require.NoError(t, err)

	if diff := cmp.Diff(first.Extracted, second.Extracted); diff != "" {
		t.Errorf("extraction differs between identical runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Timeline, second.Timeline); diff != "" {
		t.Errorf("timeline differs between identical runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Quality, second.Quality); diff != "" {
		t.Errorf("quality report differs between identical runs (-first +second):\n%s", diff)
	}
}

func TestRun_SecondCallHitsCache(t *testing.T) {
	o, err := New(testConfig())
	require.NoError(t, err)
	defer o.Close()

	notes := sampleNotes()
	_, err = o.Run(context.Background(), notes, Options{})
	require.NoError(t, err)

	resp, err := o.Run(context.Background(), notes, Options{})
	require.NoError(t, err)

	assert.Greater(t, resp.Metadata.CacheHits, 0)
}

func TestRun_ContextCancellation_ReturnsErrorWithoutPanicking(t *testing.T) {
	o, err := New(testConfig())
	require.NoError(t, err)
	defer o.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = o.Run(ctx, sampleNotes(), Options{})
	assert.Error(t, err)
}

func TestLadderFor_ReordersToNamedProvider(t *testing.T) {
	base := config.ProvidersConfig{Ladder: []config.ProviderConfig{
		{Name: "primary"}, {Name: "secondary"}, {Name: "tertiary"},
	}}
	out := ladderFor(base, Options{LLMProvider: "tertiary"})
	require.Len(t, out.Ladder, 3)
	assert.Equal(t, "tertiary", out.Ladder[0].Name)
	assert.Equal(t, "primary", out.Ladder[1].Name)
	assert.Equal(t, "secondary", out.Ladder[2].Name)
}

func TestLadderFor_UnknownProviderNameLeavesLadderUnchanged(t *testing.T) {
	base := config.ProvidersConfig{Ladder: []config.ProviderConfig{{Name: "primary"}}}
	out := ladderFor(base, Options{LLMProvider: "does-not-exist"})
	assert.Equal(t, base, out)
}

func TestResolved_OverridesOnlySetFields(t *testing.T) {
	base := config.PipelineConfig{Mode: config.ModePreserveAllInfo, QualityThreshold: 0.85, MaxRefinementIterations: 2}
	out := resolved(base, Options{QualityThreshold: 0.95})
	assert.Equal(t, config.ModePreserveAllInfo, out.Mode)
	assert.Equal(t, 0.95, out.QualityThreshold)
	assert.Equal(t, 2, out.MaxRefinementIterations)
}
