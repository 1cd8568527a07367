package llmadapter

import (
	"context"
	"strconv"

	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/errs"
	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var log = logging.Component("llmadapter")

// confidenceLLM is the flat confidence weight assigned to every
// LLM-sourced entity; the Entity Merger's tie-break (spec.md §4.6)
// compares this against the Pattern Extractor's per-field weights.
const confidenceLLM = 0.75

// Adapter builds prompts and invokes the configured provider fallback
// ladder (spec.md §4.5, §4.11).
type Adapter struct {
	ladder []config.ProviderConfig
}

// New builds an Adapter over the given fallback ladder, tried in order.
func New(providers config.ProvidersConfig) *Adapter {
	return &Adapter{ladder: providers.Ladder}
}

// Outcome reports which rung of the fallback ladder actually produced
// the result, and which earlier rungs were tried and failed first
// (spec.md §6 metadata.providerUsed/fallbacksFired).
type Outcome struct {
	Provider       string
	FallbacksFired []string
}

// Extract runs the ladder until one provider succeeds and its response
// parses under the schema-safety invariant, or every provider has
// failed. When every provider failed it returns a nil result and an
// LLMProviderError, and the caller should fall back to pattern-only
// output (spec.md §4.5).
func (a *Adapter) Extract(ctx context.Context, notes []model.NormalizedNote) (*model.PartialExtraction, Outcome, error) {
	prompt := buildPrompt(notes)

	var lastErr error
	var fired []string
	for _, pc := range a.ladder {
		client, err := newClient(ctx, pc)
		if err != nil {
			log.Warnw("provider construction failed, trying next", "provider", pc.Name, "error", err)
			lastErr = err
			fired = append(fired, pc.Name)
			continue
		}

		response, err := client.CompleteWithSystem(ctx, systemPrompt, prompt)
		if err != nil {
			log.Warnw("provider call failed, trying next", "provider", pc.Name, "error", err)
			lastErr = err
			fired = append(fired, pc.Name)
			continue
		}

		raw, err := parseRaw(response)
		if err != nil {
			log.Warnw("provider response failed schema validation, trying next", "provider", pc.Name, "error", err)
			lastErr = err
			fired = append(fired, pc.Name)
			continue
		}

		result := toPartialExtraction(raw)
		return &result, Outcome{Provider: pc.Name, FallbacksFired: fired}, nil
	}

	if lastErr == nil {
		lastErr = errs.New(errs.KindLLMProvider, "llmadapter", "", "no providers configured", false, nil)
	}
	return nil, Outcome{FallbacksFired: fired}, errs.New(errs.KindLLMProvider, "llmadapter", "", "all providers in the fallback ladder failed", true, lastErr)
}

// toPartialExtraction converts a validated rawResponse into the same
// shape the Pattern Extractor produces, so the Entity Merger can treat
// both sources uniformly.
func toPartialExtraction(raw *rawResponse) model.PartialExtraction {
	result := model.NewPartialExtraction("llm")
	tc := model.TemporalContext{Category: model.CategoryUnknown, Kind: model.KindNewEvent, Confidence: confidenceLLM}

	if raw.Demographics.MRN != "" {
		result.Scalars = append(result.Scalars, entity(model.EntityDemographic, model.DemographicValue{Field: "mrn", Raw: raw.Demographics.MRN}, tc))
	}
	if raw.Demographics.DOB != "" {
		result.Scalars = append(result.Scalars, entity(model.EntityDemographic, model.DemographicValue{Field: "dob", Raw: raw.Demographics.DOB}, tc))
	}
	if raw.Demographics.Age != nil {
		result.Scalars = append(result.Scalars, entity(model.EntityDemographic, model.DemographicValue{Field: "age", Raw: strconv.Itoa(*raw.Demographics.Age)}, tc))
	}
	if raw.Demographics.Gender != "" {
		result.Scalars = append(result.Scalars, entity(model.EntityDemographic, model.DemographicValue{Field: "gender", Raw: raw.Demographics.Gender}, tc))
	}
	if raw.Demographics.Name != "" {
		result.Scalars = append(result.Scalars, entity(model.EntityDemographic, model.DemographicValue{Field: "name", Raw: raw.Demographics.Name}, tc))
	}
	if raw.Demographics.Attending != "" {
		result.Scalars = append(result.Scalars, entity(model.EntityDemographic, model.DemographicValue{Field: "attending", Raw: raw.Demographics.Attending}, tc))
	}

	if raw.Dates.Admission != "" {
		result.Scalars = append(result.Scalars, entity(model.EntityDate, model.DateValue{Field: "admission", ISO: raw.Dates.Admission}, tc))
	}
	for _, s := range raw.Dates.Surgery {
		result.Scalars = append(result.Scalars, entity(model.EntityDate, model.DateValue{Field: "surgery", ISO: s}, tc))
	}
	if raw.Dates.Discharge != "" {
		result.Scalars = append(result.Scalars, entity(model.EntityDate, model.DateValue{Field: "discharge", ISO: raw.Dates.Discharge}, tc))
	}
	if raw.Dates.Ictus != "" {
		result.Scalars = append(result.Scalars, entity(model.EntityDate, model.DateValue{Field: "ictus", ISO: raw.Dates.Ictus}, tc))
	}

	for _, s := range raw.Scores {
		result.Scores = append(result.Scores, entity(model.EntityFunctionalScore, model.ScoreValue{Scale: s.Scale, Value: s.Value}, tc))
	}
	for _, p := range raw.Procedures {
		result.Procedures = append(result.Procedures, entity(model.EntityProcedure, model.ProcedureValue{Name: p.Name, Date: p.Date}, tc))
	}
	for _, m := range raw.Medications {
		result.Medications = append(result.Medications, entity(model.EntityMedication, model.MedicationValue{Name: m.Name, Category: m.Category}, tc))
	}
	for _, c := range raw.Complications {
		result.Complications = append(result.Complications, entity(model.EntityComplication, model.ComplicationValue{Name: c.Name, Date: c.Date}, tc))
	}
	for _, c := range raw.Consultations {
		result.Consultations = append(result.Consultations, entity(model.EntityConsultation, model.ConsultationValue{Service: c.Service, Reason: c.Reason, Date: c.Date}, tc))
	}
	for _, im := range raw.Imaging {
		result.Imaging = append(result.Imaging, entity(model.EntityImagingFinding, model.ImagingFindingValue{Modality: im.Modality, Finding: im.Finding, Date: im.Date}, tc))
	}
	if raw.Disposition.Disposition != "" {
		result.Disposition = append(result.Disposition, entity(model.EntityDischargeDisposition, model.DischargeDispositionValue{Disposition: raw.Disposition.Disposition}, tc))
	}
	for _, f := range raw.FollowUps {
		result.FollowUps = append(result.FollowUps, entity(model.EntityFollowUp, model.FollowUpValue{Service: f.Service, Timing: f.Timing}, tc))
	}

	result.Suggestions = raw.Suggestions
	result.ValidationWarnings = raw.ValidationWarnings
	return result
}

func entity(kind model.EntityKind, value model.EntityValue, tc model.TemporalContext) model.ExtractedEntity {
	return model.ExtractedEntity{Kind: kind, Value: value, Confidence: confidenceLLM, TemporalContext: tc, Origin: "llm"}
}

