package llmadapter

import (
	"fmt"
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// systemPrompt instructs the LLM to extract the same entity schema the
// Pattern Extractor covers, grounded on the teacher's
// defaultSystemPrompt + buildPrompt split in
// internal/perception/transducer_llm.go, generalized from "answer the
// user's question" to "extract structured entities from clinical text".
const systemPrompt = `You extract structured clinical entities from discharge-relevant hospital notes.
Rules:
- Extract only facts explicitly documented in the provided text. Never infer, extrapolate, or guess a value that is not written.
- Return a single JSON object, never a JSON-encoded string, never prose, never a markdown code fence.
- Every field you cannot support with text is omitted, not guessed.
- Mark any field you believe is missing from the source text in "_suggestions".
- Mark any documented value that looks clinically implausible in "_validationWarnings".`

// fieldSchema documents the JSON shape the LLM must return, marking
// each field critical (C) or optional (O) per spec.md §4.5.
const fieldSchema = `{
  "demographics": {"name": "O string", "mrn": "C string", "dob": "C ISO date", "age": "O int", "gender": "O string", "attending": "O string"},
  "dates": {"admission": "C ISO date", "surgery": "C [ISO date]", "discharge": "C ISO date", "ictus": "O ISO date"},
  "scores": [{"scale": "C one of huntHess|fisher|modifiedFisher|gcsTotal|gcsE|gcsM|gcsV|mrs|kps|ecog|nihss", "value": "C number"}],
  "procedures": [{"name": "C string", "date": "O ISO date"}],
  "medications": [{"name": "C string", "category": "O one of anticoagulation|AED|antibiotic|other"}],
  "complications": [{"name": "C string", "date": "O ISO date"}],
  "consultations": [{"service": "C string", "reason": "O string", "date": "O ISO date"}],
  "imaging": [{"modality": "C one of CT|MRI|angiography", "finding": "O string", "date": "O ISO date"}],
  "disposition": {"disposition": "C one of home|rehab|SNF|LTAC|other"},
  "followUps": [{"service": "C string", "timing": "O string"}],
  "_suggestions": ["string"],
  "_validationWarnings": ["string"]
}`

// buildPrompt assembles the user-turn prompt from the normalized notes,
// grounded on the teacher's buildPrompt (internal/perception/transducer_llm.go),
// generalized from conversation history to a flat note list.
func buildPrompt(notes []model.NormalizedNote) string {
	var sb strings.Builder
	sb.WriteString("Return a JSON object with exactly this shape (C=critical, O=optional field):\n")
	sb.WriteString(fieldSchema)
	sb.WriteString("\n\nClinical notes, in input order:\n")
	for i, n := range notes {
		fmt.Fprintf(&sb, "\n--- Note %d ---\n%s\n", i, n.Text)
	}
	return sb.String()
}
