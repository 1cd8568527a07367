package llmadapter

import (
	"encoding/json"
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/errs"
)

// rawResponse mirrors the fieldSchema documented in the prompt. Every
// collection is a slice so a missing field unmarshals to nil rather
// than erroring.
type rawResponse struct {
	Demographics struct {
		Name      string `json:"name"`
		MRN       string `json:"mrn"`
		DOB       string `json:"dob"`
		Age       *int   `json:"age"`
		Gender    string `json:"gender"`
		Attending string `json:"attending"`
	} `json:"demographics"`
	Dates struct {
		Admission string   `json:"admission"`
		Surgery   []string `json:"surgery"`
		Discharge string   `json:"discharge"`
		Ictus     string   `json:"ictus"`
	} `json:"dates"`
	Scores []struct {
		Scale string  `json:"scale"`
		Value float64 `json:"value"`
	} `json:"scores"`
	Procedures []struct {
		Name string `json:"name"`
		Date string `json:"date"`
	} `json:"procedures"`
	Medications []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	} `json:"medications"`
	Complications []struct {
		Name string `json:"name"`
		Date string `json:"date"`
	} `json:"complications"`
	Consultations []struct {
		Service string `json:"service"`
		Reason  string `json:"reason"`
		Date    string `json:"date"`
	} `json:"consultations"`
	Imaging []struct {
		Modality string `json:"modality"`
		Finding  string `json:"finding"`
		Date     string `json:"date"`
	} `json:"imaging"`
	Disposition struct {
		Disposition string `json:"disposition"`
	} `json:"disposition"`
	FollowUps []struct {
		Service string `json:"service"`
		Timing  string `json:"timing"`
	} `json:"followUps"`
	Suggestions        []string `json:"_suggestions"`
	ValidationWarnings []string `json:"_validationWarnings"`
}

// extractJSON finds the first balanced {...} object in response,
// tolerating markdown code-fence wrappers. Grounded on the teacher's
// extractJSON (internal/perception/transducer_llm.go).
func extractJSON(response string) string {
	start := strings.Index(response, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(response); i++ {
		switch response[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return response[start : i+1]
			}
		}
	}
	return ""
}

// parseRaw enforces the schema-safety invariant (spec.md §4.5): the
// provider must return a JSON object, never a string. A provider that
// double-encodes its payload as a JSON string literal is unwrapped once;
// any other failure to find or parse an object is a LLMSchemaError, not
// a silent empty result.
func parseRaw(response string) (*rawResponse, error) {
	var inner string
	if trimmed := strings.TrimSpace(response); strings.HasPrefix(trimmed, `"`) && json.Unmarshal([]byte(trimmed), &inner) == nil {
		response = inner
	}
	jsonStr := extractJSON(response)
	if jsonStr == "" {
		return nil, errs.New(errs.KindLLMSchema, "llmadapter", "", "no JSON object found in provider response", false, nil)
	}

	var raw rawResponse
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, errs.New(errs.KindLLMSchema, "llmadapter", "", "provider response did not match the object schema", false, err)
	}
	return &raw, nil
}
