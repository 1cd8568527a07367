package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractedEntity_JSONRoundTrip_PreservesConcreteValue(t *testing.T) {
	original := ExtractedEntity{
		Kind:       EntityProcedure,
		Value:      ProcedureValue{Name: "coiling", Date: "2026-01-05"},
		Confidence: 0.9,
		Origin:     "pattern",
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ExtractedEntity
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, EntityProcedure, decoded.Kind)
	assert.Equal(t, ProcedureValue{Name: "coiling", Date: "2026-01-05"}, decoded.Value)
	assert.Equal(t, 0.9, decoded.Confidence)
}

func TestExtractedEntity_JSONRoundTrip_NilValue(t *testing.T) {
	original := ExtractedEntity{Kind: EntityDiagnosis}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ExtractedEntity
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded.Value)
}
