package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/config"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	require.NoError(t, w.Close())
	os.Stdout = orig
	return <-done
}

func writeNotesFile(t *testing.T, notes string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(notes), 0644))
	return path
}

func TestLoadNotes_ParsesTextAndAuthoredAt(t *testing.T) {
	path := writeNotesFile(t, `[
		{"text": "Patient admitted for headache.", "authoredAt": "2026-01-01T00:00:00Z"},
		{"text": "Discharged home."}
	]`)

	notes, err := loadNotes(path)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Patient admitted for headache.", notes[0].Text)
	require.NotNil(t, notes[0].AuthoredAt)
	assert.Nil(t, notes[1].AuthoredAt)
}

func TestLoadNotes_MissingFile(t *testing.T) {
	_, err := loadNotes(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestLoadNotes_InvalidJSON(t *testing.T) {
	path := writeNotesFile(t, `{not valid json`)
	_, err := loadNotes(path)
	assert.Error(t, err)
}

func TestRunGenerate_MockProviderProducesJSONResponse(t *testing.T) {
	cfg = config.Default()
	cfg.Providers = config.ProvidersConfig{Ladder: []config.ProviderConfig{
		{Name: "primary", Kind: "mock", Model: "mock-v1"},
	}}
	cfg.Cache.PersistPath = ""

	notesPath = writeNotesFile(t, `[
		{"text": "Patient Name: Jane Doe. MRN: 1234567. Admission date: 2026-01-01."},
		{"text": "Discharge date: 2026-01-05. Discharged home."}
	]`)
	outputFormat = "json"
	genMode, genProvider = "", ""
	genQualityMin, genMaxIterations = 0, 0
	genNoLLM, genTimeout = false, 0
	defer func() { notesPath, outputFormat = "", "text" }()

	out := captureOutput(t, func() {
		err := runGenerate(&cobra.Command{}, nil)
		require.NoError(t, err)
	})

	type demographics struct {
		MRN string `json:"mrn"`
	}
	type extracted struct {
		Demographics demographics `json:"demographics"`
	}
	var resp struct {
		Extracted extracted `json:"extracted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "1234567", resp.Extracted.Demographics.MRN)
}

func TestRunGenerate_EmptyNotesFileFails(t *testing.T) {
	cfg = config.Default()
	notesPath = writeNotesFile(t, `[]`)
	defer func() { notesPath = "" }()

	err := runGenerate(&cobra.Command{}, nil)
	assert.Error(t, err)
}

func TestRunConfigShow_PrintsYAML(t *testing.T) {
	cfg = config.Default()
	out := captureOutput(t, func() {
		require.NoError(t, runConfigShow(&cobra.Command{}, nil))
	})
	assert.Contains(t, out, "mode:")
	assert.Contains(t, out, "quality_threshold:")
}

func TestRunScore_RescoresFromGenerateOutput(t *testing.T) {
	cfg = config.Default()
	cfg.Providers = config.ProvidersConfig{Ladder: []config.ProviderConfig{
		{Name: "primary", Kind: "mock", Model: "mock-v1"},
	}}
	cfg.Cache.PersistPath = ""

	notesPath = writeNotesFile(t, `[{"text": "Patient Name: Jane Doe. MRN: 7654321. Admission date: 2026-01-01. Discharge date: 2026-01-03."}]`)
	outputFormat = "json"
	defer func() { notesPath, outputFormat = "", "text" }()

	genJSON := captureOutput(t, func() {
		require.NoError(t, runGenerate(&cobra.Command{}, nil))
	})

	resultPath := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(resultPath, []byte(genJSON), 0644))

	scoreInputPath = resultPath
	outputFormat = "json"
	defer func() { scoreInputPath = "" }()

	scoreJSON := captureOutput(t, func() {
		require.NoError(t, runScore(&cobra.Command{}, nil))
	})

	var report struct {
		Overall float64 `json:"overall"`
	}
	require.NoError(t, json.Unmarshal([]byte(scoreJSON), &report))
	assert.Greater(t, report.Overall, 0.0)
}
