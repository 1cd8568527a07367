package dedup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func notesOf(texts ...string) []model.NormalizedNote {
	out := make([]model.NormalizedNote, len(texts))
	for i, t := range texts {
		out[i] = model.NormalizedNote{Text: t, SourceIndex: i}
	}
	return out
}

func TestDedupe_ExactDuplicateDropped(t *testing.T) {
	d := New()
	notes := notesOf(
		"Patient admitted with SAH. Hunt-Hess grade III.",
		"Patient admitted with SAH. Hunt-Hess grade III.",
	)

	final, metrics := d.Dedupe(notes)

	assert.Equal(t, 1, metrics.ExactDropped)
	assert.Len(t, final, 1)
}

func TestDedupe_NearDuplicateKeepsHigherDensity(t *testing.T) {
	d := New()
	notes := notesOf(
		"Patient admitted with subarachnoid hemorrhage Hunt-Hess grade three vasospasm noted craniotomy performed",
		"Patient admitted with subarachnoid hemorrhage Hunt-Hess grade three noted craniotomy performed",
	)

	final, metrics := d.Dedupe(notes)

	require.Len(t, final, 1)
	assert.Equal(t, 1, metrics.NearDropped)
	assert.Contains(t, final[0].Text, "vasospasm")
}

func TestDedupe_SentenceLevelDedupAcrossNotes(t *testing.T) {
	d := New()
	notes := notesOf(
		"Patient underwent craniotomy for clot evacuation. Neuro exam intact.",
		"Patient developed a wound infection on POD#3. Patient underwent craniotomy for clot evacuation.",
	)

	final, metrics := d.Dedupe(notes)

	assert.GreaterOrEqual(t, metrics.SentenceDropped, 1)
	allText := ""
	for _, n := range final {
		allText += n.Text + " "
	}
	assert.Contains(t, allText, "wound infection")
	assert.Contains(t, allText, "craniotomy")
}

func TestDedupe_ComplementaryMergeConcatenatesChronologically(t *testing.T) {
	d := New()
	notes := notesOf(
		"Neurosurgery progress note regarding postoperative course and wound check today.",
		"Nursing note regarding postoperative vitals and medication check today.",
	)

	final, metrics := d.Dedupe(notes)

	require.Equal(t, 1, metrics.Merged)
	require.Len(t, final, 1)
	assert.Contains(t, final[0].Text, "Neurosurgery")
	assert.Contains(t, final[0].Text, "Nursing")
	assert.Less(t, strings.Index(final[0].Text, "Neurosurgery"), strings.Index(final[0].Text, "Nursing"))
}

func TestDedupe_InformationPreservation_NoUniqueTokenLost(t *testing.T) {
	d := New()
	notes := notesOf(
		"Patient has a unique finding calledxyzzyqux present on exam.",
		"Patient has a unique finding calledxyzzyqux present on exam.",
	)

	final, _ := d.Dedupe(notes)

	found := false
	for _, n := range final {
		if strings.Contains(n.Text, "calledxyzzyqux") {
			found = true
		}
	}
	assert.True(t, found, "a token unique to the discarded duplicate must survive in the retained note")
}

func TestDedupe_Metrics_EmptyInput(t *testing.T) {
	d := New()
	final, metrics := d.Dedupe(nil)

	assert.Empty(t, final)
	assert.Equal(t, 0, metrics.OriginalCount)
	assert.Equal(t, 0.0, metrics.ReductionPct)
}
