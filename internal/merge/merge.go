// Package merge implements the Entity Merger (spec.md §4.6): combining
// the Pattern Extractor's and LLM Extraction Adapter's independent
// PartialExtractions into one ExtractionRecord.
package merge

import (
	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var log = logging.Component("merge")

// Merger reconciles two PartialExtractions. It holds no state; every
// request gets a new ExtractionRecord (spec.md §3 Ownership).
type Merger struct{}

// New returns a Merger.
func New() *Merger { return &Merger{} }

// Merge combines pattern- and LLM-sourced partial extractions.
func (m *Merger) Merge(pattern, llm model.PartialExtraction) model.ExtractionRecord {
	record := model.NewExtractionRecord()

	mergedScalars, disagreements := mergeScalars(pattern.Scalars, llm.Scalars)
	record.Demographics, record.Dates = splitScalars(mergedScalars)
	record.AuditDisagreements = disagreements

	record.Scores = mergeCollection(pattern.Scores, llm.Scores)
	record.Procedures = mergeCollection(pattern.Procedures, llm.Procedures)
	record.Medications = mergeCollection(pattern.Medications, llm.Medications)
	record.Complications = mergeCollection(pattern.Complications, llm.Complications)
	record.Examinations = mergeCollection(pattern.Examinations, llm.Examinations)
	record.Consultations = mergeCollection(pattern.Consultations, llm.Consultations)
	record.Imaging = mergeCollection(pattern.Imaging, llm.Imaging)
	record.FollowUps = mergeCollection(pattern.FollowUps, llm.FollowUps)

	if disposition := mergeCollection(pattern.Disposition, llm.Disposition); len(disposition) > 0 {
		record.Disposition = &disposition[0]
	}

	record.Suggestions = append(record.Suggestions, llm.Suggestions...)
	record.ValidationWarnings = append(record.ValidationWarnings, llm.ValidationWarnings...)

	log.Infow("entity merge complete",
		"disagreements", len(disagreements),
		"procedures", len(record.Procedures),
		"complications", len(record.Complications),
	)
	return record
}
