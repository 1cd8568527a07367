package temporal

import "github.com/ramihatou97/dcs-sub003/internal/model"

// phraseKind classifies which of the three mention-kind families a
// dictionary phrase belongs to (spec.md §4.3).
type phraseKind int

const (
	phraseReference phraseKind = iota
	phraseNewEvent
	phraseContinuation
	phraseCurrentDay // overrides reference phrasing, spec.md §4.3 edge case
)

// phraseEntry pairs one matchable phrase with the kind it signals.
type phraseEntry struct {
	phrase string
	kind   phraseKind
}

// referenceAndEventPhrases is the combined dictionary scanned in one
// Aho-Corasick pass per window. Order doesn't matter to the automaton;
// LeftmostLongest match kind prefers the longer of two overlapping
// phrases (e.g. "status post" over "status").
var referenceAndEventPhrases = []phraseEntry{
	{"s/p", phraseReference},
	{"status post", phraseReference},
	{"h/o", phraseReference},
	{"history of", phraseReference},
	{"prior ", phraseReference},
	{"previously", phraseReference},

	{"underwent", phraseNewEvent},
	{"performed", phraseNewEvent},
	{"developed", phraseNewEvent},
	{"noted today", phraseNewEvent},
	{"new onset", phraseNewEvent},
	{"now presents with", phraseNewEvent},

	{"continues to", phraseContinuation},
	{"ongoing", phraseContinuation},
	{"persists", phraseContinuation},
	{"persistent", phraseContinuation},
	{"remains", phraseContinuation},

	// Current-day markers override reference phrasing: "s/p coiling
	// today" must still classify as new_event (spec.md §4.3 edge case).
	{"today", phraseCurrentDay},
	{"this morning", phraseCurrentDay},
	{"this afternoon", phraseCurrentDay},
	{"this evening", phraseCurrentDay},
	{"just now", phraseCurrentDay},
}

// categoryEntry pairs a keyword with the TemporalCategory it signals.
type categoryEntry struct {
	phrase   string
	category model.TemporalCategory
}

// categoryKeywords is the keyword-to-category dictionary (spec.md §4.3).
var categoryKeywords = []categoryEntry{
	{"on admission", model.CategoryAdmission},
	{"at admission", model.CategoryAdmission},
	{"on presentation", model.CategoryAdmission},
	{"at discharge", model.CategoryDischarge},
	{"upon discharge", model.CategoryDischarge},
	{"prior to surgery", model.CategoryPreop},
	{"preoperatively", model.CategoryPreop},
	{"pre-op", model.CategoryPreop},
	{"postoperatively", model.CategoryPostop},
	{"post-op", model.CategoryPostop},
	{"chronic", model.CategoryChronic},
	{"longstanding", model.CategoryChronic},
	{"acute", model.CategoryAcute},
	{"acutely", model.CategoryAcute},
	{"currently", model.CategoryPresent},
	{"at this time", model.CategoryPresent},
	{"will", model.CategoryFuture},
	{"planned", model.CategoryFuture},
	{"history of", model.CategoryPast},
	{"previously", model.CategoryPast},
}
