package cache

// Key identifies one cached stage result by the orchestrator's cache
// contract (spec.md §4.11): normalized-input-hash, stage-name, and the
// model that produced it (so a provider/model change invalidates the
// entry instead of silently reusing a stale result).
type Key struct {
	InputHash string
	Stage     string
	Model     string
}

func (k Key) String() string {
	return k.InputHash + "|" + k.Stage + "|" + k.Model
}
