package orchestrator

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/cache"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// inputHash fingerprints the normalized note set so a re-run over the
// same notes (same order, same text) hits the cache regardless of
// object identity (spec.md §4.11, §9).
func inputHash(notes []model.NormalizedNote) string {
	var b strings.Builder
	for _, n := range notes {
		b.WriteString(n.Text)
		b.WriteByte('\x00')
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func stageKey(hash, stage, modelName string) cache.Key {
	return cache.Key{InputHash: hash, Stage: stage, Model: modelName}
}
