package quality

import (
	"fmt"
	"math"
	"time"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// scoreTimeliness compares actual processing time against the
// orchestrator's configured target, penalizing overruns linearly and
// never rewarding being under target beyond a perfect score.
func scoreTimeliness(processingTime, target time.Duration) model.DimensionScore {
	if target <= 0 {
		return model.DimensionScore{Score: 1, Details: "no timeliness target configured"}
	}

	ratio := float64(processingTime) / float64(target)
	score := 1.0
	var issues []model.Issue
	details := fmt.Sprintf("processed within target %s", target)
	if ratio > 1 {
		score = math.Max(0, 1-(ratio-1))
		issues = append(issues, model.Issue{
			Severity: model.SeverityWarning, Code: "SLOW_PROCESSING",
			Message:   fmt.Sprintf("processing took %s, target was %s", processingTime, target),
			Dimension: string(model.DimensionTimeliness),
		})
		details = fmt.Sprintf("processed in %s (target %s)", processingTime, target)
	}

	return model.DimensionScore{
		Score:   score,
		Issues:  issues,
		Details: details,
	}
}
