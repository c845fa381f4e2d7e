// Package stats reduces a list of recorded steps to summary numbers. The
// reduction is pure and cheap enough to recompute on every read.
package stats

import "readingtimer/internal/model"

// Stats summarizes a set of steps. SumPages adds up the per-step page counts
// while RangeLen is the overall span from the lowest start to the highest end;
// the two diverge whenever steps overlap or skip pages, so both are kept.
type Stats struct {
	Count    int `json:"count"`
	SumPages int `json:"sumPages"`
	MinStart int `json:"minStart"`
	MaxEnd   int `json:"maxEnd"`
	RangeLen int `json:"rangeLen"`
}

// Reduce returns nil when steps is empty.
func Reduce(steps []model.Step) *Stats {
	if len(steps) == 0 {
		return nil
	}

	result := Stats{
		Count:    len(steps),
		MinStart: steps[0].StartPage,
		MaxEnd:   steps[0].EndPage,
	}
	for _, step := range steps {
		result.SumPages += step.PagesRead
		if step.StartPage < result.MinStart {
			result.MinStart = step.StartPage
		}
		if step.EndPage > result.MaxEnd {
			result.MaxEnd = step.EndPage
		}
	}

	result.RangeLen = model.PagesRead(result.MinStart, result.MaxEnd)
	return &result
}
