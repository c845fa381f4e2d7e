package stats_test

import (
	"testing"

	"readingtimer/internal/model"
	"readingtimer/internal/stats"
)

func TestReduceEmptyIsNil(t *testing.T) {
	if got := stats.Reduce(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
	if got := stats.Reduce([]model.Step{}); got != nil {
		t.Fatalf("expected nil for empty slice, got %+v", got)
	}
}

func TestReduceSingleStep(t *testing.T) {
	got := stats.Reduce([]model.Step{
		{StartPage: 5, EndPage: 5, PagesRead: 1},
	})
	if got == nil {
		t.Fatal("expected stats for one step")
	}
	if got.Count != 1 || got.SumPages != 1 || got.MinStart != 5 || got.MaxEnd != 5 || got.RangeLen != 1 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestReduceOverlappingStepsKeepsSumAndSpanDistinct(t *testing.T) {
	steps := []model.Step{
		{StartPage: 1, EndPage: 10, PagesRead: 10},
		{StartPage: 11, EndPage: 20, PagesRead: 10},
		{StartPage: 5, EndPage: 8, PagesRead: 4},
	}

	got := stats.Reduce(steps)
	if got == nil {
		t.Fatal("expected stats")
	}
	if got.Count != 3 {
		t.Fatalf("expected count 3, got %d", got.Count)
	}
	if got.SumPages != 24 {
		t.Fatalf("expected sumPages 24, got %d", got.SumPages)
	}
	if got.MinStart != 1 || got.MaxEnd != 20 {
		t.Fatalf("expected span 1-20, got %d-%d", got.MinStart, got.MaxEnd)
	}
	if got.RangeLen != 20 {
		t.Fatalf("expected rangeLen 20, got %d", got.RangeLen)
	}
	if got.SumPages == got.RangeLen {
		t.Fatal("sumPages and rangeLen should diverge for overlapping steps")
	}
}
