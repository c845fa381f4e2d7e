package service_test

import (
	"context"
	"testing"
	"time"

	"readingtimer/internal/model"
	"readingtimer/internal/service"
)

func TestEmptySelectorShortCircuits(t *testing.T) {
	// A nil repository proves the short-circuits never reach the store.
	svc := service.NewStatsService(nil)
	ctx := context.Background()

	dates, apiErr := svc.Dates(ctx, "")
	if apiErr != nil || len(dates) != 0 {
		t.Fatalf("expected empty dates for empty user, got %v (%v)", dates, apiErr)
	}

	books, apiErr := svc.Books(ctx, "alice", nil)
	if apiErr != nil || len(books) != 0 {
		t.Fatalf("expected empty books for empty date set, got %v (%v)", books, apiErr)
	}

	steps, apiErr := svc.Steps(ctx, "alice", nil, "Dune")
	if apiErr != nil || len(steps) != 0 {
		t.Fatalf("expected empty steps for empty date set, got %v (%v)", steps, apiErr)
	}

	steps, apiErr = svc.Steps(ctx, "alice", []string{"2026-01-05"}, "")
	if apiErr != nil || len(steps) != 0 {
		t.Fatalf("expected empty steps for empty book, got %v (%v)", steps, apiErr)
	}

	summary, apiErr := svc.Summary(ctx, "alice", nil, "Dune")
	if apiErr != nil {
		t.Fatalf("summary errored: %v", apiErr)
	}
	if summary != nil {
		t.Fatalf("expected nil summary for empty selection, got %+v", summary)
	}
}

func TestPipelineOrdering(t *testing.T) {
	repo := newTestRepo(t)
	svc := service.NewStatsService(repo)
	ctx := context.Background()

	insert := func(user, date, book string, start, end int, ts int64) {
		t.Helper()
		step := &model.Step{
			User: user, Date: date, Book: book,
			StartPage: start, EndPage: end,
			PagesRead: model.PagesRead(start, end),
			Timestamp: ts,
		}
		if err := repo.Insert(ctx, step); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	// Inserted out of timestamp order on purpose.
	insert("alice", "2026-01-06", "Dune", 21, 30, 3000)
	insert("alice", "2026-01-05", "Dune", 1, 10, 1000)
	insert("alice", "2026-01-05", "Dune", 10, 20, 2000)
	insert("alice", "2026-01-05", "hyperion", 1, 5, 1500)
	insert("Bob", "2026-01-04", "Dune", 1, 3, 500)

	users, apiErr := svc.Users(ctx)
	if apiErr != nil {
		t.Fatalf("users: %v", apiErr)
	}
	// Case-insensitive ascending: "alice" sorts before "Bob".
	if len(users) != 2 || users[0] != "alice" || users[1] != "Bob" {
		t.Fatalf("unexpected user order: %v", users)
	}

	dates, apiErr := svc.Dates(ctx, "alice")
	if apiErr != nil {
		t.Fatalf("dates: %v", apiErr)
	}
	if len(dates) != 2 || dates[0] != "2026-01-05" || dates[1] != "2026-01-06" {
		t.Fatalf("expected ascending dates, got %v", dates)
	}

	books, apiErr := svc.Books(ctx, "alice", dates)
	if apiErr != nil {
		t.Fatalf("books: %v", apiErr)
	}
	if len(books) != 2 || books[0] != "Dune" || books[1] != "hyperion" {
		t.Fatalf("unexpected book order: %v", books)
	}

	steps, apiErr := svc.Steps(ctx, "alice", dates, "Dune")
	if apiErr != nil {
		t.Fatalf("steps: %v", apiErr)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i := 1; i < len(steps); i++ {
		if steps[i].Timestamp < steps[i-1].Timestamp {
			t.Fatalf("steps not ordered by timestamp: %v", steps)
		}
	}

	// Narrowing to one date excludes the other day's step.
	steps, apiErr = svc.Steps(ctx, "alice", []string{"2026-01-05"}, "Dune")
	if apiErr != nil {
		t.Fatalf("steps: %v", apiErr)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps for single date, got %d", len(steps))
	}

	summary, apiErr := svc.Summary(ctx, "alice", []string{"2026-01-05"}, "Dune")
	if apiErr != nil {
		t.Fatalf("summary: %v", apiErr)
	}
	if summary == nil {
		t.Fatal("expected summary")
	}
	if summary.Count != 2 || summary.SumPages != 21 || summary.RangeLen != 20 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestAdminTokenRoundTrip(t *testing.T) {
	svc, err := service.NewAdminService("letmein", "test-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("new admin service: %v", err)
	}

	if _, apiErr := svc.Login("wrong"); apiErr == nil {
		t.Fatal("expected unauthorized for wrong password")
	}
	if _, apiErr := svc.Login(""); apiErr == nil {
		t.Fatal("expected error for empty password")
	}

	token, apiErr := svc.Login("letmein")
	if apiErr != nil {
		t.Fatalf("login failed: %v", apiErr)
	}
	if apiErr := svc.ParseToken(token); apiErr != nil {
		t.Fatalf("valid token rejected: %v", apiErr)
	}
	if apiErr := svc.ParseToken("not-a-token"); apiErr == nil {
		t.Fatal("expected rejection for garbage token")
	}

	// A token signed with another secret must be rejected.
	other, err := service.NewAdminService("letmein", "other-secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("new admin service: %v", err)
	}
	foreign, apiErr := other.Login("letmein")
	if apiErr != nil {
		t.Fatalf("login failed: %v", apiErr)
	}
	if apiErr := svc.ParseToken(foreign); apiErr == nil {
		t.Fatal("expected rejection for token signed with another secret")
	}
}
