package service

import (
	"context"
	"strings"

	apperrors "readingtimer/internal/errors"
	"readingtimer/internal/model"
	"readingtimer/internal/repository"
	"readingtimer/internal/stats"
)

// StatsService is the four-stage narrowing pipeline behind the admin view:
// users, then dates for a user, then books for a user and date set, then the
// steps themselves. An empty selector at any stage short-circuits to an empty
// result before any query runs; a filter over nothing can never match.
type StatsService struct {
	repo *repository.StepRepository
}

func NewStatsService(repo *repository.StepRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Users(ctx context.Context) ([]string, *apperrors.APIError) {
	users, err := s.repo.ListDistinctUsers(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list users")
	}
	return users, nil
}

func (s *StatsService) Dates(ctx context.Context, user string) ([]string, *apperrors.APIError) {
	if strings.TrimSpace(user) == "" {
		return []string{}, nil
	}
	dates, err := s.repo.ListDistinctDates(ctx, user)
	if err != nil {
		return nil, apperrors.Internal("failed to list dates")
	}
	return dates, nil
}

func (s *StatsService) Books(ctx context.Context, user string, dates []string) ([]string, *apperrors.APIError) {
	if strings.TrimSpace(user) == "" || len(dates) == 0 {
		return []string{}, nil
	}
	books, err := s.repo.ListDistinctBooks(ctx, user, dates)
	if err != nil {
		return nil, apperrors.Internal("failed to list books")
	}
	return books, nil
}

func (s *StatsService) Steps(ctx context.Context, user string, dates []string, book string) ([]model.Step, *apperrors.APIError) {
	if strings.TrimSpace(user) == "" || len(dates) == 0 || strings.TrimSpace(book) == "" {
		return []model.Step{}, nil
	}
	steps, err := s.repo.ListSteps(ctx, user, dates, book)
	if err != nil {
		return nil, apperrors.Internal("failed to list steps")
	}
	return steps, nil
}

// Summary reduces the selected steps server-side. A nil result means the
// selection matched nothing.
func (s *StatsService) Summary(ctx context.Context, user string, dates []string, book string) (*stats.Stats, *apperrors.APIError) {
	steps, apiErr := s.Steps(ctx, user, dates, book)
	if apiErr != nil {
		return nil, apiErr
	}
	return stats.Reduce(steps), nil
}
