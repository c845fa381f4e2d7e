package service

import (
	"context"
	"strings"
	"time"

	apperrors "readingtimer/internal/errors"
	"readingtimer/internal/model"
	"readingtimer/internal/repository"
)

// StepService validates and records one step per completed timer cycle. All
// validation happens before the insert, so a rejected request leaves no row
// behind; the insert itself is a single synchronous write.
type StepService struct {
	repo *repository.StepRepository
}

func NewStepService(repo *repository.StepRepository) *StepService {
	return &StepService{repo: repo}
}

// RecordStepInput carries the raw request fields. Pointer fields distinguish
// "absent" from zero so missing integers are rejected rather than defaulted.
type RecordStepInput struct {
	User      string
	Date      string
	Book      string
	StartPage *int
	EndPage   *int
	Timestamp *int64
}

// Record writes one step. A session is the sequence of steps sharing the same
// user, book and date: the first step must supply a startPage of at least 1,
// and every later step inherits the previous step's endPage. The store has no
// session concept, so the chaining guard lives here.
func (s *StepService) Record(ctx context.Context, input RecordStepInput) (*model.Step, *apperrors.APIError) {
	user := strings.TrimSpace(input.User)
	date := strings.TrimSpace(input.Date)
	book := strings.TrimSpace(input.Book)

	if user == "" {
		return nil, apperrors.BadRequest("invalid_user", "user is required")
	}
	if date == "" {
		return nil, apperrors.BadRequest("invalid_date", "date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}
	if book == "" {
		return nil, apperrors.BadRequest("invalid_book", "book is required")
	}
	if input.EndPage == nil {
		return nil, apperrors.BadRequest("invalid_pages", "endPage is required")
	}
	if input.Timestamp == nil {
		return nil, apperrors.BadRequest("invalid_timestamp", "timestamp is required")
	}

	previous, err := s.repo.LatestStep(ctx, user, book, date)
	if err != nil && err != repository.ErrNotFound {
		return nil, apperrors.Internal("failed to query previous step")
	}

	var startPage int
	if err == repository.ErrNotFound {
		if input.StartPage == nil {
			return nil, apperrors.BadRequest("invalid_start_page", "startPage is required for the first step of a session")
		}
		if *input.StartPage < 1 {
			return nil, apperrors.BadRequest("invalid_start_page", "startPage must be at least 1")
		}
		startPage = *input.StartPage
	} else {
		if input.StartPage != nil {
			return nil, apperrors.BadRequest("invalid_start_page", "startPage is derived from the previous step and must be omitted")
		}
		startPage = previous.EndPage
	}

	endPage := *input.EndPage
	if endPage < startPage {
		return nil, apperrors.BadRequest("invalid_pages", "endPage must not precede startPage")
	}

	step := &model.Step{
		User:      user,
		Date:      date,
		Book:      book,
		StartPage: startPage,
		EndPage:   endPage,
		PagesRead: model.PagesRead(startPage, endPage),
		Timestamp: *input.Timestamp,
	}
	if err := s.repo.Insert(ctx, step); err != nil {
		return nil, apperrors.Internal("failed to record step")
	}
	return step, nil
}
