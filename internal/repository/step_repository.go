package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"readingtimer/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// StepRepository is the single durable store for recorded steps. Rows are
// append-only; there is no update or delete path.
type StepRepository struct {
	db *sql.DB
}

func NewStepRepository(db *sql.DB) *StepRepository {
	return &StepRepository{db: db}
}

// Insert appends one step and assigns its id.
func (r *StepRepository) Insert(ctx context.Context, step *model.Step) error {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO steps (user, date, book, start_page, end_page, pages_read, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		step.User,
		step.Date,
		step.Book,
		step.StartPage,
		step.EndPage,
		step.PagesRead,
		step.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert step: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("step insert id: %w", err)
	}
	step.ID = id
	return nil
}

// ListDistinctUsers returns every distinct user, case-insensitively ascending.
func (r *StepRepository) ListDistinctUsers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT DISTINCT user FROM steps ORDER BY user COLLATE NOCASE ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows, "users")
}

// ListDistinctDates returns the distinct dates a user has steps on, ascending.
func (r *StepRepository) ListDistinctDates(ctx context.Context, user string) ([]string, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT DISTINCT date FROM steps WHERE user = ? ORDER BY date ASC`,
		user,
	)
	if err != nil {
		return nil, fmt.Errorf("list dates: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows, "dates")
}

// ListDistinctBooks returns the distinct books a user read on any of the given
// dates, case-insensitively ascending. Callers must pass a non-empty date set.
func (r *StepRepository) ListDistinctBooks(ctx context.Context, user string, dates []string) ([]string, error) {
	query := fmt.Sprintf(
		`SELECT DISTINCT book FROM steps
		 WHERE user = ? AND date IN (%s)
		 ORDER BY book COLLATE NOCASE ASC`,
		placeholders(len(dates)),
	)

	rows, err := r.db.QueryContext(ctx, query, inArgs(user, dates)...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows, "books")
}

// ListSteps returns the steps for a user and book across the given dates,
// ordered by timestamp then id ascending regardless of insertion order.
func (r *StepRepository) ListSteps(ctx context.Context, user string, dates []string, book string) ([]model.Step, error) {
	query := fmt.Sprintf(
		`SELECT id, user, date, book, start_page, end_page, pages_read, timestamp
		 FROM steps
		 WHERE user = ? AND book = ? AND date IN (%s)
		 ORDER BY timestamp ASC, id ASC`,
		placeholders(len(dates)),
	)

	args := make([]interface{}, 0, len(dates)+2)
	args = append(args, user, book)
	for _, date := range dates {
		args = append(args, date)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	defer rows.Close()

	steps := make([]model.Step, 0)
	for rows.Next() {
		var step model.Step
		if err := rows.Scan(
			&step.ID,
			&step.User,
			&step.Date,
			&step.Book,
			&step.StartPage,
			&step.EndPage,
			&step.PagesRead,
			&step.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate steps: %w", err)
	}
	return steps, nil
}

// LatestStep returns the most recent step for a (user, book, date) grouping,
// or ErrNotFound when none exists yet.
func (r *StepRepository) LatestStep(ctx context.Context, user, book, date string) (*model.Step, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, user, date, book, start_page, end_page, pages_read, timestamp
		 FROM steps
		 WHERE user = ? AND book = ? AND date = ?
		 ORDER BY timestamp DESC, id DESC
		 LIMIT 1`,
		user,
		book,
		date,
	)

	var step model.Step
	err := row.Scan(
		&step.ID,
		&step.User,
		&step.Date,
		&step.Book,
		&step.StartPage,
		&step.EndPage,
		&step.PagesRead,
		&step.Timestamp,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("latest step: %w", err)
	}
	return &step, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func inArgs(first string, rest []string) []interface{} {
	args := make([]interface{}, 0, len(rest)+1)
	args = append(args, first)
	for _, value := range rest {
		args = append(args, value)
	}
	return args
}

func scanStrings(rows *sql.Rows, what string) ([]string, error) {
	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return values, nil
}
